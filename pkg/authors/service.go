package authors

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/librisapp/libris/pkg/errcodes"
	"github.com/librisapp/libris/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type RetrieveAuthorOptions struct {
	ID *string
}

type UpdateAuthorOptions struct {
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// ListAuthors returns all authors ordered by creation time descending, each
// merged with the count of books referencing it. The counts come from a
// single grouped query keyed by author id.
func (svc *Service) ListAuthors(ctx context.Context) ([]*models.Author, error) {
	authors := []*models.Author{}

	err := svc.db.
		NewSelect().
		Model(&authors).
		Order("a.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	counts, err := svc.countBooksByAuthor(ctx)
	if err != nil {
		return nil, err
	}

	for _, author := range authors {
		author.BookCount = counts[author.ID]
	}

	return authors, nil
}

func (svc *Service) RetrieveAuthor(ctx context.Context, opts RetrieveAuthorOptions) (*models.Author, error) {
	author := &models.Author{}

	q := svc.db.
		NewSelect().
		Model(author)

	if opts.ID != nil {
		q = q.Where("a.id = ?", *opts.ID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Author")
		}
		return nil, errors.WithStack(err)
	}

	return author, nil
}

// ListBooksByAuthor returns all books referencing the author, ordered by
// creation time descending.
func (svc *Service) ListBooksByAuthor(ctx context.Context, authorID string) ([]*models.Book, error) {
	books := []*models.Book{}

	err := svc.db.
		NewSelect().
		Model(&books).
		Where("b.author_id = ?", authorID).
		Order("b.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return books, nil
}

func (svc *Service) CreateAuthor(ctx context.Context, author *models.Author) error {
	now := time.Now()
	author.ID = uuid.New().String()
	author.CreatedAt = now
	author.UpdatedAt = now

	_, err := svc.db.
		NewInsert().
		Model(author).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (svc *Service) UpdateAuthor(ctx context.Context, author *models.Author, opts UpdateAuthorOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	// Update updated_at.
	author.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	_, err := svc.db.
		NewUpdate().
		Model(author).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteAuthor removes the author only. Books referencing it are left in
// place with a dangling author_id.
func (svc *Service) DeleteAuthor(ctx context.Context, author *models.Author) error {
	_, err := svc.db.
		NewDelete().
		Model(author).
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (svc *Service) countBooksByAuthor(ctx context.Context) (map[string]int, error) {
	rows := []struct {
		AuthorID string `bun:"author_id"`
		Count    int    `bun:"count"`
	}{}

	err := svc.db.
		NewSelect().
		Model((*models.Book)(nil)).
		Column("b.author_id").
		ColumnExpr("count(*) AS count").
		Where("b.author_id IS NOT NULL").
		Group("b.author_id").
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.AuthorID] = row.Count
	}

	return counts, nil
}
