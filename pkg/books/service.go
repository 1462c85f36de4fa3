package books

import (
	"context"
	"database/sql"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/librisapp/libris/pkg/errcodes"
	"github.com/librisapp/libris/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type RetrieveBookOptions struct {
	ID *string
}

type UpdateBookOptions struct {
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// ListBooks returns all catalog entries ordered by creation time
// descending, with the author reference expanded. Orphaned author
// references come back with a null author.
func (svc *Service) ListBooks(ctx context.Context) ([]*models.Book, error) {
	books := []*models.Book{}

	err := svc.db.
		NewSelect().
		Model(&books).
		Relation("Author").
		Order("b.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return books, nil
}

func (svc *Service) RetrieveBook(ctx context.Context, opts RetrieveBookOptions) (*models.Book, error) {
	book := &models.Book{}

	q := svc.db.
		NewSelect().
		Model(book).
		Relation("Author")

	if opts.ID != nil {
		q = q.Where("b.id = ?", *opts.ID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book")
		}
		return nil, errors.WithStack(err)
	}

	return book, nil
}

// CreateBook persists a new catalog entry. The author reference is checked
// at creation time only; it is not enforced afterwards.
func (svc *Service) CreateBook(ctx context.Context, book *models.Book) error {
	if book.AuthorID != nil {
		exists, err := svc.authorExists(ctx, *book.AuthorID)
		if err != nil {
			return err
		}
		if !exists {
			return errcodes.ValidationFailed(`"author_id" must reference an existing author`)
		}
	}

	now := time.Now()
	book.ID = uuid.New().String()
	book.CreatedAt = now
	book.UpdatedAt = now

	_, err := svc.db.
		NewInsert().
		Model(book).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (svc *Service) UpdateBook(ctx context.Context, book *models.Book, opts UpdateBookOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	// The author reference is only re-checked when it changes; books with a
	// dangling reference from a deleted author stay updatable.
	if book.AuthorID != nil && slices.Contains(opts.Columns, "author_id") {
		exists, err := svc.authorExists(ctx, *book.AuthorID)
		if err != nil {
			return err
		}
		if !exists {
			return errcodes.ValidationFailed(`"author_id" must reference an existing author`)
		}
	}

	// Update updated_at.
	book.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	_, err := svc.db.
		NewUpdate().
		Model(book).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (svc *Service) DeleteBook(ctx context.Context, book *models.Book) error {
	_, err := svc.db.
		NewDelete().
		Model(book).
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (svc *Service) authorExists(ctx context.Context, id string) (bool, error) {
	exists, err := svc.db.
		NewSelect().
		Model((*models.Author)(nil)).
		Where("id = ?", id).
		Exists(ctx)
	if err != nil {
		return false, errors.WithStack(err)
	}
	return exists, nil
}
