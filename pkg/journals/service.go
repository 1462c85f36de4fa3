package journals

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

type RetrieveJournalOptions struct {
	ID *string
}

type UpdateJournalOptions struct {
	Columns []string
}

// Service operates on the journal slice of the catalog: rows in the books
// table with type 'journal'.
type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) ListJournals(ctx context.Context) ([]*models.Book, error) {
	journals := []*models.Book{}

	err := svc.db.
		NewSelect().
		Model(&journals).
		Where("b.type = ?", models.TypeJournal).
		Order("b.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return journals, nil
}

func (svc *Service) RetrieveJournal(ctx context.Context, opts RetrieveJournalOptions) (*models.Book, error) {
	journal := &models.Book{}

	q := svc.db.
		NewSelect().
		Model(journal).
		Where("b.type = ?", models.TypeJournal)

	if opts.ID != nil {
		q = q.Where("b.id = ?", *opts.ID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Journal")
		}
		return nil, errors.WithStack(err)
	}

	return journal, nil
}

func (svc *Service) CreateJournal(ctx context.Context, journal *models.Book) error {
	now := time.Now()
	journal.ID = uuid.New().String()
	journal.Type = models.TypeJournal
	journal.CreatedAt = now
	journal.UpdatedAt = now

	_, err := svc.db.
		NewInsert().
		Model(journal).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (svc *Service) UpdateJournal(ctx context.Context, journal *models.Book, opts UpdateJournalOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	// Update updated_at.
	journal.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	_, err := svc.db.
		NewUpdate().
		Model(journal).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (svc *Service) DeleteJournal(ctx context.Context, journal *models.Book) error {
	_, err := svc.db.
		NewDelete().
		Model(journal).
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}
