package books

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/librisapp/libris/pkg/authors"
	"github.com/librisapp/libris/pkg/errcodes"
	"github.com/librisapp/libris/pkg/migrations"
	"github.com/librisapp/libris/pkg/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func createTestAuthor(ctx context.Context, t *testing.T, db *bun.DB, name string) *models.Author {
	t.Helper()

	author := &models.Author{Name: name}
	err := authors.NewService(db).CreateAuthor(ctx, author)
	require.NoError(t, err)

	return author
}

func TestServiceCreateBook_RoundTrip(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	author := createTestAuthor(ctx, t, db, "Ursula K. Le Guin")

	year := 1969
	book := &models.Book{
		Title:    "The Left Hand of Darkness",
		Type:     models.TypeBook,
		AuthorID: &author.ID,
		Genre:    models.GenreSciFi,
		Price:    12.5,
		InStock:  true,
	}
	book.PublishedYear = &year

	err := svc.CreateBook(ctx, book)
	require.NoError(t, err)
	assert.NotEmpty(t, book.ID)
	assert.False(t, book.CreatedAt.IsZero())
	assert.False(t, book.UpdatedAt.IsZero())

	got, err := svc.RetrieveBook(ctx, RetrieveBookOptions{ID: &book.ID})
	require.NoError(t, err)
	assert.Equal(t, book.ID, got.ID)
	assert.Equal(t, "The Left Hand of Darkness", got.Title)
	assert.Equal(t, models.TypeBook, got.Type)
	assert.Equal(t, models.GenreSciFi, got.Genre)
	assert.Equal(t, 12.5, got.Price)
	require.NotNil(t, got.PublishedYear)
	assert.Equal(t, 1969, *got.PublishedYear)
	assert.True(t, got.InStock)
	require.NotNil(t, got.Author)
	assert.Equal(t, "Ursula K. Le Guin", got.Author.Name)
}

func TestServiceCreateBook_RejectsUnknownAuthor(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	missing := uuid.New().String()
	book := &models.Book{
		Title:    "Orphaned",
		Type:     models.TypeBook,
		AuthorID: &missing,
		Genre:    models.GenreOther,
		InStock:  true,
	}

	err := svc.CreateBook(ctx, book)
	require.Error(t, err)

	var e *errcodes.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, 400, e.HTTPCode)
	assert.Equal(t, "validation_failed", e.Code)
	require.Len(t, e.Errors, 1)
	assert.Contains(t, e.Errors[0], "author_id")
}

func TestServiceRetrieveBook_NotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	missing := uuid.New().String()
	_, err := svc.RetrieveBook(ctx, RetrieveBookOptions{ID: &missing})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errcodes.NotFound("Book")))
}

func TestServiceListBooks_OrderAndOrphanedAuthor(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	author := createTestAuthor(ctx, t, db, "Octavia E. Butler")

	first := &models.Book{Title: "Kindred", Type: models.TypeBook, AuthorID: &author.ID, Genre: models.GenreFiction, InStock: true}
	require.NoError(t, svc.CreateBook(ctx, first))

	// Force distinct created_at values so the ordering is deterministic.
	_, err := db.NewUpdate().
		Model((*models.Book)(nil)).
		Set("created_at = ?", time.Now().Add(-time.Hour)).
		Where("id = ?", first.ID).
		Exec(ctx)
	require.NoError(t, err)

	second := &models.Book{Title: "Parable of the Sower", Type: models.TypeBook, AuthorID: &author.ID, Genre: models.GenreSciFi, InStock: true}
	require.NoError(t, svc.CreateBook(ctx, second))

	// Delete the author; both books must survive with a null expanded
	// author.
	require.NoError(t, authors.NewService(db).DeleteAuthor(ctx, author))

	books, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Parable of the Sower", books[0].Title)
	assert.Equal(t, "Kindred", books[1].Title)
	for _, b := range books {
		require.NotNil(t, b.AuthorID)
		assert.Equal(t, author.ID, *b.AuthorID)
		assert.Nil(t, b.Author)
	}
}

func TestServiceUpdateBook_PartialMerge(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	author := createTestAuthor(ctx, t, db, "Herman Melville")

	book := &models.Book{Title: "Moby-Dick", Type: models.TypeBook, AuthorID: &author.ID, Genre: models.GenreFiction, Price: 5, InStock: true}
	require.NoError(t, svc.CreateBook(ctx, book))

	book.Price = 9.99
	err := svc.UpdateBook(ctx, book, UpdateBookOptions{Columns: []string{"price"}})
	require.NoError(t, err)

	got, err := svc.RetrieveBook(ctx, RetrieveBookOptions{ID: &book.ID})
	require.NoError(t, err)
	assert.Equal(t, 9.99, got.Price)
	assert.Equal(t, "Moby-Dick", got.Title)
	assert.Equal(t, models.GenreFiction, got.Genre)
	assert.True(t, got.InStock)
}

func TestServiceDeleteBook(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	author := createTestAuthor(ctx, t, db, "Mary Shelley")

	book := &models.Book{Title: "Frankenstein", Type: models.TypeBook, AuthorID: &author.ID, Genre: models.GenreFiction, InStock: true}
	require.NoError(t, svc.CreateBook(ctx, book))

	require.NoError(t, svc.DeleteBook(ctx, book))

	_, err := svc.RetrieveBook(ctx, RetrieveBookOptions{ID: &book.ID})
	assert.True(t, errors.Is(err, errcodes.NotFound("Book")))
}
