package users

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/librisapp/libris/pkg/errcodes"
	"github.com/librisapp/libris/pkg/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCreate_DuplicateEmailTranslated(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserOptions{Email: "reader@example.com", Password: "correct horse", Role: models.RoleUser})
	require.NoError(t, err)

	// The unique index catches the collision, including across case.
	_, err = svc.Create(ctx, CreateUserOptions{Email: "READER@example.com", Password: "correct horse", Role: models.RoleUser})
	require.Error(t, err)

	e := &errcodes.Error{}
	require.True(t, errors.As(err, &e))
	assert.Equal(t, http.StatusBadRequest, e.HTTPCode)
	assert.Equal(t, "validation_failed", e.Code)
	require.Len(t, e.Errors, 1)
	assert.Contains(t, e.Errors[0], "already registered")
}

func TestServiceEnsureAdmin(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, "admin@example.com", "correct horse")
	require.NoError(t, err)
	assert.True(t, created)

	user := &models.User{}
	err = db.NewSelect().Model(user).Where("u.email = ?", "admin@example.com").Scan(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	// Idempotent on restart.
	created, err = svc.EnsureAdmin(ctx, "admin@example.com", "correct horse")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestServiceEnsureAdmin_DoesNotEscalateExistingUser(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserOptions{Email: "reader@example.com", Password: "correct horse", Role: models.RoleUser})
	require.NoError(t, err)

	created, err := svc.EnsureAdmin(ctx, "reader@example.com", "correct horse")
	require.NoError(t, err)
	assert.False(t, created)

	user := &models.User{}
	err = db.NewSelect().Model(user).Where("u.email = ?", "reader@example.com").Scan(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestServiceRetrieve(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	user, err := svc.Create(ctx, CreateUserOptions{Email: "reader@example.com", Password: "correct horse", Role: models.RoleUser})
	require.NoError(t, err)

	got, err := svc.Retrieve(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", got.Email)

	_, err = svc.Retrieve(ctx, uuid.New().String())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errcodes.NotFound("User")))
}

func TestServiceRetrieve_StoreErrorSurfaces(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)

	require.NoError(t, db.Close())

	_, err := svc.Retrieve(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.False(t, errors.Is(err, errcodes.NotFound("User")))
}
