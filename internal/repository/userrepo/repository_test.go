package userrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloghub/internal/domain"
	apperror "bloghub/internal/errors"
	"bloghub/internal/pkg/database"
	"bloghub/internal/pkg/logger"
	"bloghub/internal/repository/userrepo"
)

func newTestRepo(t *testing.T) *userrepo.UserRepository {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(context.Background(), db, "sqlite", "up"))
	return userrepo.NewUserRepository(db, 5*time.Second, logger.NewNopLogger())
}

func TestUserRepository_SaveAndFind(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, domain.User{Email: "admin@example.com", PasswordHash: "hash", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	found, err := repo.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)
	assert.Equal(t, domain.RoleAdmin, found.Role)
}

func TestUserRepository_DefaultRole(t *testing.T) {
	repo := newTestRepo(t)

	saved, err := repo.Save(context.Background(), domain.User{Email: "u@example.com", PasswordHash: "h"})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, saved.Role)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	_, err := repo.Save(ctx, domain.User{Email: "u@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.Save(ctx, domain.User{Email: "u@example.com", PasswordHash: "h2"})

	assert.IsType(t, &apperror.ConflictError{}, err)
}

func TestUserRepository_FindByEmailNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")

	assert.IsType(t, &apperror.NotFoundError{}, err)
}
