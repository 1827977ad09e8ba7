package categoryrepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloghub/internal/domain"
	apperror "bloghub/internal/errors"
	"bloghub/internal/pkg/database"
	"bloghub/internal/pkg/logger"
	"bloghub/internal/repository/categoryrepo"
)

func newTestRepo(t *testing.T) *categoryrepo.CategoryRepository {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(context.Background(), db, "sqlite", "up"))
	return categoryrepo.NewCategoryRepository(db, 5*time.Second, logger.NewNopLogger())
}

func seed(t *testing.T, repo *categoryrepo.CategoryRepository, name, descr string) domain.Category {
	t.Helper()
	c, err := repo.Save(context.Background(), domain.Category{CatName: name, Descr: descr})
	require.NoError(t, err)
	return c
}

func TestSave_InsertAssignsID(t *testing.T) {
	repo := newTestRepo(t)

	c := seed(t, repo, "Tech", "Tech posts")

	assert.NotZero(t, c.ID)
	found, err := repo.FindByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, found)
}

func TestSave_InsertDuplicateNameIsConflict(t *testing.T) {
	repo := newTestRepo(t)
	seed(t, repo, "Tech", "Tech posts")

	_, err := repo.Save(context.Background(), domain.Category{CatName: "Tech", Descr: "again"})

	require.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)
	assert.Equal(t, "Category with name Tech already exists.", err.(apperror.AppError).Message())
}

func TestSave_UpdateReplacesRow(t *testing.T) {
	repo := newTestRepo(t)
	c := seed(t, repo, "Tech", "Tech posts")

	c.Descr = "All about tech"
	updated, err := repo.Save(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "All about tech", updated.Descr)

	found, err := repo.FindByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "All about tech", found.Descr)
	assert.Equal(t, "Tech", found.CatName)
}

func TestSave_UpdateToTakenNameIsConflict(t *testing.T) {
	repo := newTestRepo(t)
	seed(t, repo, "Tech", "Tech posts")
	other := seed(t, repo, "Food", "Food posts")

	other.CatName = "Tech"
	_, err := repo.Save(context.Background(), other)

	assert.IsType(t, &apperror.ConflictError{}, err)
}

func TestSave_UpdateMissingIsNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Save(context.Background(), domain.Category{ID: 99, CatName: "X", Descr: "Y"})

	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestFindByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindByID(context.Background(), 7)

	require.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	assert.Equal(t, "Category with id 7 not found.", err.(apperror.AppError).Message())
}

func TestFindAll_OrderedByID(t *testing.T) {
	repo := newTestRepo(t)

	empty, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	a := seed(t, repo, "Zeta", "z")
	b := seed(t, repo, "Alpha", "a")

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)
	assert.Equal(t, b.ID, all[1].ID)
}

func TestExistsByName(t *testing.T) {
	repo := newTestRepo(t)
	seed(t, repo, "Tech", "Tech posts")

	exists, err := repo.ExistsByName(context.Background(), "Tech")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(context.Background(), "tech")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteByID(t *testing.T) {
	repo := newTestRepo(t)
	c := seed(t, repo, "Tech", "Tech posts")

	require.NoError(t, repo.DeleteByID(context.Background(), c.ID))

	_, err := repo.FindByID(context.Background(), c.ID)
	assert.IsType(t, &apperror.NotFoundError{}, err)

	err = repo.DeleteByID(context.Background(), c.ID)
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestClosedDBIsInternalError(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Close())
	repo := categoryrepo.NewCategoryRepository(db, time.Second, logger.NewNopLogger())

	_, err = repo.FindAll(context.Background())

	assert.IsType(t, &apperror.InternalError{}, err)
}
