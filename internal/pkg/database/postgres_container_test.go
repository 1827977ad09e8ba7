//go:build container
// +build container

package database_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"bloghub/internal/domain"
	apperror "bloghub/internal/errors"
	"bloghub/internal/pkg/database"
	"bloghub/internal/pkg/logger"
	"bloghub/internal/repository/categoryrepo"
)

func startPostgres(t *testing.T, ctx context.Context) string {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "bloghub",
			"POSTGRES_PASSWORD": "bloghub",
			"POSTGRES_DB":       "bloghub",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pg, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

	host, err := pg.Host(ctx)
	if err != nil {
		t.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatal(err)
	}
	return fmt.Sprintf("postgres://bloghub:bloghub@%s:%s/bloghub?sslmode=disable", host, port.Port())
}

func TestPostgres_MigrationsAndUniqueViolation(t *testing.T) {
	ctx := context.Background()
	dsn := startPostgres(t, ctx)

	db, err := database.Open("postgres", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, database.Migrate(ctx, db, "postgres", "up"))

	repo := categoryrepo.NewCategoryRepository(db, 5*time.Second, logger.NewNopLogger())
	created, err := repo.Save(ctx, domain.Category{CatName: "Tech", Descr: "Tech posts"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	exists, err := repo.ExistsByName(ctx, "Tech")
	require.NoError(t, err)
	assert.True(t, exists)

	// Grava direto no banco para provar que a constraint (código 23505) é detectada.
	_, err = db.ExecContext(ctx, `INSERT INTO categories (cat_name, descr) VALUES ($1, $2)`, "Tech", "dup")
	require.Error(t, err)
	assert.True(t, database.IsUniqueViolation(err))

	_, err = repo.Save(ctx, domain.Category{CatName: "Tech", Descr: "dup"})
	assert.IsType(t, &apperror.ConflictError{}, err)

	require.NoError(t, database.Migrate(ctx, db, "postgres", "down-to", "0"))
}
