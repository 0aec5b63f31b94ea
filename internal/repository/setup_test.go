package repository

import (
	"context"
	"testing"
	"time"

	"kirana/internal/database"
	"kirana/internal/seed"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer with the application schema and returns a connection pool.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping repository test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, pool, zerolog.Nop()))

	t.Cleanup(func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	})

	return pool
}

// seedAll inserts the full default dataset in one transaction.
func seedAll(t *testing.T, pool *pgxpool.Pool) map[string]int {
	t.Helper()

	ctx := context.Background()

	ds, err := seed.Default()
	require.NoError(t, err)

	repo := NewSeedRepository(pool, zerolog.Nop())

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	ids, err := repo.InsertCategories(ctx, tx, ds.Categories)
	require.NoError(t, err)
	require.NoError(t, repo.InsertProducts(ctx, tx, ds.Products, ids))
	require.NoError(t, repo.InsertPrices(ctx, tx, ds.Prices))
	require.NoError(t, repo.InsertMilestones(ctx, tx, ds.Milestones))
	require.NoError(t, repo.InsertLocations(ctx, tx, ds.Locations))
	require.NoError(t, tx.Commit(ctx))

	return ids
}
