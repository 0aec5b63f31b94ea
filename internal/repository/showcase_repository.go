package repository

import (
	"context"
	"fmt"

	"kirana/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// showcaseRepository implements ShowcaseRepository using PostgreSQL.
// Columns are mapped onto the model structs by their db tags.
type showcaseRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewShowcaseRepository creates a new PostgreSQL-backed showcase repository.
func NewShowcaseRepository(pool *pgxpool.Pool, logger zerolog.Logger) ShowcaseRepository {
	return &showcaseRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "showcase").Logger(),
	}
}

func (r *showcaseRepository) GetPrices(ctx context.Context) ([]model.PriceEntry, error) {
	query := `
		SELECT id, item_name, price::text AS price, unit, trend, updated_at
		FROM price_ticker
		ORDER BY id
	`
	return collect[model.PriceEntry](ctx, r, query, "price entries")
}

func (r *showcaseRepository) GetMilestones(ctx context.Context) ([]model.Milestone, error) {
	query := `
		SELECT id, year, title, description
		FROM milestones
		ORDER BY id
	`
	return collect[model.Milestone](ctx, r, query, "milestones")
}

func (r *showcaseRepository) GetLocations(ctx context.Context) ([]model.Location, error) {
	query := `
		SELECT id, branch_name, address, phone, coordinates
		FROM locations
		ORDER BY id
	`
	return collect[model.Location](ctx, r, query, "locations")
}

// collect runs query and maps every row onto T.
func collect[T any](ctx context.Context, r *showcaseRepository, query, what string) ([]T, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msgf("failed to query %s", what)
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		r.logger.Error().Err(err).Msgf("failed to scan %s", what)
		return nil, fmt.Errorf("failed to scan %s: %w", what, err)
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}
