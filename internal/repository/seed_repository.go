package repository

import (
	"context"
	"fmt"

	"kirana/internal/seed"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// seedRepository implements the SeedRepository interface using PostgreSQL.
type seedRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSeedRepository creates a new PostgreSQL-backed seed repository.
func NewSeedRepository(pool *pgxpool.Pool, logger zerolog.Logger) SeedRepository {
	return &seedRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "seed").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *seedRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// IsEmpty reports whether table holds no rows.
func (r *seedRepository) IsEmpty(ctx context.Context, tx pgx.Tx, table Table) (bool, error) {
	if !table.Valid() {
		return false, fmt.Errorf("unknown table %q", table)
	}

	// table is one of the Table constants, never user input.
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s)", pgx.Identifier{string(table)}.Sanitize())

	var exists bool
	if err := tx.QueryRow(ctx, query).Scan(&exists); err != nil {
		r.logger.Error().Err(err).Str("table", string(table)).Msg("failed to check table contents")
		return false, fmt.Errorf("failed to check %s: %w", table, err)
	}

	return !exists, nil
}

// InsertCategories inserts categories and returns the generated id for each slug.
func (r *seedRepository) InsertCategories(ctx context.Context, tx pgx.Tx, categories []seed.Category) (map[string]int, error) {
	query := `
		INSERT INTO categories (name, slug, description, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	ids := make(map[string]int, len(categories))
	for _, c := range categories {
		var id int
		if err := tx.QueryRow(ctx, query, c.Name, c.Slug, c.Description, c.ImageURL).Scan(&id); err != nil {
			r.logger.Error().Err(err).Str("slug", c.Slug).Msg("failed to insert category")
			return nil, fmt.Errorf("failed to insert category %s: %w", c.Slug, err)
		}
		ids[c.Slug] = id
	}

	r.logger.Debug().Int("count", len(categories)).Msg("categories inserted")

	return ids, nil
}

// InsertProducts inserts products, resolving each category slug through categoryIDs.
func (r *seedRepository) InsertProducts(ctx context.Context, tx pgx.Tx, products []seed.Product, categoryIDs map[string]int) error {
	query := `
		INSERT INTO products (name, slug, description, price, category_id, image_url, is_popular)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7)
	`

	batch := &pgx.Batch{}
	for _, p := range products {
		categoryID, ok := categoryIDs[p.CategorySlug]
		if !ok {
			return fmt.Errorf("product %s references unknown category %s", p.Slug, p.CategorySlug)
		}
		batch.Queue(query, p.Name, p.Slug, p.Description, p.Price, categoryID, p.ImageURL, p.IsPopular)
	}

	if err := r.sendBatch(ctx, tx, batch, "product"); err != nil {
		return err
	}

	r.logger.Debug().Int("count", len(products)).Msg("products inserted")
	return nil
}

func (r *seedRepository) InsertPrices(ctx context.Context, tx pgx.Tx, prices []seed.PriceEntry) error {
	query := `
		INSERT INTO price_ticker (item_name, price, unit, trend)
		VALUES ($1, $2::numeric, $3, $4)
	`

	batch := &pgx.Batch{}
	for _, e := range prices {
		batch.Queue(query, e.ItemName, e.Price, e.Unit, string(e.Trend))
	}

	return r.sendBatch(ctx, tx, batch, "price entry")
}

func (r *seedRepository) InsertMilestones(ctx context.Context, tx pgx.Tx, milestones []seed.Milestone) error {
	query := `
		INSERT INTO milestones (year, title, description)
		VALUES ($1, $2, $3)
	`

	batch := &pgx.Batch{}
	for _, m := range milestones {
		batch.Queue(query, m.Year, m.Title, m.Description)
	}

	return r.sendBatch(ctx, tx, batch, "milestone")
}

func (r *seedRepository) InsertLocations(ctx context.Context, tx pgx.Tx, locations []seed.Location) error {
	query := `
		INSERT INTO locations (branch_name, address, phone, coordinates)
		VALUES ($1, $2, $3, $4)
	`

	batch := &pgx.Batch{}
	for _, l := range locations {
		batch.Queue(query, l.BranchName, l.Address, l.Phone, l.Coordinates)
	}

	return r.sendBatch(ctx, tx, batch, "location")
}

// sendBatch executes every queued insert and reports the first failure.
func (r *seedRepository) sendBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch, what string) error {
	if batch.Len() == 0 {
		return nil
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().Err(err).Int("index", i).Msgf("failed to insert %s", what)
			return fmt.Errorf("failed to insert %s %d: %w", what, i, err)
		}
	}

	return nil
}
