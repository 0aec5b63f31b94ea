package repository

import (
	"context"
	"errors"
	"fmt"

	"kirana/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = `id, name, slug, description, price::text, category_id, image_url, is_popular`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// GetAll retrieves products, optionally filtered by exact category id.
func (r *productRepository) GetAll(ctx context.Context, categoryID *int) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1::integer IS NULL OR category_id = $1)
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		event := r.logger.Error().Err(err)
		if categoryID != nil {
			event = event.Int("category_id", *categoryID)
		}
		event.Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.CategoryID, &p.ImageURL, &p.IsPopular)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetBySlug retrieves a single product by its slug.
func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE slug = $1
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, slug).
		Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.CategoryID, &p.ImageURL, &p.IsPopular)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("slug", slug).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("slug", slug).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}
