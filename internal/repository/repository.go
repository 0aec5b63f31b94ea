package repository

import (
	"context"

	"kirana/internal/model"
	"kirana/internal/seed"

	"github.com/jackc/pgx/v5"
)

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	// GetAll retrieves every category in insertion order.
	GetAll(ctx context.Context) ([]model.Category, error)

	// GetBySlug retrieves a single category. It returns nil, nil when no row matches.
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves products in insertion order, restricted to one category when categoryID is non-nil.
	GetAll(ctx context.Context, categoryID *int) ([]model.Product, error)

	// GetBySlug retrieves a single product. It returns nil, nil when no row matches.
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
}

// ShowcaseRepository reads the price ticker, company timeline and store locations.
type ShowcaseRepository interface {
	GetPrices(ctx context.Context) ([]model.PriceEntry, error)
	GetMilestones(ctx context.Context) ([]model.Milestone, error)
	GetLocations(ctx context.Context) ([]model.Location, error)
}

// SeedRepository writes the initial dataset. Every write runs inside the caller's transaction.
type SeedRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// IsEmpty reports whether table holds no rows.
	IsEmpty(ctx context.Context, tx pgx.Tx, table Table) (bool, error)

	// InsertCategories inserts categories and returns the generated id for each slug.
	InsertCategories(ctx context.Context, tx pgx.Tx, categories []seed.Category) (map[string]int, error)

	// InsertProducts inserts products, resolving each category slug through categoryIDs.
	InsertProducts(ctx context.Context, tx pgx.Tx, products []seed.Product, categoryIDs map[string]int) error

	InsertPrices(ctx context.Context, tx pgx.Tx, prices []seed.PriceEntry) error
	InsertMilestones(ctx context.Context, tx pgx.Tx, milestones []seed.Milestone) error
	InsertLocations(ctx context.Context, tx pgx.Tx, locations []seed.Location) error
}

// Table names a seeded table.
type Table string

const (
	TableCategories Table = "categories"
	TableProducts   Table = "products"
	TablePrices     Table = "price_ticker"
	TableMilestones Table = "milestones"
	TableLocations  Table = "locations"
)

// Valid reports whether t is one of the known tables.
func (t Table) Valid() bool {
	switch t {
	case TableCategories, TableProducts, TablePrices, TableMilestones, TableLocations:
		return true
	}
	return false
}
