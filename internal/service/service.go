package service

import (
	"context"

	"kirana/internal/model"
)

// CatalogService defines operations over categories and products.
type CatalogService interface {
	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]model.Category, error)

	// GetCategory retrieves a category by slug, or model.ErrCategoryNotFound.
	GetCategory(ctx context.Context, slug string) (*model.Category, error)

	// ListProducts retrieves all products, or only those of one category when categoryID is non-nil.
	ListProducts(ctx context.Context, categoryID *int) ([]model.Product, error)

	// GetProduct retrieves a product by slug, or model.ErrProductNotFound.
	GetProduct(ctx context.Context, slug string) (*model.Product, error)
}

// ShowcaseService defines operations over the price ticker, timeline and store locations.
type ShowcaseService interface {
	ListPrices(ctx context.Context) ([]model.PriceEntry, error)
	ListJourney(ctx context.Context) ([]model.Milestone, error)
	ListLocations(ctx context.Context) ([]model.Location, error)
}

// Seeder populates empty collections with the initial dataset.
type Seeder interface {
	// Seed is idempotent: a collection that already holds rows is left untouched.
	Seed(ctx context.Context) error
}
