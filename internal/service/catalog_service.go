package service

import (
	"context"
	"fmt"

	"kirana/internal/model"
	"kirana/internal/repository"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	logger       zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       logger.With().Str("service", "catalog").Logger(),
	}
}

// ListCategories retrieves all categories.
func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	s.logger.Debug().Int("count", len(categories)).Msg("retrieved categories")

	return categories, nil
}

// GetCategory retrieves a single category by slug.
func (s *catalogService) GetCategory(ctx context.Context, slug string) (*model.Category, error) {
	if slug == "" {
		return nil, model.ErrCategoryNotFound
	}

	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if category == nil {
		s.logger.Debug().Str("slug", slug).Msg("category not found")
		return nil, model.ErrCategoryNotFound
	}

	return category, nil
}

// ListProducts retrieves products, optionally filtered by category id.
func (s *catalogService) ListProducts(ctx context.Context, categoryID *int) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	event := s.logger.Debug().Int("count", len(products))
	if categoryID != nil {
		event = event.Int("category_id", *categoryID)
	}
	event.Msg("retrieved products")

	return products, nil
}

// GetProduct retrieves a single product by slug.
func (s *catalogService) GetProduct(ctx context.Context, slug string) (*model.Product, error) {
	if slug == "" {
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("slug", slug).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}
