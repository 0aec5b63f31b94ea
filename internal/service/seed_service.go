package service

import (
	"context"
	"fmt"

	"kirana/internal/repository"
	"kirana/internal/seed"

	"github.com/rs/zerolog"
)

// seedService implements Seeder inside a single transaction, so a failure
// anywhere leaves every collection exactly as it was.
type seedService struct {
	repo    repository.SeedRepository
	dataset *seed.Dataset
	logger  zerolog.Logger
}

// NewSeedService creates a seeder that inserts dataset into empty collections.
func NewSeedService(repo repository.SeedRepository, dataset *seed.Dataset, logger zerolog.Logger) Seeder {
	return &seedService{
		repo:    repo,
		dataset: dataset,
		logger:  logger.With().Str("service", "seed").Logger(),
	}
}

// Seed inserts categories and products when the categories table is empty,
// then fills each of prices, milestones and locations when that table is empty.
func (s *seedService) Seed(ctx context.Context) (err error) {
	if err = s.dataset.Validate(); err != nil {
		s.logger.Error().Err(err).Msg("seed dataset is invalid")
		return fmt.Errorf("failed to seed: %w", err)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to seed: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	inserted := zerolog.Dict()

	empty, err := s.repo.IsEmpty(ctx, tx, repository.TableCategories)
	if err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	if empty {
		var ids map[string]int
		if ids, err = s.repo.InsertCategories(ctx, tx, s.dataset.Categories); err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
		if err = s.repo.InsertProducts(ctx, tx, s.dataset.Products, ids); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		inserted.Int("categories", len(s.dataset.Categories)).Int("products", len(s.dataset.Products))
	}

	steps := []struct {
		table  repository.Table
		count  int
		insert func() error
	}{
		{repository.TablePrices, len(s.dataset.Prices), func() error {
			return s.repo.InsertPrices(ctx, tx, s.dataset.Prices)
		}},
		{repository.TableMilestones, len(s.dataset.Milestones), func() error {
			return s.repo.InsertMilestones(ctx, tx, s.dataset.Milestones)
		}},
		{repository.TableLocations, len(s.dataset.Locations), func() error {
			return s.repo.InsertLocations(ctx, tx, s.dataset.Locations)
		}},
	}

	for _, step := range steps {
		empty, err = s.repo.IsEmpty(ctx, tx, step.table)
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", step.table, err)
		}
		if !empty {
			continue
		}
		if err = step.insert(); err != nil {
			return fmt.Errorf("failed to seed %s: %w", step.table, err)
		}
		inserted.Int(string(step.table), step.count)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("failed to seed: %w", err)
	}

	s.logger.Info().Dict("inserted", inserted).Msg("seeding completed")

	return nil
}
