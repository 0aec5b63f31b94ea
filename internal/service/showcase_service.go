package service

import (
	"context"
	"fmt"

	"kirana/internal/model"
	"kirana/internal/repository"

	"github.com/rs/zerolog"
)

type showcaseService struct {
	repo   repository.ShowcaseRepository
	logger zerolog.Logger
}

// NewShowcaseService creates a new showcase service.
func NewShowcaseService(repo repository.ShowcaseRepository, logger zerolog.Logger) ShowcaseService {
	return &showcaseService{
		repo:   repo,
		logger: logger.With().Str("service", "showcase").Logger(),
	}
}

func (s *showcaseService) ListPrices(ctx context.Context) ([]model.PriceEntry, error) {
	prices, err := s.repo.GetPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get prices: %w", err)
	}
	return prices, nil
}

func (s *showcaseService) ListJourney(ctx context.Context) ([]model.Milestone, error) {
	milestones, err := s.repo.GetMilestones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get journey: %w", err)
	}
	return milestones, nil
}

func (s *showcaseService) ListLocations(ctx context.Context) ([]model.Location, error) {
	locations, err := s.repo.GetLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get locations: %w", err)
	}
	return locations, nil
}
