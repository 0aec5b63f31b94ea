package repository

import (
	"context"
	"testing"
	"time"

	"kirana/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowcaseRepository_Empty(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewShowcaseRepository(pool, zerolog.Nop())
	ctx := context.Background()

	prices, err := repo.GetPrices(ctx)
	require.NoError(t, err)
	assert.NotNil(t, prices)
	assert.Empty(t, prices)

	milestones, err := repo.GetMilestones(ctx)
	require.NoError(t, err)
	assert.NotNil(t, milestones)
	assert.Empty(t, milestones)

	locations, err := repo.GetLocations(ctx)
	require.NoError(t, err)
	assert.NotNil(t, locations)
	assert.Empty(t, locations)
}

func TestShowcaseRepository_Seeded(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewShowcaseRepository(pool, zerolog.Nop())
	ctx := context.Background()

	before := time.Now().Add(-time.Minute)
	seedAll(t, pool)

	t.Run("prices keep trend literals", func(t *testing.T) {
		prices, err := repo.GetPrices(ctx)
		require.NoError(t, err)
		require.Len(t, prices, 6)

		first := prices[0]
		assert.Equal(t, "Fortune Soyabean Oil", first.ItemName)
		assert.Equal(t, "125.00", first.Price)
		assert.Equal(t, "1L", first.Unit)
		assert.Equal(t, model.TrendUp, first.Trend)
		assert.True(t, first.UpdatedAt.After(before))

		assert.Equal(t, model.TrendStable, prices[1].Trend)
		assert.Equal(t, model.TrendDown, prices[2].Trend)
	})

	t.Run("milestones in insertion order", func(t *testing.T) {
		milestones, err := repo.GetMilestones(ctx)
		require.NoError(t, err)
		require.Len(t, milestones, 5)

		years := make([]string, len(milestones))
		for i, m := range milestones {
			years[i] = m.Year
		}
		assert.Equal(t, []string{"1987", "2018", "2020", "2022", "2025"}, years)
	})

	t.Run("locations", func(t *testing.T) {
		locations, err := repo.GetLocations(ctx)
		require.NoError(t, err)
		require.Len(t, locations, 1)
		assert.Equal(t, "Jay Kirana Store - Main", locations[0].BranchName)
		assert.Equal(t, "23.5969,72.9631", locations[0].Coordinates)
	})
}
