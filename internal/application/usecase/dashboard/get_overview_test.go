// Package dashboard contains the dashboard overview use case.
package dashboard

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeFarmerCounter struct {
	adapter.FarmerRepository
	count int64
}

func (r fakeFarmerCounter) Count(ctx context.Context) (int64, error) { return r.count, nil }

// fakeCropRepository filters the harvest-window queries like the real
// repository so the computed window bounds are observable.
type fakeCropRepository struct {
	adapter.CropRepository
	crops []*entity.CropWithRelations
}

func (r *fakeCropRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(r.crops)), nil
}

func (r *fakeCropRepository) FindByFilter(ctx context.Context, filter adapter.CropFilter) ([]*entity.CropWithRelations, error) {
	return r.crops, nil
}

func (r *fakeCropRepository) FindHarvestWindow(ctx context.Context, from, to time.Time, statuses []entity.CropStatus) ([]*entity.CropWithRelations, error) {
	var out []*entity.CropWithRelations
	for _, c := range r.crops {
		if c.Crop.HarvestDate.Before(from) || c.Crop.HarvestDate.After(to) {
			continue
		}
		if !statusIn(c.Crop.Status, statuses) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCropRepository) FindOverdue(ctx context.Context, before time.Time, statuses []entity.CropStatus) ([]*entity.CropWithRelations, error) {
	var out []*entity.CropWithRelations
	for _, c := range r.crops {
		if !c.Crop.HarvestDate.Before(before) {
			continue
		}
		if !statusIn(c.Crop.Status, statuses) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCropRepository) FindRecent(ctx context.Context, limit int) ([]*entity.CropWithRelations, error) {
	if len(r.crops) <= limit {
		return r.crops, nil
	}
	return r.crops[:limit], nil
}

func statusIn(status entity.CropStatus, statuses []entity.CropStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

type fakeDashboardRepository struct{}

func (fakeDashboardRepository) SeasonCounts(ctx context.Context) ([]adapter.SeasonCount, error) {
	return []adapter.SeasonCount{{Season: entity.SeasonKharif, Count: 2, Quantity: 700}}, nil
}

func (fakeDashboardRepository) StatusCounts(ctx context.Context) ([]adapter.StatusCount, error) {
	return []adapter.StatusCount{{Status: entity.CropStatusGrowing, Count: 2}}, nil
}

func (fakeDashboardRepository) MonthlyCounts(ctx context.Context, ref time.Time, months int) ([]adapter.MonthCount, error) {
	return nil, nil
}

func (fakeDashboardRepository) TopFarmersByQuantity(ctx context.Context, limit int) ([]adapter.TopFarmer, error) {
	return []adapter.TopFarmer{
		{Farmer: &entity.Farmer{ID: uuid.New(), Name: "Sita Devi"}, CropCount: 1, TotalQuantity: decimal.NewFromInt(600)},
	}, nil
}

// memoryCache records reads and writes for cache behavior assertions.
type memoryCache struct {
	entries map[string][]byte
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.entries[key] = value
	c.sets++
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func dashboardCrop(name string, status entity.CropStatus, harvestDate time.Time) *entity.CropWithRelations {
	return &entity.CropWithRelations{
		Crop: &entity.Crop{
			ID:          uuid.New(),
			Name:        name,
			FarmerID:    uuid.New(),
			Season:      entity.SeasonKharif,
			Status:      status,
			PricePerKg:  decimal.NewFromInt(10),
			Quantity:    decimal.NewFromInt(100),
			HarvestDate: harvestDate,
		},
		Farmer: &entity.Farmer{ID: uuid.New(), Name: "Raj Kumar"},
	}
}

func TestGetOverviewUseCase_Execute(t *testing.T) {
	clock := fixedClock{now: time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo := &fakeCropRepository{crops: []*entity.CropWithRelations{
		dashboardCrop("Inside Window", entity.CropStatusGrowing, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)),
		dashboardCrop("Window Edge", entity.CropStatusPlanted, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)),
		dashboardCrop("Past Window", entity.CropStatusGrowing, time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)),
		dashboardCrop("Already Sold", entity.CropStatusSold, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)),
		dashboardCrop("Late Crop", entity.CropStatusGrowing, time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)),
		dashboardCrop("Due Today", entity.CropStatusGrowing, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
	}}

	t.Run("upcoming window is 30 days inclusive for active crops", func(t *testing.T) {
		uc := NewGetOverviewUseCase(fakeFarmerCounter{count: 4}, repo, fakeDashboardRepository{}, nil, clock, logger)
		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		names := map[string]bool{}
		for _, item := range output.UpcomingHarvests {
			names[item.CropName] = true
		}
		for _, want := range []string{"Inside Window", "Window Edge", "Due Today"} {
			if !names[want] {
				t.Errorf("expected %q in upcoming harvests", want)
			}
		}
		if names["Past Window"] {
			t.Error("crop one day past the window must be excluded")
		}
		if names["Already Sold"] {
			t.Error("sold crops must be excluded from upcoming harvests")
		}
	})

	t.Run("overdue is strictly past and excludes harvested and sold", func(t *testing.T) {
		uc := NewGetOverviewUseCase(fakeFarmerCounter{count: 4}, repo, fakeDashboardRepository{}, nil, clock, logger)
		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.OverdueCrops) != 1 || output.OverdueCrops[0].CropName != "Late Crop" {
			t.Fatalf("expected only 'Late Crop' overdue, got %d entries", len(output.OverdueCrops))
		}
	})

	t.Run("totals sum derived crop values", func(t *testing.T) {
		uc := NewGetOverviewUseCase(fakeFarmerCounter{count: 4}, repo, fakeDashboardRepository{}, nil, clock, logger)
		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.TotalFarmers != 4 {
			t.Errorf("expected 4 farmers, got %d", output.TotalFarmers)
		}
		if output.TotalCrops != 6 {
			t.Errorf("expected 6 crops, got %d", output.TotalCrops)
		}
		// 6 crops at 10/kg x 100kg each.
		if !output.TotalValue.Equal(decimal.NewFromInt(6000)) {
			t.Errorf("expected total value 6000, got %s", output.TotalValue)
		}
	})

	t.Run("second call is served from cache", func(t *testing.T) {
		cache := newMemoryCache()
		uc := NewGetOverviewUseCase(fakeFarmerCounter{count: 4}, repo, fakeDashboardRepository{}, cache, clock, logger)

		first, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cache.sets != 1 {
			t.Fatalf("expected exactly one cache write, got %d", cache.sets)
		}
		if !first.TotalValue.Equal(second.TotalValue) || first.TotalCrops != second.TotalCrops {
			t.Error("cached overview must match the built one")
		}
	})
}
