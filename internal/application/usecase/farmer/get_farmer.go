// Package farmer contains farmer-related use cases.
package farmer

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
)

// recentCropLimit caps the recent-activity list on the farmer detail view.
const recentCropLimit = 5

// GetFarmerInput represents the input for retrieving a farmer profile.
type GetFarmerInput struct {
	FarmerID uuid.UUID
}

// GetFarmerOutput represents a farmer profile with analytics.
type GetFarmerOutput struct {
	Farmer           *entity.Farmer
	CropCount        int
	TotalValue       decimal.Decimal
	UpcomingHarvests []*entity.Crop // Within the next 30 days, harvest date asc
	CropsBySeason    map[entity.Season]int
	CropsByStatus    map[entity.CropStatus]int
	RecentCrops      []*entity.Crop // Newest first
}

// GetFarmerUseCase handles the farmer detail view with analytics.
type GetFarmerUseCase struct {
	farmerRepo adapter.FarmerRepository
	cropRepo   adapter.CropRepository
	clock      adapter.Clock
}

// NewGetFarmerUseCase creates a new GetFarmerUseCase instance.
func NewGetFarmerUseCase(farmerRepo adapter.FarmerRepository, cropRepo adapter.CropRepository, clock adapter.Clock) *GetFarmerUseCase {
	return &GetFarmerUseCase{
		farmerRepo: farmerRepo,
		cropRepo:   cropRepo,
		clock:      clock,
	}
}

// Execute retrieves the farmer and computes their analytics.
func (uc *GetFarmerUseCase) Execute(ctx context.Context, input GetFarmerInput) (*GetFarmerOutput, error) {
	farmer, err := uc.farmerRepo.FindByID(ctx, input.FarmerID)
	if err != nil {
		return nil, err
	}

	crops, err := uc.cropRepo.FindByFarmer(ctx, farmer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load farmer crops: %w", err)
	}

	today := uc.clock.Now()
	horizon := today.AddDate(0, 0, upcomingWindowDays)

	output := &GetFarmerOutput{
		Farmer:        farmer,
		CropCount:     len(crops),
		TotalValue:    decimal.Zero,
		CropsBySeason: make(map[entity.Season]int),
		CropsByStatus: make(map[entity.CropStatus]int),
	}

	for _, c := range crops {
		output.TotalValue = output.TotalValue.Add(c.TotalValue())
		output.CropsBySeason[c.Season]++
		output.CropsByStatus[c.Status]++
		if withinWindow(c.HarvestDate, today, horizon) {
			output.UpcomingHarvests = append(output.UpcomingHarvests, c)
		}
	}

	sortCropsByHarvestDate(output.UpcomingHarvests)
	output.RecentCrops = recentCrops(crops, recentCropLimit)

	return output, nil
}

// sortCropsByHarvestDate orders crops by harvest date ascending.
func sortCropsByHarvestDate(crops []*entity.Crop) {
	sort.Slice(crops, func(i, j int) bool {
		return crops[i].HarvestDate.Before(crops[j].HarvestDate)
	})
}

// recentCrops returns the most recently created crops, newest first.
func recentCrops(crops []*entity.Crop, limit int) []*entity.Crop {
	recent := make([]*entity.Crop, len(crops))
	copy(recent, crops)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}
