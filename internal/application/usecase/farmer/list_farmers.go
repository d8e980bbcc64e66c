// Package farmer contains farmer-related use cases.
package farmer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
)

// upcomingWindowDays is the horizon for the per-farmer upcoming-harvest count.
const upcomingWindowDays = 30

// ListFarmersInput represents the input for listing farmers.
type ListFarmersInput struct {
	Search           string
	ExperienceBucket string // Optional: new | experienced | expert
}

// ListFarmersOutput represents the output of listing farmers.
type ListFarmersOutput struct {
	Farmers []*entity.FarmerWithStats
}

// ListFarmersUseCase handles the farmer listing with search, experience
// filtering and per-farmer crop statistics.
type ListFarmersUseCase struct {
	farmerRepo adapter.FarmerRepository
	cropRepo   adapter.CropRepository
	clock      adapter.Clock
}

// NewListFarmersUseCase creates a new ListFarmersUseCase instance.
func NewListFarmersUseCase(farmerRepo adapter.FarmerRepository, cropRepo adapter.CropRepository, clock adapter.Clock) *ListFarmersUseCase {
	return &ListFarmersUseCase{
		farmerRepo: farmerRepo,
		cropRepo:   cropRepo,
		clock:      clock,
	}
}

// Execute performs the farmer listing.
func (uc *ListFarmersUseCase) Execute(ctx context.Context, input ListFarmersInput) (*ListFarmersOutput, error) {
	filter := adapter.FarmerFilter{Search: input.Search}

	if input.ExperienceBucket != "" {
		bucket := entity.ExperienceBucket(input.ExperienceBucket)
		switch bucket {
		case entity.ExperienceBucketNew, entity.ExperienceBucketExperienced, entity.ExperienceBucketExpert:
			filter.ExperienceBucket = &bucket
		default:
			return nil, domainerror.NewFarmerError(
				domainerror.ErrCodeInvalidExperienceBucket,
				"experience bucket must be 'new', 'experienced' or 'expert'",
				domainerror.ErrInvalidExperienceBucket,
			)
		}
	}

	farmers, err := uc.farmerRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list farmers: %w", err)
	}

	crops, err := uc.cropRepo.FindByFilter(ctx, adapter.CropFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load crops for farmer stats: %w", err)
	}

	today := uc.clock.Now()
	horizon := today.AddDate(0, 0, upcomingWindowDays)

	byFarmer := make(map[uuid.UUID][]*entity.Crop)
	for _, c := range crops {
		byFarmer[c.Crop.FarmerID] = append(byFarmer[c.Crop.FarmerID], c.Crop)
	}

	output := &ListFarmersOutput{
		Farmers: make([]*entity.FarmerWithStats, len(farmers)),
	}

	for i, f := range farmers {
		stats := &entity.FarmerWithStats{
			Farmer:     f,
			TotalValue: decimal.Zero,
		}
		for _, c := range byFarmer[f.ID] {
			stats.CropCount++
			stats.TotalValue = stats.TotalValue.Add(c.TotalValue())
			if withinWindow(c.HarvestDate, today, horizon) {
				stats.UpcomingCount++
			}
		}
		output.Farmers[i] = stats
	}

	return output, nil
}

// withinWindow reports whether the harvest date falls in [today, horizon]
// inclusive, comparing calendar days.
func withinWindow(harvest, today, horizon time.Time) bool {
	h := dateOnly(harvest)
	return !h.Before(dateOnly(today)) && !h.After(dateOnly(horizon))
}

// dateOnly strips the time-of-day component.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
