// Package crop contains crop-related use cases.
package crop

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
)

// ListCropsInput represents the input for listing crops.
type ListCropsInput struct {
	Search string
	Season string          // Optional exact-match filter
	Status string          // Optional exact-match filter
	Sort   adapter.CropSort // Defaults to CropSortHarvestDate
}

// CropListItem is a crop row with its derived fields materialized.
type CropListItem struct {
	Crop          *entity.Crop
	Farmer        *entity.Farmer
	Category      *entity.CropCategory
	TotalValue    decimal.Decimal
	Profit        decimal.Decimal
	ProfitMargin  decimal.Decimal
	DaysToHarvest int
	IsOverdue     bool
}

// ListCropsOutput represents the output of listing crops.
type ListCropsOutput struct {
	Crops []*CropListItem
}

// ListCropsUseCase handles the crop listing with search, filtering and
// sorting. Sorts on computed fields materialize the derived value first
// since they cannot be delegated to the persistence layer.
type ListCropsUseCase struct {
	cropRepo adapter.CropRepository
	clock    adapter.Clock
}

// NewListCropsUseCase creates a new ListCropsUseCase instance.
func NewListCropsUseCase(cropRepo adapter.CropRepository, clock adapter.Clock) *ListCropsUseCase {
	return &ListCropsUseCase{
		cropRepo: cropRepo,
		clock:    clock,
	}
}

// Execute performs the crop listing.
func (uc *ListCropsUseCase) Execute(ctx context.Context, input ListCropsInput) (*ListCropsOutput, error) {
	filter := adapter.CropFilter{Search: input.Search}

	if input.Season != "" {
		season := entity.Season(input.Season)
		if !isValidSeason(season) {
			return nil, domainerror.NewCropError(
				domainerror.ErrCodeInvalidSeason,
				"season must be 'Kharif', 'Rabi', 'Zaid' or 'Annual'",
				domainerror.ErrInvalidSeason,
			)
		}
		filter.Season = &season
	}
	if input.Status != "" {
		status := entity.CropStatus(input.Status)
		if !isValidStatus(status) {
			return nil, domainerror.NewCropError(
				domainerror.ErrCodeInvalidCropStatus,
				"status must be 'Planted', 'Growing', 'Ready', 'Harvested' or 'Sold'",
				domainerror.ErrInvalidCropStatus,
			)
		}
		filter.Status = &status
	}

	sortKey := input.Sort
	if sortKey == "" {
		sortKey = adapter.CropSortHarvestDate
	}
	switch sortKey {
	case adapter.CropSortHarvestDate, adapter.CropSortValue, adapter.CropSortProfit:
	default:
		return nil, domainerror.NewCropError(
			domainerror.ErrCodeInvalidCropSort,
			"sort must be 'harvest_date', 'value' or 'profit'",
			domainerror.ErrInvalidCropSort,
		)
	}

	crops, err := uc.cropRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list crops: %w", err)
	}

	today := uc.clock.Now()
	items := make([]*CropListItem, len(crops))
	for i, c := range crops {
		items[i] = materialize(c, today)
	}

	// The repository already orders by harvest date; computed sorts are
	// applied in memory on the materialized values.
	switch sortKey {
	case adapter.CropSortValue:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].TotalValue.GreaterThan(items[j].TotalValue)
		})
	case adapter.CropSortProfit:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Profit.GreaterThan(items[j].Profit)
		})
	}

	return &ListCropsOutput{Crops: items}, nil
}

// materialize computes a crop's derived fields against the given date.
func materialize(c *entity.CropWithRelations, today time.Time) *CropListItem {
	return &CropListItem{
		Crop:          c.Crop,
		Farmer:        c.Farmer,
		Category:      c.Category,
		TotalValue:    c.Crop.TotalValue(),
		Profit:        c.Crop.Profit(),
		ProfitMargin:  c.Crop.ProfitMargin(),
		DaysToHarvest: c.Crop.DaysToHarvest(today),
		IsOverdue:     c.Crop.IsOverdue(today),
	}
}
