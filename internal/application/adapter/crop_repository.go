// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/domain/entity"
)

// CropSort identifies the ordering of a crop listing.
type CropSort string

const (
	// CropSortHarvestDate orders by harvest date ascending (the default).
	CropSortHarvestDate CropSort = "harvest_date"
	// CropSortValue orders by computed total value descending.
	CropSortValue CropSort = "value"
	// CropSortProfit orders by computed profit descending.
	CropSortProfit CropSort = "profit"
)

// CropFilter defines filter options for listing crops.
type CropFilter struct {
	// Search is matched case-insensitively against crop name, farmer name
	// and season, combined with OR.
	Search string

	// Season and Status are exact-match filters.
	Season *entity.Season
	Status *entity.CropStatus

	// FarmerID restricts results to a single farmer's crops.
	FarmerID *uuid.UUID
}

// SeasonCount is a per-season rollup of crop counts and quantities.
type SeasonCount struct {
	Season   entity.Season
	Count    int
	Quantity float64
}

// StatusCount is a per-status rollup of crop counts.
type StatusCount struct {
	Status entity.CropStatus
	Count  int
}

// MonthCount is a per-creation-month rollup of crop counts and quantities.
type MonthCount struct {
	Month    time.Time // First day of the month
	Count    int
	Quantity float64
}

// CropRepository defines the interface for crop persistence operations.
type CropRepository interface {
	// Create creates a new crop in the database.
	Create(ctx context.Context, crop *entity.Crop) error

	// FindByID retrieves a crop by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Crop, error)

	// FindByIDWithRelations retrieves a crop with its farmer and category.
	FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*entity.CropWithRelations, error)

	// FindByFilter retrieves crops matching the filter with relations
	// loaded, ordered by harvest date ascending. Sorting on computed fields
	// is the caller's responsibility.
	FindByFilter(ctx context.Context, filter CropFilter) ([]*entity.CropWithRelations, error)

	// FindByFarmer retrieves all crops belonging to a farmer.
	FindByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.Crop, error)

	// FindHarvestWindow retrieves crops whose harvest date falls in
	// [from, to] inclusive, restricted to the given statuses when any are
	// provided, ordered by harvest date ascending.
	FindHarvestWindow(ctx context.Context, from, to time.Time, statuses []entity.CropStatus) ([]*entity.CropWithRelations, error)

	// FindOverdue retrieves crops whose harvest date is strictly before the
	// given date, restricted to the given statuses, ordered by harvest date
	// ascending.
	FindOverdue(ctx context.Context, before time.Time, statuses []entity.CropStatus) ([]*entity.CropWithRelations, error)

	// FindRecent retrieves the most recently created crops.
	FindRecent(ctx context.Context, limit int) ([]*entity.CropWithRelations, error)

	// Update updates an existing crop in the database.
	Update(ctx context.Context, crop *entity.Crop) error

	// Delete removes a crop from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of crops.
	Count(ctx context.Context) (int64, error)

	// ClearCategory nulls out the category reference on all crops that
	// point at the given category.
	ClearCategory(ctx context.Context, categoryID uuid.UUID) error
}
