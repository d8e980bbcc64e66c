// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/domain/entity"
)

// TopFarmer is a farmer ranked by the summed quantity of their crops.
type TopFarmer struct {
	Farmer        *entity.Farmer
	CropCount     int
	TotalQuantity decimal.Decimal
}

// DashboardRepository defines the aggregate queries behind the dashboard
// overview. These are rollups the row-oriented repositories cannot express
// without loading whole tables.
type DashboardRepository interface {
	// SeasonCounts returns the crop count and summed quantity per season.
	SeasonCounts(ctx context.Context) ([]SeasonCount, error)

	// StatusCounts returns the crop count per status.
	StatusCounts(ctx context.Context) ([]StatusCount, error)

	// MonthlyCounts returns the crop count and summed quantity per creation
	// month, oldest first, counting back from the month of the reference
	// date so callers control the clock.
	MonthlyCounts(ctx context.Context, ref time.Time, months int) ([]MonthCount, error)

	// TopFarmersByQuantity returns farmers ranked by summed crop quantity,
	// highest first.
	TopFarmersByQuantity(ctx context.Context, limit int) ([]TopFarmer, error)
}
