// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	"github.com/farm-tracker/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the adapter.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) adapter.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// SeasonCounts returns the crop count and summed quantity per season.
func (r *dashboardRepository) SeasonCounts(ctx context.Context) ([]adapter.SeasonCount, error) {
	var results []struct {
		Season   string  `gorm:"column:season"`
		Count    int     `gorm:"column:count"`
		Quantity float64 `gorm:"column:quantity"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.CropModel{}).
		Select("season, COUNT(*) as count, COALESCE(SUM(quantity), 0) as quantity").
		Group("season").
		Order("season ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get season counts: %w", err)
	}

	counts := make([]adapter.SeasonCount, len(results))
	for i, res := range results {
		counts[i] = adapter.SeasonCount{
			Season:   entity.Season(res.Season),
			Count:    res.Count,
			Quantity: res.Quantity,
		}
	}
	return counts, nil
}

// StatusCounts returns the crop count per status.
func (r *dashboardRepository) StatusCounts(ctx context.Context) ([]adapter.StatusCount, error) {
	var results []struct {
		Status string `gorm:"column:status"`
		Count  int    `gorm:"column:count"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.CropModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Order("status ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}

	counts := make([]adapter.StatusCount, len(results))
	for i, res := range results {
		counts[i] = adapter.StatusCount{
			Status: entity.CropStatus(res.Status),
			Count:  res.Count,
		}
	}
	return counts, nil
}

// MonthlyCounts returns the crop count and summed quantity per creation
// month, counting back from the reference date, oldest first. The month
// bucketing is done in Go because date truncation SQL differs between
// postgres and the sqlite used in tests.
func (r *dashboardRepository) MonthlyCounts(ctx context.Context, ref time.Time, months int) ([]adapter.MonthCount, error) {
	latest := monthStart(ref.UTC())
	cutoff := latest.AddDate(0, -(months - 1), 0)

	var rows []struct {
		CreatedAt time.Time       `gorm:"column:created_at"`
		Quantity  decimal.Decimal `gorm:"column:quantity"`
	}
	err := r.db.WithContext(ctx).
		Model(&model.CropModel{}).
		Select("created_at, quantity").
		Where("created_at >= ?", cutoff).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly counts: %w", err)
	}

	buckets := make(map[time.Time]*adapter.MonthCount)
	for _, row := range rows {
		month := monthStart(row.CreatedAt.UTC())
		bucket := buckets[month]
		if bucket == nil {
			bucket = &adapter.MonthCount{Month: month}
			buckets[month] = bucket
		}
		bucket.Count++
		qty, _ := row.Quantity.Float64()
		bucket.Quantity += qty
	}

	counts := make([]adapter.MonthCount, 0, months)
	for m := cutoff; !m.After(latest); m = m.AddDate(0, 1, 0) {
		if bucket := buckets[m]; bucket != nil {
			counts = append(counts, *bucket)
		} else {
			counts = append(counts, adapter.MonthCount{Month: m})
		}
	}
	return counts, nil
}

// TopFarmersByQuantity returns farmers ranked by summed crop quantity.
func (r *dashboardRepository) TopFarmersByQuantity(ctx context.Context, limit int) ([]adapter.TopFarmer, error) {
	var results []struct {
		FarmerID      uuid.UUID       `gorm:"column:farmer_id"`
		CropCount     int             `gorm:"column:crop_count"`
		TotalQuantity decimal.Decimal `gorm:"column:total_quantity"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.CropModel{}).
		Select("farmer_id, COUNT(*) as crop_count, COALESCE(SUM(quantity), 0) as total_quantity").
		Group("farmer_id").
		Order("total_quantity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get top farmers: %w", err)
	}

	top := make([]adapter.TopFarmer, 0, len(results))
	for _, res := range results {
		var farmerModel model.FarmerModel
		if err := r.db.WithContext(ctx).Where("id = ?", res.FarmerID).First(&farmerModel).Error; err != nil {
			return nil, fmt.Errorf("failed to load top farmer: %w", err)
		}
		top = append(top, adapter.TopFarmer{
			Farmer:        farmerModel.ToEntity(),
			CropCount:     res.CropCount,
			TotalQuantity: res.TotalQuantity,
		})
	}
	return top, nil
}

// monthStart truncates a time to the first day of its month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
