// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	"github.com/farm-tracker/backend/internal/integration/persistence/model"
)

// marketPriceRepository implements the adapter.MarketPriceRepository interface.
type marketPriceRepository struct {
	db *gorm.DB
}

// NewMarketPriceRepository creates a new market price repository instance.
func NewMarketPriceRepository(db *gorm.DB) adapter.MarketPriceRepository {
	return &marketPriceRepository{
		db: db,
	}
}

// Create records a new market price.
func (r *marketPriceRepository) Create(ctx context.Context, price *entity.MarketPrice) error {
	priceModel := model.MarketPriceFromEntity(price)
	result := r.db.WithContext(ctx).Create(priceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindRecent retrieves the most recent prices, newest first.
func (r *marketPriceRepository) FindRecent(ctx context.Context, limit int) ([]*entity.MarketPrice, error) {
	var priceModels []model.MarketPriceModel
	result := r.db.WithContext(ctx).
		Order("date_recorded DESC, created_at DESC").
		Limit(limit).
		Find(&priceModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toMarketPrices(priceModels), nil
}

// FindByCropName retrieves the most recent prices whose crop name contains
// the given name (case-insensitive), newest first.
func (r *marketPriceRepository) FindByCropName(ctx context.Context, cropName string, limit int) ([]*entity.MarketPrice, error) {
	pattern := "%" + strings.ToLower(cropName) + "%"

	var priceModels []model.MarketPriceModel
	result := r.db.WithContext(ctx).
		Where("LOWER(crop_name) LIKE ?", pattern).
		Order("date_recorded DESC, created_at DESC").
		Limit(limit).
		Find(&priceModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toMarketPrices(priceModels), nil
}

func toMarketPrices(priceModels []model.MarketPriceModel) []*entity.MarketPrice {
	prices := make([]*entity.MarketPrice, len(priceModels))
	for i, pm := range priceModels {
		prices[i] = pm.ToEntity()
	}
	return prices
}
