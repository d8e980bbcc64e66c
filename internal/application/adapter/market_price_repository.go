// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/farm-tracker/backend/internal/domain/entity"
)

// MarketPriceRepository defines the interface for market price persistence
// operations. Rows are append-only; there is no update or delete.
type MarketPriceRepository interface {
	// Create records a new market price.
	Create(ctx context.Context, price *entity.MarketPrice) error

	// FindRecent retrieves the most recent prices, newest first.
	FindRecent(ctx context.Context, limit int) ([]*entity.MarketPrice, error)

	// FindByCropName retrieves the most recent prices whose crop name
	// contains the given name (case-insensitive), newest first.
	FindByCropName(ctx context.Context, cropName string, limit int) ([]*entity.MarketPrice, error)
}
