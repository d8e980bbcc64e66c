// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/farm-tracker/backend/internal/domain/entity"
)

// WeatherRepository defines the interface for weather observation
// persistence. Observations are append-only reference data.
type WeatherRepository interface {
	// Create records a new weather observation.
	Create(ctx context.Context, data *entity.WeatherData) error

	// FindRecent retrieves the most recent observations, newest first.
	FindRecent(ctx context.Context, limit int) ([]*entity.WeatherData, error)

	// FindByLocation retrieves the most recent observations for a location,
	// newest first.
	FindByLocation(ctx context.Context, location string, limit int) ([]*entity.WeatherData, error)

	// ListLocations returns the distinct locations with observations.
	ListLocations(ctx context.Context) ([]string, error)
}
