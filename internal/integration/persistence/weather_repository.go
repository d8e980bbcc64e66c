// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	"github.com/farm-tracker/backend/internal/integration/persistence/model"
)

// weatherRepository implements the adapter.WeatherRepository interface.
type weatherRepository struct {
	db *gorm.DB
}

// NewWeatherRepository creates a new weather repository instance.
func NewWeatherRepository(db *gorm.DB) adapter.WeatherRepository {
	return &weatherRepository{
		db: db,
	}
}

// Create records a new weather observation.
func (r *weatherRepository) Create(ctx context.Context, data *entity.WeatherData) error {
	weatherModel := model.WeatherDataFromEntity(data)
	result := r.db.WithContext(ctx).Create(weatherModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindRecent retrieves the most recent observations, newest first.
func (r *weatherRepository) FindRecent(ctx context.Context, limit int) ([]*entity.WeatherData, error) {
	var weatherModels []model.WeatherDataModel
	result := r.db.WithContext(ctx).
		Order("date_recorded DESC").
		Limit(limit).
		Find(&weatherModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toWeatherData(weatherModels), nil
}

// FindByLocation retrieves the most recent observations for a location.
func (r *weatherRepository) FindByLocation(ctx context.Context, location string, limit int) ([]*entity.WeatherData, error) {
	var weatherModels []model.WeatherDataModel
	result := r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("date_recorded DESC").
		Limit(limit).
		Find(&weatherModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toWeatherData(weatherModels), nil
}

// ListLocations returns the distinct locations with observations.
func (r *weatherRepository) ListLocations(ctx context.Context) ([]string, error) {
	var locations []string
	result := r.db.WithContext(ctx).
		Model(&model.WeatherDataModel{}).
		Distinct("location").
		Order("location ASC").
		Pluck("location", &locations)
	if result.Error != nil {
		return nil, result.Error
	}
	return locations, nil
}

func toWeatherData(weatherModels []model.WeatherDataModel) []*entity.WeatherData {
	observations := make([]*entity.WeatherData, len(weatherModels))
	for i, wm := range weatherModels {
		observations[i] = wm.ToEntity()
	}
	return observations
}
