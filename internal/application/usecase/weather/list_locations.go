// Package weather contains weather observation use cases.
package weather

import (
	"context"
	"fmt"

	"github.com/farm-tracker/backend/internal/application/adapter"
)

// ListLocationsOutput represents the output of listing known locations.
type ListLocationsOutput struct {
	Locations []string
}

// ListLocationsUseCase returns the distinct locations with observations.
type ListLocationsUseCase struct {
	weatherRepo adapter.WeatherRepository
}

// NewListLocationsUseCase creates a new ListLocationsUseCase instance.
func NewListLocationsUseCase(weatherRepo adapter.WeatherRepository) *ListLocationsUseCase {
	return &ListLocationsUseCase{
		weatherRepo: weatherRepo,
	}
}

// Execute lists the known locations.
func (uc *ListLocationsUseCase) Execute(ctx context.Context) (*ListLocationsOutput, error) {
	locations, err := uc.weatherRepo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list weather locations: %w", err)
	}

	return &ListLocationsOutput{Locations: locations}, nil
}
