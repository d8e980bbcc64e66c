// Package weather contains weather observation use cases.
package weather

import (
	"context"
	"fmt"
	"strings"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
)

// defaultObservationLimit bounds an unqualified observation listing.
const defaultObservationLimit = 50

// ListObservationsInput represents the input for listing observations.
type ListObservationsInput struct {
	Location string // Optional exact-match filter
	Limit    int    // Defaults to 50
}

// ListObservationsOutput represents the output of listing observations.
type ListObservationsOutput struct {
	Observations []*entity.WeatherData
}

// ListObservationsUseCase handles the weather listing, newest first.
type ListObservationsUseCase struct {
	weatherRepo adapter.WeatherRepository
}

// NewListObservationsUseCase creates a new ListObservationsUseCase instance.
func NewListObservationsUseCase(weatherRepo adapter.WeatherRepository) *ListObservationsUseCase {
	return &ListObservationsUseCase{
		weatherRepo: weatherRepo,
	}
}

// Execute performs the observation listing.
func (uc *ListObservationsUseCase) Execute(ctx context.Context, input ListObservationsInput) (*ListObservationsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultObservationLimit
	}

	var (
		observations []*entity.WeatherData
		err          error
	)
	if location := strings.TrimSpace(input.Location); location != "" {
		observations, err = uc.weatherRepo.FindByLocation(ctx, location, limit)
	} else {
		observations, err = uc.weatherRepo.FindRecent(ctx, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list weather observations: %w", err)
	}

	return &ListObservationsOutput{Observations: observations}, nil
}
