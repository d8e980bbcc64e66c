// Package weather contains weather observation use cases.
package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
)

// RecordObservationInput represents the input for recording an observation.
type RecordObservationInput struct {
	Location     string
	Temperature  float64
	Humidity     float64
	Rainfall     float64
	Condition    string
	DateRecorded time.Time // Zero value defaults to now
}

// RecordObservationOutput represents the output of recording an observation.
type RecordObservationOutput struct {
	Observation *entity.WeatherData
}

// RecordObservationUseCase handles the append-only weather log.
type RecordObservationUseCase struct {
	weatherRepo adapter.WeatherRepository
}

// NewRecordObservationUseCase creates a new RecordObservationUseCase instance.
func NewRecordObservationUseCase(weatherRepo adapter.WeatherRepository) *RecordObservationUseCase {
	return &RecordObservationUseCase{
		weatherRepo: weatherRepo,
	}
}

// Execute records the weather observation.
func (uc *RecordObservationUseCase) Execute(ctx context.Context, input RecordObservationInput) (*RecordObservationOutput, error) {
	location := strings.TrimSpace(input.Location)
	if location == "" {
		return nil, domainerror.NewWeatherError(
			domainerror.ErrCodeLocationRequired,
			"location is required",
			domainerror.ErrLocationRequired,
		)
	}
	if input.Humidity < 0 || input.Humidity > 100 {
		return nil, domainerror.NewWeatherError(
			domainerror.ErrCodeInvalidHumidity,
			"humidity must be between 0 and 100",
			domainerror.ErrInvalidHumidity,
		)
	}
	if input.Rainfall < 0 {
		return nil, domainerror.NewWeatherError(
			domainerror.ErrCodeInvalidRainfall,
			"rainfall must not be negative",
			domainerror.ErrInvalidRainfall,
		)
	}

	observation := entity.NewWeatherData(location, input.Temperature, input.Humidity, input.Rainfall, input.Condition, input.DateRecorded)

	if err := uc.weatherRepo.Create(ctx, observation); err != nil {
		return nil, fmt.Errorf("failed to record weather observation: %w", err)
	}

	return &RecordObservationOutput{
		Observation: observation,
	}, nil
}
