// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/farm-tracker/backend/internal/domain/entity"
)

// RecordObservationRequest represents the request body for a weather observation.
type RecordObservationRequest struct {
	Location     string     `json:"location" binding:"required,min=1,max=200"`
	Temperature  float64    `json:"temperature"`
	Humidity     float64    `json:"humidity"`
	Rainfall     float64    `json:"rainfall"`
	Condition    string     `json:"condition,omitempty"`
	DateRecorded *time.Time `json:"date_recorded,omitempty"`
}

// WeatherObservationResponse represents a single observation in API responses.
type WeatherObservationResponse struct {
	ID           string    `json:"id"`
	Location     string    `json:"location"`
	Temperature  float64   `json:"temperature"`
	Humidity     float64   `json:"humidity"`
	Rainfall     float64   `json:"rainfall"`
	Condition    string    `json:"condition"`
	DateRecorded time.Time `json:"date_recorded"`
}

// WeatherListResponse represents the response for listing observations.
type WeatherListResponse struct {
	Observations []WeatherObservationResponse `json:"observations"`
}

// WeatherLocationsResponse represents the known observation locations.
type WeatherLocationsResponse struct {
	Locations []string `json:"locations"`
}

// ToWeatherObservationResponse converts a WeatherData entity to a response DTO.
func ToWeatherObservationResponse(w *entity.WeatherData) WeatherObservationResponse {
	return WeatherObservationResponse{
		ID:           w.ID.String(),
		Location:     w.Location,
		Temperature:  w.Temperature,
		Humidity:     w.Humidity,
		Rainfall:     w.Rainfall,
		Condition:    w.Condition,
		DateRecorded: w.DateRecorded,
	}
}

// ToWeatherListResponse converts observations to a list response.
func ToWeatherListResponse(observations []*entity.WeatherData) WeatherListResponse {
	responses := make([]WeatherObservationResponse, len(observations))
	for i, w := range observations {
		responses[i] = ToWeatherObservationResponse(w)
	}
	return WeatherListResponse{Observations: responses}
}
