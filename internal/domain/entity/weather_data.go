// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WeatherData records an observation for a location. Rows are immutable
// reference data once created.
type WeatherData struct {
	ID           uuid.UUID
	Location     string
	Temperature  float64 // Celsius
	Humidity     float64 // Percent
	Rainfall     float64 // Millimetres
	Condition    string
	DateRecorded time.Time
}

// NewWeatherData creates a new WeatherData entity. The recorded timestamp
// defaults to now when the zero value is passed.
func NewWeatherData(location string, temperature, humidity, rainfall float64, condition string, dateRecorded time.Time) *WeatherData {
	if dateRecorded.IsZero() {
		dateRecorded = time.Now().UTC()
	}

	return &WeatherData{
		ID:           uuid.New(),
		Location:     location,
		Temperature:  temperature,
		Humidity:     humidity,
		Rainfall:     rainfall,
		Condition:    condition,
		DateRecorded: dateRecorded,
	}
}
