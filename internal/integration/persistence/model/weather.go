// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/domain/entity"
)

// WeatherDataModel represents the weather_data table in the database.
type WeatherDataModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Location     string    `gorm:"type:varchar(100);not null;index"`
	Temperature  float64   `gorm:"not null"`
	Humidity     float64   `gorm:"not null"`
	Rainfall     float64   `gorm:"not null;default:0"`
	Condition    string    `gorm:"type:varchar(50)"`
	DateRecorded time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the WeatherDataModel.
func (WeatherDataModel) TableName() string {
	return "weather_data"
}

// ToEntity converts a WeatherDataModel to a domain WeatherData entity.
func (m *WeatherDataModel) ToEntity() *entity.WeatherData {
	return &entity.WeatherData{
		ID:           m.ID,
		Location:     m.Location,
		Temperature:  m.Temperature,
		Humidity:     m.Humidity,
		Rainfall:     m.Rainfall,
		Condition:    m.Condition,
		DateRecorded: m.DateRecorded,
	}
}

// WeatherDataFromEntity creates a WeatherDataModel from a domain entity.
func WeatherDataFromEntity(data *entity.WeatherData) *WeatherDataModel {
	return &WeatherDataModel{
		ID:           data.ID,
		Location:     data.Location,
		Temperature:  data.Temperature,
		Humidity:     data.Humidity,
		Rainfall:     data.Rainfall,
		Condition:    data.Condition,
		DateRecorded: data.DateRecorded,
	}
}
