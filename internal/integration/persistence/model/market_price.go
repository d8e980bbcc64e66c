// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/domain/entity"
)

// MarketPriceModel represents the market_prices table in the database.
type MarketPriceModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CropName       string          `gorm:"type:varchar(100);not null;index"`
	PricePerKg     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	MarketLocation string          `gorm:"type:varchar(200);not null"`
	DateRecorded   time.Time       `gorm:"type:date;not null;index"`
	Source         string          `gorm:"type:varchar(100);default:'Manual Entry'"`
	CreatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MarketPriceModel.
func (MarketPriceModel) TableName() string {
	return "market_prices"
}

// ToEntity converts a MarketPriceModel to a domain MarketPrice entity.
func (m *MarketPriceModel) ToEntity() *entity.MarketPrice {
	return &entity.MarketPrice{
		ID:             m.ID,
		CropName:       m.CropName,
		PricePerKg:     m.PricePerKg,
		MarketLocation: m.MarketLocation,
		DateRecorded:   m.DateRecorded,
		Source:         m.Source,
		CreatedAt:      m.CreatedAt,
	}
}

// MarketPriceFromEntity creates a MarketPriceModel from a domain entity.
func MarketPriceFromEntity(price *entity.MarketPrice) *MarketPriceModel {
	return &MarketPriceModel{
		ID:             price.ID,
		CropName:       price.CropName,
		PricePerKg:     price.PricePerKg,
		MarketLocation: price.MarketLocation,
		DateRecorded:   price.DateRecorded,
		Source:         price.Source,
		CreatedAt:      price.CreatedAt,
	}
}
