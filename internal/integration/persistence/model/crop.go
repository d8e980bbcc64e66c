// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/domain/entity"
)

// CropModel represents the crops table in the database.
type CropModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name              string          `gorm:"type:varchar(100);not null;index"`
	FarmerID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID        *uuid.UUID      `gorm:"type:uuid;index"`
	Season            string          `gorm:"type:varchar(10);not null;index"`
	Status            string          `gorm:"type:varchar(10);not null;index"`
	PricePerKg        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Quantity          decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	PlantedDate       *time.Time      `gorm:"type:date"`
	HarvestDate       time.Time       `gorm:"type:date;not null;index"`
	ActualHarvestDate *time.Time      `gorm:"type:date"`
	InvestmentCost    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Notes             string          `gorm:"type:text"`
	CreatedAt         time.Time       `gorm:"not null;index"`
	UpdatedAt         time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Farmer   *FarmerModel       `gorm:"foreignKey:FarmerID;references:ID"`
	Category *CropCategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the CropModel.
func (CropModel) TableName() string {
	return "crops"
}

// ToEntity converts a CropModel to a domain Crop entity.
func (m *CropModel) ToEntity() *entity.Crop {
	return &entity.Crop{
		ID:                m.ID,
		Name:              m.Name,
		FarmerID:          m.FarmerID,
		CategoryID:        m.CategoryID,
		Season:            entity.Season(m.Season),
		Status:            entity.CropStatus(m.Status),
		PricePerKg:        m.PricePerKg,
		Quantity:          m.Quantity,
		PlantedDate:       m.PlantedDate,
		HarvestDate:       m.HarvestDate,
		ActualHarvestDate: m.ActualHarvestDate,
		InvestmentCost:    m.InvestmentCost,
		Notes:             m.Notes,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ToEntityWithRelations converts a CropModel with preloaded relations to a
// CropWithRelations aggregate.
func (m *CropModel) ToEntityWithRelations() *entity.CropWithRelations {
	out := &entity.CropWithRelations{Crop: m.ToEntity()}
	if m.Farmer != nil {
		out.Farmer = m.Farmer.ToEntity()
	}
	if m.Category != nil {
		out.Category = m.Category.ToEntity()
	}
	return out
}

// CropFromEntity creates a CropModel from a domain Crop entity.
func CropFromEntity(crop *entity.Crop) *CropModel {
	return &CropModel{
		ID:                crop.ID,
		Name:              crop.Name,
		FarmerID:          crop.FarmerID,
		CategoryID:        crop.CategoryID,
		Season:            string(crop.Season),
		Status:            string(crop.Status),
		PricePerKg:        crop.PricePerKg,
		Quantity:          crop.Quantity,
		PlantedDate:       crop.PlantedDate,
		HarvestDate:       crop.HarvestDate,
		ActualHarvestDate: crop.ActualHarvestDate,
		InvestmentCost:    crop.InvestmentCost,
		Notes:             crop.Notes,
		CreatedAt:         crop.CreatedAt,
		UpdatedAt:         crop.UpdatedAt,
	}
}
