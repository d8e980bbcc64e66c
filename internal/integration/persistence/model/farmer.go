// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/domain/entity"
)

// FarmerModel represents the farmers table in the database.
type FarmerModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name            string          `gorm:"type:varchar(100);not null;index"`
	Phone           string          `gorm:"type:varchar(20);not null"`
	Email           string          `gorm:"type:varchar(255)"`
	Address         string          `gorm:"type:text"`
	UserID          *uuid.UUID      `gorm:"type:uuid;index"`
	DateOfBirth     *time.Time      `gorm:"type:date"`
	ExperienceYears int             `gorm:"not null;default:0"`
	LandAreaAcres   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Crops []CropModel `gorm:"foreignKey:FarmerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the FarmerModel.
func (FarmerModel) TableName() string {
	return "farmers"
}

// ToEntity converts a FarmerModel to a domain Farmer entity.
func (m *FarmerModel) ToEntity() *entity.Farmer {
	return &entity.Farmer{
		ID:              m.ID,
		Name:            m.Name,
		Phone:           m.Phone,
		Email:           m.Email,
		Address:         m.Address,
		UserID:          m.UserID,
		DateOfBirth:     m.DateOfBirth,
		ExperienceYears: m.ExperienceYears,
		LandAreaAcres:   m.LandAreaAcres,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FarmerFromEntity creates a FarmerModel from a domain Farmer entity.
func FarmerFromEntity(farmer *entity.Farmer) *FarmerModel {
	return &FarmerModel{
		ID:              farmer.ID,
		Name:            farmer.Name,
		Phone:           farmer.Phone,
		Email:           farmer.Email,
		Address:         farmer.Address,
		UserID:          farmer.UserID,
		DateOfBirth:     farmer.DateOfBirth,
		ExperienceYears: farmer.ExperienceYears,
		LandAreaAcres:   farmer.LandAreaAcres,
		CreatedAt:       farmer.CreatedAt,
		UpdatedAt:       farmer.UpdatedAt,
	}
}
