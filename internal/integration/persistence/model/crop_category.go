// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/domain/entity"
)

// CropCategoryModel represents the crop_categories table in the database.
type CropCategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	Icon        string    `gorm:"type:varchar(10);default:'🌾'"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the CropCategoryModel.
func (CropCategoryModel) TableName() string {
	return "crop_categories"
}

// ToEntity converts a CropCategoryModel to a domain CropCategory entity.
func (m *CropCategoryModel) ToEntity() *entity.CropCategory {
	return &entity.CropCategory{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Icon:        m.Icon,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CropCategoryFromEntity creates a CropCategoryModel from a domain entity.
func CropCategoryFromEntity(category *entity.CropCategory) *CropCategoryModel {
	return &CropCategoryModel{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Icon:        category.Icon,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
