// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/farm-tracker/backend/internal/domain/entity"
)

// CategorySuggestionModel represents the category_suggestions table in the
// database.
type CategorySuggestionModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CropID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Confidence float64        `gorm:"not null;default:0"`
	Keywords   pq.StringArray `gorm:"type:text[]"`
	Status     string         `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Crop     *CropModel         `gorm:"foreignKey:CropID;references:ID"`
	Category *CropCategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the CategorySuggestionModel.
func (CategorySuggestionModel) TableName() string {
	return "category_suggestions"
}

// ToEntity converts a CategorySuggestionModel to a domain entity.
func (m *CategorySuggestionModel) ToEntity() *entity.CategorySuggestion {
	return &entity.CategorySuggestion{
		ID:         m.ID,
		CropID:     m.CropID,
		CategoryID: m.CategoryID,
		Confidence: m.Confidence,
		Keywords:   []string(m.Keywords),
		Status:     entity.SuggestionStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ToEntityWithDetails converts a model with preloaded relations to the
// detail aggregate.
func (m *CategorySuggestionModel) ToEntityWithDetails() *entity.CategorySuggestionWithDetails {
	out := &entity.CategorySuggestionWithDetails{Suggestion: m.ToEntity()}
	if m.Crop != nil {
		out.Crop = m.Crop.ToEntity()
	}
	if m.Category != nil {
		out.Category = m.Category.ToEntity()
	}
	return out
}

// CategorySuggestionFromEntity creates a model from a domain entity.
func CategorySuggestionFromEntity(suggestion *entity.CategorySuggestion) *CategorySuggestionModel {
	return &CategorySuggestionModel{
		ID:         suggestion.ID,
		CropID:     suggestion.CropID,
		CategoryID: suggestion.CategoryID,
		Confidence: suggestion.Confidence,
		Keywords:   pq.StringArray(suggestion.Keywords),
		Status:     string(suggestion.Status),
		CreatedAt:  suggestion.CreatedAt,
		UpdatedAt:  suggestion.UpdatedAt,
	}
}
