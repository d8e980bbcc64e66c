// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryIcon is the default icon glyph for crop categories.
const DefaultCategoryIcon = "🌾"

// CropCategory represents a grouping of crops such as cereals or pulses.
// Deleting a category leaves referencing crops uncategorized.
type CropCategory struct {
	ID          uuid.UUID
	Name        string
	Description string
	Icon        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCropCategory creates a new CropCategory entity.
// Note: Defaulting logic for the icon is applied in the Application layer
// (UseCase) before calling this constructor.
func NewCropCategory(name, description, icon string) *CropCategory {
	now := time.Now().UTC()

	return &CropCategory{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Icon:        icon,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
