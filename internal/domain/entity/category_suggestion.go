// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SuggestionStatus represents the status of an AI category suggestion.
type SuggestionStatus string

const (
	SuggestionStatusPending  SuggestionStatus = "pending"
	SuggestionStatusApproved SuggestionStatus = "approved"
	SuggestionStatusRejected SuggestionStatus = "rejected"
)

// CategorySuggestion represents an AI-generated category suggestion for an
// uncategorized crop. Keywords record the terms the model matched on.
type CategorySuggestion struct {
	ID         uuid.UUID
	CropID     uuid.UUID
	CategoryID uuid.UUID
	Confidence float64 // [0, 1]
	Keywords   []string
	Status     SuggestionStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewCategorySuggestion creates a new pending CategorySuggestion entity.
func NewCategorySuggestion(cropID, categoryID uuid.UUID, confidence float64, keywords []string) *CategorySuggestion {
	now := time.Now().UTC()

	return &CategorySuggestion{
		ID:         uuid.New(),
		CropID:     cropID,
		CategoryID: categoryID,
		Confidence: confidence,
		Keywords:   keywords,
		Status:     SuggestionStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CategorySuggestionWithDetails represents a suggestion with its crop and
// suggested category loaded.
type CategorySuggestionWithDetails struct {
	Suggestion *CategorySuggestion
	Crop       *Crop
	Category   *CropCategory
}
