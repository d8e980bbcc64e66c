// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/domain/entity"
)

// CategoryAdvice is the advisor's pick for an uncategorized crop.
type CategoryAdvice struct {
	CategoryID uuid.UUID
	Confidence float64
	Keywords   []string
}

// CategoryAdvisor defines the interface for the AI service that suggests a
// crop category from the crop's name, season and notes.
type CategoryAdvisor interface {
	// SuggestCategory picks the best-fitting category from the given set,
	// or returns nil when no category fits.
	SuggestCategory(ctx context.Context, crop *entity.Crop, categories []*entity.CropCategory) (*CategoryAdvice, error)
}

// SuggestionRepository defines the interface for category suggestion
// persistence operations.
type SuggestionRepository interface {
	// Create creates a new suggestion in the database.
	Create(ctx context.Context, suggestion *entity.CategorySuggestion) error

	// FindByID retrieves a suggestion by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CategorySuggestion, error)

	// FindPending retrieves pending suggestions with crop and category loaded.
	FindPending(ctx context.Context) ([]*entity.CategorySuggestionWithDetails, error)

	// FindPendingByCrop retrieves the pending suggestion for a crop, if any.
	FindPendingByCrop(ctx context.Context, cropID uuid.UUID) (*entity.CategorySuggestion, error)

	// Update saves changes to a suggestion.
	Update(ctx context.Context, suggestion *entity.CategorySuggestion) error
}
