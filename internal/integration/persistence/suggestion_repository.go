// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
	"github.com/farm-tracker/backend/internal/integration/persistence/model"
)

// suggestionRepository implements the adapter.SuggestionRepository interface.
type suggestionRepository struct {
	db *gorm.DB
}

// NewSuggestionRepository creates a new suggestion repository instance.
func NewSuggestionRepository(db *gorm.DB) adapter.SuggestionRepository {
	return &suggestionRepository{
		db: db,
	}
}

// Create creates a new suggestion in the database.
func (r *suggestionRepository) Create(ctx context.Context, suggestion *entity.CategorySuggestion) error {
	suggestionModel := model.CategorySuggestionFromEntity(suggestion)
	result := r.db.WithContext(ctx).Create(suggestionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a suggestion by its ID.
func (r *suggestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CategorySuggestion, error) {
	var suggestionModel model.CategorySuggestionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&suggestionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSuggestionNotFound
		}
		return nil, result.Error
	}
	return suggestionModel.ToEntity(), nil
}

// FindPending retrieves pending suggestions with crop and category loaded.
func (r *suggestionRepository) FindPending(ctx context.Context) ([]*entity.CategorySuggestionWithDetails, error) {
	var suggestionModels []model.CategorySuggestionModel
	result := r.db.WithContext(ctx).
		Preload("Crop").
		Preload("Category").
		Where("status = ?", string(entity.SuggestionStatusPending)).
		Order("created_at ASC").
		Find(&suggestionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	suggestions := make([]*entity.CategorySuggestionWithDetails, len(suggestionModels))
	for i := range suggestionModels {
		suggestions[i] = suggestionModels[i].ToEntityWithDetails()
	}
	return suggestions, nil
}

// FindPendingByCrop retrieves the pending suggestion for a crop, if any.
// A missing suggestion is a nil result, not an error.
func (r *suggestionRepository) FindPendingByCrop(ctx context.Context, cropID uuid.UUID) (*entity.CategorySuggestion, error) {
	var suggestionModel model.CategorySuggestionModel
	result := r.db.WithContext(ctx).
		Where("crop_id = ? AND status = ?", cropID, string(entity.SuggestionStatusPending)).
		First(&suggestionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return suggestionModel.ToEntity(), nil
}

// Update saves changes to a suggestion.
func (r *suggestionRepository) Update(ctx context.Context, suggestion *entity.CategorySuggestion) error {
	suggestionModel := model.CategorySuggestionFromEntity(suggestion)
	result := r.db.WithContext(ctx).Save(suggestionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
