// Package advisor contains the AI category advisor use cases.
package advisor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
)

// SuggestCategoryInput represents the input for a category suggestion.
type SuggestCategoryInput struct {
	CropID uuid.UUID
}

// SuggestCategoryOutput represents the output of a category suggestion.
// Suggestion is nil when the advisor found no fitting category.
type SuggestCategoryOutput struct {
	Suggestion *entity.CategorySuggestion
	Category   *entity.CropCategory
}

// SuggestCategoryUseCase asks the advisor to pick a category for an
// uncategorized crop and stores the pick as a pending suggestion.
type SuggestCategoryUseCase struct {
	cropRepo       adapter.CropRepository
	categoryRepo   adapter.CategoryRepository
	suggestionRepo adapter.SuggestionRepository
	advisor        adapter.CategoryAdvisor
	logger         *slog.Logger
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(
	cropRepo adapter.CropRepository,
	categoryRepo adapter.CategoryRepository,
	suggestionRepo adapter.SuggestionRepository,
	advisor adapter.CategoryAdvisor,
	logger *slog.Logger,
) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		cropRepo:       cropRepo,
		categoryRepo:   categoryRepo,
		suggestionRepo: suggestionRepo,
		advisor:        advisor,
		logger:         logger,
	}
}

// Execute performs the suggestion.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	crop, err := uc.cropRepo.FindByID(ctx, input.CropID)
	if err != nil {
		return nil, domainerror.NewCropError(
			domainerror.ErrCodeCropNotFound,
			"crop not found",
			err,
		)
	}
	if crop.CategoryID != nil {
		return nil, domainerror.NewAdvisorError(
			domainerror.ErrCodeCropAlreadyCategorized,
			"crop already has a category",
			domainerror.ErrCropAlreadyCategorized,
		)
	}

	// An unresolved suggestion for the crop is reused instead of asking
	// the model again.
	if pending, err := uc.suggestionRepo.FindPendingByCrop(ctx, crop.ID); err == nil && pending != nil {
		category, err := uc.categoryRepo.FindByID(ctx, pending.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to load suggested category: %w", err)
		}
		return &SuggestCategoryOutput{Suggestion: pending, Category: category}, nil
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if len(categories) == 0 {
		return &SuggestCategoryOutput{}, nil
	}

	advice, err := uc.advisor.SuggestCategory(ctx, crop, categories)
	if err != nil {
		return nil, domainerror.NewAdvisorError(
			domainerror.ErrCodeAdvisorUnavailable,
			"category advisor unavailable",
			err,
		)
	}
	if advice == nil {
		uc.logger.Info("advisor found no fitting category", "crop_id", crop.ID)
		return &SuggestCategoryOutput{}, nil
	}

	category, err := uc.categoryRepo.FindByID(ctx, advice.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("advisor picked an unknown category: %w", err)
	}

	suggestion := entity.NewCategorySuggestion(crop.ID, advice.CategoryID, advice.Confidence, advice.Keywords)
	if err := uc.suggestionRepo.Create(ctx, suggestion); err != nil {
		return nil, fmt.Errorf("failed to store suggestion: %w", err)
	}

	return &SuggestCategoryOutput{
		Suggestion: suggestion,
		Category:   category,
	}, nil
}
