// Package advisor contains the AI category advisor use cases.
package advisor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
)

// ApproveSuggestionInput represents the input for approving a suggestion.
type ApproveSuggestionInput struct {
	SuggestionID uuid.UUID
}

// ApproveSuggestionOutput represents the output of approving a suggestion.
type ApproveSuggestionOutput struct {
	Crop *entity.Crop
}

// ApproveSuggestionUseCase applies a pending suggestion to its crop.
type ApproveSuggestionUseCase struct {
	suggestionRepo adapter.SuggestionRepository
	cropRepo       adapter.CropRepository
}

// NewApproveSuggestionUseCase creates a new ApproveSuggestionUseCase instance.
func NewApproveSuggestionUseCase(suggestionRepo adapter.SuggestionRepository, cropRepo adapter.CropRepository) *ApproveSuggestionUseCase {
	return &ApproveSuggestionUseCase{
		suggestionRepo: suggestionRepo,
		cropRepo:       cropRepo,
	}
}

// Execute applies the suggestion.
func (uc *ApproveSuggestionUseCase) Execute(ctx context.Context, input ApproveSuggestionInput) (*ApproveSuggestionOutput, error) {
	suggestion, err := uc.suggestionRepo.FindByID(ctx, input.SuggestionID)
	if err != nil {
		return nil, domainerror.NewAdvisorError(
			domainerror.ErrCodeSuggestionNotFound,
			"suggestion not found",
			err,
		)
	}
	if suggestion.Status != entity.SuggestionStatusPending {
		return nil, domainerror.NewAdvisorError(
			domainerror.ErrCodeSuggestionNotPending,
			"suggestion has already been resolved",
			domainerror.ErrSuggestionNotPending,
		)
	}

	crop, err := uc.cropRepo.FindByID(ctx, suggestion.CropID)
	if err != nil {
		return nil, domainerror.NewCropError(
			domainerror.ErrCodeCropNotFound,
			"crop not found",
			err,
		)
	}

	crop.CategoryID = &suggestion.CategoryID
	if err := uc.cropRepo.Update(ctx, crop); err != nil {
		return nil, fmt.Errorf("failed to update crop: %w", err)
	}

	suggestion.Status = entity.SuggestionStatusApproved
	suggestion.UpdatedAt = time.Now().UTC()
	if err := uc.suggestionRepo.Update(ctx, suggestion); err != nil {
		return nil, fmt.Errorf("failed to update suggestion: %w", err)
	}

	return &ApproveSuggestionOutput{Crop: crop}, nil
}
