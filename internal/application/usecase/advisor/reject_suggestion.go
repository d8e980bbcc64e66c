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

// RejectSuggestionInput represents the input for rejecting a suggestion.
type RejectSuggestionInput struct {
	SuggestionID uuid.UUID
}

// RejectSuggestionUseCase discards a pending suggestion. The crop stays
// uncategorized.
type RejectSuggestionUseCase struct {
	suggestionRepo adapter.SuggestionRepository
}

// NewRejectSuggestionUseCase creates a new RejectSuggestionUseCase instance.
func NewRejectSuggestionUseCase(suggestionRepo adapter.SuggestionRepository) *RejectSuggestionUseCase {
	return &RejectSuggestionUseCase{
		suggestionRepo: suggestionRepo,
	}
}

// Execute rejects the suggestion.
func (uc *RejectSuggestionUseCase) Execute(ctx context.Context, input RejectSuggestionInput) error {
	suggestion, err := uc.suggestionRepo.FindByID(ctx, input.SuggestionID)
	if err != nil {
		return domainerror.NewAdvisorError(
			domainerror.ErrCodeSuggestionNotFound,
			"suggestion not found",
			err,
		)
	}
	if suggestion.Status != entity.SuggestionStatusPending {
		return domainerror.NewAdvisorError(
			domainerror.ErrCodeSuggestionNotPending,
			"suggestion has already been resolved",
			domainerror.ErrSuggestionNotPending,
		)
	}

	suggestion.Status = entity.SuggestionStatusRejected
	suggestion.UpdatedAt = time.Now().UTC()
	if err := uc.suggestionRepo.Update(ctx, suggestion); err != nil {
		return fmt.Errorf("failed to update suggestion: %w", err)
	}

	return nil
}
