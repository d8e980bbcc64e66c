// Package advisor contains the AI category advisor use cases.
package advisor

import (
	"context"
	"fmt"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
)

// ListSuggestionsOutput represents the output of listing pending suggestions.
type ListSuggestionsOutput struct {
	Suggestions []*entity.CategorySuggestionWithDetails
}

// ListSuggestionsUseCase lists the suggestions awaiting review.
type ListSuggestionsUseCase struct {
	suggestionRepo adapter.SuggestionRepository
}

// NewListSuggestionsUseCase creates a new ListSuggestionsUseCase instance.
func NewListSuggestionsUseCase(suggestionRepo adapter.SuggestionRepository) *ListSuggestionsUseCase {
	return &ListSuggestionsUseCase{
		suggestionRepo: suggestionRepo,
	}
}

// Execute lists the pending suggestions.
func (uc *ListSuggestionsUseCase) Execute(ctx context.Context) (*ListSuggestionsOutput, error) {
	suggestions, err := uc.suggestionRepo.FindPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}

	return &ListSuggestionsOutput{Suggestions: suggestions}, nil
}
