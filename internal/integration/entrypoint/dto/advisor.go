// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/farm-tracker/backend/internal/domain/entity"
)

// SuggestCategoryRequest represents the request body for requesting a suggestion.
type SuggestCategoryRequest struct {
	CropID string `json:"crop_id" binding:"required,uuid"`
}

// SuggestionResponse represents a category suggestion in API responses.
type SuggestionResponse struct {
	ID           string    `json:"id"`
	CropID       string    `json:"crop_id"`
	CropName     string    `json:"crop_name,omitempty"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	CategoryIcon string    `json:"category_icon,omitempty"`
	Confidence   float64   `json:"confidence"`
	Keywords     []string  `json:"keywords"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// SuggestionListResponse represents the response for listing suggestions.
type SuggestionListResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

// ToSuggestionResponse converts a CategorySuggestion entity to a response DTO.
func ToSuggestionResponse(s *entity.CategorySuggestion) SuggestionResponse {
	keywords := s.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return SuggestionResponse{
		ID:         s.ID.String(),
		CropID:     s.CropID.String(),
		CategoryID: s.CategoryID.String(),
		Confidence: s.Confidence,
		Keywords:   keywords,
		Status:     string(s.Status),
		CreatedAt:  s.CreatedAt,
	}
}

// ToSuggestionListResponse converts detailed suggestions to a list response.
func ToSuggestionListResponse(items []*entity.CategorySuggestionWithDetails) SuggestionListResponse {
	suggestions := make([]SuggestionResponse, len(items))
	for i, item := range items {
		response := ToSuggestionResponse(item.Suggestion)
		if item.Crop != nil {
			response.CropName = item.Crop.Name
		}
		if item.Category != nil {
			response.CategoryName = item.Category.Name
			response.CategoryIcon = item.Category.Icon
		}
		suggestions[i] = response
	}
	return SuggestionListResponse{Suggestions: suggestions}
}
