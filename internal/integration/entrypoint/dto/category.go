// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/farm-tracker/backend/internal/application/usecase/category"
	"github.com/farm-tracker/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CropCount   int       `json:"crop_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain CropCategory entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.CropCategory) CategoryResponse {
	return CategoryResponse{
		ID:          cat.ID.String(),
		Name:        cat.Name,
		Description: cat.Description,
		Icon:        cat.Icon,
		CreatedAt:   cat.CreatedAt,
		UpdatedAt:   cat.UpdatedAt,
	}
}

// ToCategoryListResponse converts category list items to a CategoryListResponse.
func ToCategoryListResponse(items []*category.CategoryListItem) CategoryListResponse {
	categories := make([]CategoryResponse, len(items))
	for i, item := range items {
		response := ToCategoryResponse(item.Category)
		response.CropCount = item.CropCount
		categories[i] = response
	}
	return CategoryListResponse{Categories: categories}
}
