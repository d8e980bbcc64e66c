// Package category contains crop category use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
)

// CategoryListItem is a category together with the number of crops using it.
type CategoryListItem struct {
	Category  *entity.CropCategory
	CropCount int
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryListItem
}

// ListCategoriesUseCase handles the category listing with per-category
// crop counts.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	cropRepo     adapter.CropRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository, cropRepo adapter.CropRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		cropRepo:     cropRepo,
	}
}

// Execute performs the category listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	crops, err := uc.cropRepo.FindByFilter(ctx, adapter.CropFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load crops for category counts: %w", err)
	}

	counts := make(map[uuid.UUID]int)
	for _, c := range crops {
		if c.Crop.CategoryID != nil {
			counts[*c.Crop.CategoryID]++
		}
	}

	items := make([]*CategoryListItem, len(categories))
	for i, cat := range categories {
		items[i] = &CategoryListItem{
			Category:  cat,
			CropCount: counts[cat.ID],
		}
	}

	return &ListCategoriesOutput{Categories: items}, nil
}
