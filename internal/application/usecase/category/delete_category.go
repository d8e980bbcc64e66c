// Package category contains crop category use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/application/adapter"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	ID uuid.UUID
}

// DeleteCategoryUseCase handles category deletion. Crops referencing the
// category are kept but become uncategorized.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	cropRepo     adapter.CropRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, cropRepo adapter.CropRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		cropRepo:     cropRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	if _, err := uc.categoryRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			err,
		)
	}

	// Detach crops before removing the category so none are orphaned on
	// a dangling reference.
	if err := uc.cropRepo.ClearCategory(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to clear category references: %w", err)
	}

	if err := uc.categoryRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
