// Package crop contains crop-related use cases.
package crop

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/application/adapter"
)

// DeleteCropInput represents the input for crop deletion.
type DeleteCropInput struct {
	CropID uuid.UUID
}

// DeleteCropUseCase handles crop deletion.
type DeleteCropUseCase struct {
	cropRepo adapter.CropRepository
}

// NewDeleteCropUseCase creates a new DeleteCropUseCase instance.
func NewDeleteCropUseCase(cropRepo adapter.CropRepository) *DeleteCropUseCase {
	return &DeleteCropUseCase{
		cropRepo: cropRepo,
	}
}

// Execute performs the crop deletion.
func (uc *DeleteCropUseCase) Execute(ctx context.Context, input DeleteCropInput) error {
	if _, err := uc.cropRepo.FindByID(ctx, input.CropID); err != nil {
		return err
	}

	if err := uc.cropRepo.Delete(ctx, input.CropID); err != nil {
		return fmt.Errorf("failed to delete crop: %w", err)
	}

	return nil
}
