// Package crop contains crop-related use cases.
package crop

import (
	"context"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/application/adapter"
)

// GetCropInput represents the input for retrieving a crop.
type GetCropInput struct {
	CropID uuid.UUID
}

// GetCropOutput represents a single crop with derived fields populated.
type GetCropOutput struct {
	Crop *CropListItem
}

// GetCropUseCase handles the crop detail view.
type GetCropUseCase struct {
	cropRepo adapter.CropRepository
	clock    adapter.Clock
}

// NewGetCropUseCase creates a new GetCropUseCase instance.
func NewGetCropUseCase(cropRepo adapter.CropRepository, clock adapter.Clock) *GetCropUseCase {
	return &GetCropUseCase{
		cropRepo: cropRepo,
		clock:    clock,
	}
}

// Execute retrieves the crop with its derived fields materialized.
func (uc *GetCropUseCase) Execute(ctx context.Context, input GetCropInput) (*GetCropOutput, error) {
	crop, err := uc.cropRepo.FindByIDWithRelations(ctx, input.CropID)
	if err != nil {
		return nil, err
	}

	return &GetCropOutput{
		Crop: materialize(crop, uc.clock.Now()),
	}, nil
}
