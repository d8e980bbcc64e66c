// Package farmer contains farmer-related use cases.
package farmer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/application/adapter"
)

// DeleteFarmerInput represents the input for farmer deletion.
type DeleteFarmerInput struct {
	FarmerID uuid.UUID
}

// DeleteFarmerUseCase handles farmer deletion. Dependent crops and
// notifications are removed with the farmer.
type DeleteFarmerUseCase struct {
	farmerRepo adapter.FarmerRepository
}

// NewDeleteFarmerUseCase creates a new DeleteFarmerUseCase instance.
func NewDeleteFarmerUseCase(farmerRepo adapter.FarmerRepository) *DeleteFarmerUseCase {
	return &DeleteFarmerUseCase{
		farmerRepo: farmerRepo,
	}
}

// Execute performs the farmer deletion.
func (uc *DeleteFarmerUseCase) Execute(ctx context.Context, input DeleteFarmerInput) error {
	// Surface NotFound before deleting.
	if _, err := uc.farmerRepo.FindByID(ctx, input.FarmerID); err != nil {
		return err
	}

	if err := uc.farmerRepo.Delete(ctx, input.FarmerID); err != nil {
		return fmt.Errorf("failed to delete farmer: %w", err)
	}

	return nil
}
