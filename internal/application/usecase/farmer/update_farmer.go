// Package farmer contains farmer-related use cases.
package farmer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
)

// UpdateFarmerInput represents the input for a profile edit. Nil pointer
// fields are left unchanged.
type UpdateFarmerInput struct {
	FarmerID        uuid.UUID
	Name            *string
	Phone           *string
	Email           *string
	Address         *string
	DateOfBirth     *time.Time
	ExperienceYears *int
	LandAreaAcres   *decimal.Decimal
}

// UpdateFarmerOutput represents the output of a farmer update.
type UpdateFarmerOutput struct {
	Farmer *entity.Farmer
}

// UpdateFarmerUseCase handles farmer profile edits.
type UpdateFarmerUseCase struct {
	farmerRepo adapter.FarmerRepository
}

// NewUpdateFarmerUseCase creates a new UpdateFarmerUseCase instance.
func NewUpdateFarmerUseCase(farmerRepo adapter.FarmerRepository) *UpdateFarmerUseCase {
	return &UpdateFarmerUseCase{
		farmerRepo: farmerRepo,
	}
}

// Execute performs the farmer update.
func (uc *UpdateFarmerUseCase) Execute(ctx context.Context, input UpdateFarmerInput) (*UpdateFarmerOutput, error) {
	farmer, err := uc.farmerRepo.FindByID(ctx, input.FarmerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		farmer.Name = *input.Name
	}
	if input.Phone != nil {
		farmer.Phone = *input.Phone
	}
	if input.Email != nil {
		farmer.Email = *input.Email
	}
	if input.Address != nil {
		farmer.Address = *input.Address
	}
	if input.DateOfBirth != nil {
		farmer.DateOfBirth = input.DateOfBirth
	}
	if input.ExperienceYears != nil {
		farmer.ExperienceYears = *input.ExperienceYears
	}
	if input.LandAreaAcres != nil {
		farmer.LandAreaAcres = *input.LandAreaAcres
	}

	if err := validateFarmerFields(farmer.Name, farmer.ExperienceYears, farmer.LandAreaAcres); err != nil {
		return nil, err
	}

	farmer.UpdatedAt = time.Now().UTC()

	if err := uc.farmerRepo.Update(ctx, farmer); err != nil {
		return nil, fmt.Errorf("failed to update farmer: %w", err)
	}

	return &UpdateFarmerOutput{
		Farmer: farmer,
	}, nil
}
