// Package farmer contains farmer-related use cases.
package farmer

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
)

// CreateFarmerInput represents the input for farmer creation.
type CreateFarmerInput struct {
	Name            string
	Phone           string
	Email           string // Optional
	Address         string
	DateOfBirth     *time.Time
	ExperienceYears int
	LandAreaAcres   decimal.Decimal
}

// CreateFarmerOutput represents the output of farmer creation.
type CreateFarmerOutput struct {
	Farmer *entity.Farmer
}

// CreateFarmerUseCase handles farmer creation logic.
type CreateFarmerUseCase struct {
	farmerRepo adapter.FarmerRepository
}

// NewCreateFarmerUseCase creates a new CreateFarmerUseCase instance.
func NewCreateFarmerUseCase(farmerRepo adapter.FarmerRepository) *CreateFarmerUseCase {
	return &CreateFarmerUseCase{
		farmerRepo: farmerRepo,
	}
}

// Execute performs the farmer creation.
func (uc *CreateFarmerUseCase) Execute(ctx context.Context, input CreateFarmerInput) (*CreateFarmerOutput, error) {
	if err := validateFarmerFields(input.Name, input.ExperienceYears, input.LandAreaAcres); err != nil {
		return nil, err
	}

	farmer := entity.NewFarmer(
		input.Name,
		input.Phone,
		input.Email,
		input.Address,
		input.DateOfBirth,
		input.ExperienceYears,
		input.LandAreaAcres,
	)

	if err := uc.farmerRepo.Create(ctx, farmer); err != nil {
		return nil, fmt.Errorf("failed to create farmer: %w", err)
	}

	return &CreateFarmerOutput{
		Farmer: farmer,
	}, nil
}

// validateFarmerFields checks the shared invariants for create and update.
func validateFarmerFields(name string, experienceYears int, landArea decimal.Decimal) error {
	if name == "" {
		return domainerror.NewFarmerError(
			domainerror.ErrCodeFarmerNameRequired,
			"farmer name is required",
			domainerror.ErrFarmerNameRequired,
		)
	}
	if experienceYears < 0 {
		return domainerror.NewFarmerError(
			domainerror.ErrCodeInvalidExperienceYears,
			"experience years must not be negative",
			domainerror.ErrInvalidExperienceYears,
		)
	}
	if landArea.IsNegative() {
		return domainerror.NewFarmerError(
			domainerror.ErrCodeInvalidLandArea,
			"land area must not be negative",
			domainerror.ErrInvalidLandArea,
		)
	}
	return nil
}
