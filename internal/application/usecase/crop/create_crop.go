// Package crop contains crop-related use cases.
package crop

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
)

// CreateCropInput represents the input for crop creation.
type CreateCropInput struct {
	Name           string
	FarmerID       uuid.UUID
	CategoryID     *uuid.UUID
	Season         entity.Season
	Status         entity.CropStatus
	PricePerKg     decimal.Decimal
	Quantity       decimal.Decimal
	PlantedDate    *time.Time
	HarvestDate    time.Time
	InvestmentCost decimal.Decimal
	Notes          string
}

// CreateCropOutput represents the output of crop creation.
type CreateCropOutput struct {
	Crop *entity.Crop
}

// CreateCropUseCase handles crop creation logic.
type CreateCropUseCase struct {
	cropRepo     adapter.CropRepository
	farmerRepo   adapter.FarmerRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateCropUseCase creates a new CreateCropUseCase instance.
func NewCreateCropUseCase(cropRepo adapter.CropRepository, farmerRepo adapter.FarmerRepository, categoryRepo adapter.CategoryRepository) *CreateCropUseCase {
	return &CreateCropUseCase{
		cropRepo:     cropRepo,
		farmerRepo:   farmerRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the crop creation.
func (uc *CreateCropUseCase) Execute(ctx context.Context, input CreateCropInput) (*CreateCropOutput, error) {
	if input.Status == "" {
		input.Status = entity.CropStatusPlanted
	}

	if err := validateCropFields(input.Season, input.Status, input.HarvestDate, input.PricePerKg, input.Quantity, input.InvestmentCost); err != nil {
		return nil, err
	}

	// The owning farmer must exist.
	if _, err := uc.farmerRepo.FindByID(ctx, input.FarmerID); err != nil {
		return nil, domainerror.NewCropError(
			domainerror.ErrCodeCropFarmerNotFound,
			"owning farmer not found",
			err,
		)
	}

	// The category is optional but must exist when given.
	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, domainerror.NewCropError(
				domainerror.ErrCodeCropCategoryNotFound,
				"crop category not found",
				domainerror.ErrCategoryNotFoundForCrop,
			)
		}
	}

	crop := entity.NewCrop(
		input.Name,
		input.FarmerID,
		input.CategoryID,
		input.Season,
		input.Status,
		input.PricePerKg,
		input.Quantity,
		input.PlantedDate,
		input.HarvestDate,
		input.InvestmentCost,
		input.Notes,
	)

	if err := uc.cropRepo.Create(ctx, crop); err != nil {
		return nil, fmt.Errorf("failed to create crop: %w", err)
	}

	return &CreateCropOutput{
		Crop: crop,
	}, nil
}

// validateCropFields checks the shared invariants for create and update.
func validateCropFields(season entity.Season, status entity.CropStatus, harvestDate time.Time, price, quantity, investment decimal.Decimal) error {
	if !isValidSeason(season) {
		return domainerror.NewCropError(
			domainerror.ErrCodeInvalidSeason,
			"season must be 'Kharif', 'Rabi', 'Zaid' or 'Annual'",
			domainerror.ErrInvalidSeason,
		)
	}
	if !isValidStatus(status) {
		return domainerror.NewCropError(
			domainerror.ErrCodeInvalidCropStatus,
			"status must be 'Planted', 'Growing', 'Ready', 'Harvested' or 'Sold'",
			domainerror.ErrInvalidCropStatus,
		)
	}
	if harvestDate.IsZero() {
		return domainerror.NewCropError(
			domainerror.ErrCodeHarvestDateRequired,
			"harvest date is required",
			domainerror.ErrHarvestDateRequired,
		)
	}
	if price.IsNegative() {
		return domainerror.NewCropError(
			domainerror.ErrCodeNegativePrice,
			"price per kg must not be negative",
			domainerror.ErrNegativePrice,
		)
	}
	if quantity.IsNegative() {
		return domainerror.NewCropError(
			domainerror.ErrCodeNegativeQuantity,
			"quantity must not be negative",
			domainerror.ErrNegativeQuantity,
		)
	}
	if investment.IsNegative() {
		return domainerror.NewCropError(
			domainerror.ErrCodeNegativeInvestment,
			"investment cost must not be negative",
			domainerror.ErrNegativeInvestment,
		)
	}
	return nil
}

// isValidSeason validates the cropping season.
func isValidSeason(season entity.Season) bool {
	switch season {
	case entity.SeasonKharif, entity.SeasonRabi, entity.SeasonZaid, entity.SeasonAnnual:
		return true
	}
	return false
}

// isValidStatus validates the crop status.
func isValidStatus(status entity.CropStatus) bool {
	switch status {
	case entity.CropStatusPlanted, entity.CropStatusGrowing, entity.CropStatusReady,
		entity.CropStatusHarvested, entity.CropStatusSold:
		return true
	}
	return false
}
