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

// UpdateCropInput represents the input for a crop edit. Nil pointer fields
// are left unchanged.
type UpdateCropInput struct {
	CropID            uuid.UUID
	Name              *string
	CategoryID        *uuid.UUID
	ClearCategory     bool // Remove the category reference
	Season            *entity.Season
	Status            *entity.CropStatus
	PricePerKg        *decimal.Decimal
	Quantity          *decimal.Decimal
	PlantedDate       *time.Time
	HarvestDate       *time.Time
	ActualHarvestDate *time.Time
	InvestmentCost    *decimal.Decimal
	Notes             *string
}

// UpdateCropOutput represents the output of a crop update.
type UpdateCropOutput struct {
	Crop *entity.Crop
}

// UpdateCropUseCase handles crop edits, including explicit status changes.
// Overdue crops stay in their stored status until changed here.
type UpdateCropUseCase struct {
	cropRepo     adapter.CropRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCropUseCase creates a new UpdateCropUseCase instance.
func NewUpdateCropUseCase(cropRepo adapter.CropRepository, categoryRepo adapter.CategoryRepository) *UpdateCropUseCase {
	return &UpdateCropUseCase{
		cropRepo:     cropRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the crop update.
func (uc *UpdateCropUseCase) Execute(ctx context.Context, input UpdateCropInput) (*UpdateCropOutput, error) {
	crop, err := uc.cropRepo.FindByID(ctx, input.CropID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		crop.Name = *input.Name
	}
	if input.ClearCategory {
		crop.CategoryID = nil
	} else if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, domainerror.NewCropError(
				domainerror.ErrCodeCropCategoryNotFound,
				"crop category not found",
				domainerror.ErrCategoryNotFoundForCrop,
			)
		}
		crop.CategoryID = input.CategoryID
	}
	if input.Season != nil {
		crop.Season = *input.Season
	}
	if input.Status != nil {
		crop.Status = *input.Status
	}
	if input.PricePerKg != nil {
		crop.PricePerKg = *input.PricePerKg
	}
	if input.Quantity != nil {
		crop.Quantity = *input.Quantity
	}
	if input.PlantedDate != nil {
		crop.PlantedDate = input.PlantedDate
	}
	if input.HarvestDate != nil {
		crop.HarvestDate = *input.HarvestDate
	}
	if input.ActualHarvestDate != nil {
		crop.ActualHarvestDate = input.ActualHarvestDate
	}
	if input.InvestmentCost != nil {
		crop.InvestmentCost = *input.InvestmentCost
	}
	if input.Notes != nil {
		crop.Notes = *input.Notes
	}

	if err := validateCropFields(crop.Season, crop.Status, crop.HarvestDate, crop.PricePerKg, crop.Quantity, crop.InvestmentCost); err != nil {
		return nil, err
	}

	crop.UpdatedAt = time.Now().UTC()

	if err := uc.cropRepo.Update(ctx, crop); err != nil {
		return nil, fmt.Errorf("failed to update crop: %w", err)
	}

	return &UpdateCropOutput{
		Crop: crop,
	}, nil
}
