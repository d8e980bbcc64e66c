// Package market contains market price use cases.
package market

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
)

// RecordPriceInput represents the input for recording a market price.
type RecordPriceInput struct {
	CropName       string
	PricePerKg     decimal.Decimal
	MarketLocation string
	DateRecorded   time.Time // Zero value defaults to today
	Source         string    // Empty defaults to "Manual Entry"
}

// RecordPriceOutput represents the output of recording a market price.
type RecordPriceOutput struct {
	Price *entity.MarketPrice
}

// RecordPriceUseCase handles the append-only market price log.
type RecordPriceUseCase struct {
	marketRepo adapter.MarketPriceRepository
}

// NewRecordPriceUseCase creates a new RecordPriceUseCase instance.
func NewRecordPriceUseCase(marketRepo adapter.MarketPriceRepository) *RecordPriceUseCase {
	return &RecordPriceUseCase{
		marketRepo: marketRepo,
	}
}

// Execute records the market price.
func (uc *RecordPriceUseCase) Execute(ctx context.Context, input RecordPriceInput) (*RecordPriceOutput, error) {
	cropName := strings.TrimSpace(input.CropName)
	if cropName == "" {
		return nil, domainerror.NewMarketError(
			domainerror.ErrCodeCropNameRequired,
			"crop name is required",
			domainerror.ErrCropNameRequired,
		)
	}
	if strings.TrimSpace(input.MarketLocation) == "" {
		return nil, domainerror.NewMarketError(
			domainerror.ErrCodeMissingMarketFields,
			"market location is required",
			nil,
		)
	}
	if input.PricePerKg.IsNegative() {
		return nil, domainerror.NewMarketError(
			domainerror.ErrCodeInvalidClaimedPrice,
			"price per kg must not be negative",
			domainerror.ErrInvalidClaimedPrice,
		)
	}

	price := entity.NewMarketPrice(cropName, input.PricePerKg, input.MarketLocation, input.DateRecorded, input.Source)

	if err := uc.marketRepo.Create(ctx, price); err != nil {
		return nil, fmt.Errorf("failed to record market price: %w", err)
	}

	return &RecordPriceOutput{
		Price: price,
	}, nil
}
