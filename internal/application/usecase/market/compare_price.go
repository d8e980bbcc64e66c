// Package market contains market price use cases.
package market

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
)

// comparisonRows is how many recent market rows a comparison considers.
const comparisonRows = 5

// ComparePriceInput represents the input for a price comparison.
type ComparePriceInput struct {
	CropName          string
	Quantity          decimal.Decimal
	ClaimedPricePerKg decimal.Decimal
}

// ComparePriceOutput represents the output of a price comparison.
type ComparePriceOutput struct {
	CropName     string
	Quantity     decimal.Decimal
	ClaimedTotal decimal.Decimal
	Comparisons  []entity.PriceComparison
}

// ComparePriceUseCase compares a farmer's claimed total against recent
// market rows for the same crop.
type ComparePriceUseCase struct {
	marketRepo adapter.MarketPriceRepository
}

// NewComparePriceUseCase creates a new ComparePriceUseCase instance.
func NewComparePriceUseCase(marketRepo adapter.MarketPriceRepository) *ComparePriceUseCase {
	return &ComparePriceUseCase{
		marketRepo: marketRepo,
	}
}

// Execute performs the price comparison.
func (uc *ComparePriceUseCase) Execute(ctx context.Context, input ComparePriceInput) (*ComparePriceOutput, error) {
	cropName := strings.TrimSpace(input.CropName)
	if cropName == "" {
		return nil, domainerror.NewMarketError(
			domainerror.ErrCodeCropNameRequired,
			"crop name is required",
			domainerror.ErrCropNameRequired,
		)
	}
	if input.Quantity.IsNegative() {
		return nil, domainerror.NewMarketError(
			domainerror.ErrCodeInvalidQuantity,
			"quantity must not be negative",
			domainerror.ErrInvalidQuantity,
		)
	}
	if input.ClaimedPricePerKg.IsNegative() {
		return nil, domainerror.NewMarketError(
			domainerror.ErrCodeInvalidClaimedPrice,
			"claimed price must not be negative",
			domainerror.ErrInvalidClaimedPrice,
		)
	}

	prices, err := uc.marketRepo.FindByCropName(ctx, cropName, comparisonRows)
	if err != nil {
		return nil, fmt.Errorf("failed to load market prices: %w", err)
	}

	claimedTotal := input.Quantity.Mul(input.ClaimedPricePerKg)
	hundred := decimal.NewFromInt(100)

	comparisons := make([]entity.PriceComparison, len(prices))
	for i, p := range prices {
		marketTotal := input.Quantity.Mul(p.PricePerKg)
		difference := marketTotal.Sub(claimedTotal)

		// A zero claimed total would make the percentage undefined.
		percentage := decimal.Zero
		if !claimedTotal.IsZero() {
			percentage = difference.Div(claimedTotal).Mul(hundred)
		}

		comparisons[i] = entity.PriceComparison{
			MarketLocation: p.MarketLocation,
			PricePerKg:     p.PricePerKg,
			MarketTotal:    marketTotal,
			Difference:     difference,
			Percentage:     percentage,
			DateRecorded:   p.DateRecorded,
		}
	}

	return &ComparePriceOutput{
		CropName:     cropName,
		Quantity:     input.Quantity,
		ClaimedTotal: claimedTotal,
		Comparisons:  comparisons,
	}, nil
}
