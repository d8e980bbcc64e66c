// Package market contains market price use cases.
package market

import (
	"context"
	"fmt"
	"strings"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
)

// defaultPriceListLimit bounds an unqualified price listing.
const defaultPriceListLimit = 50

// ListPricesInput represents the input for listing market prices.
type ListPricesInput struct {
	CropName string // Optional contains-match filter
	Limit    int    // Defaults to 50
}

// ListPricesOutput represents the output of listing market prices.
type ListPricesOutput struct {
	Prices []*entity.MarketPrice
}

// ListPricesUseCase handles the market price listing, newest first.
type ListPricesUseCase struct {
	marketRepo adapter.MarketPriceRepository
}

// NewListPricesUseCase creates a new ListPricesUseCase instance.
func NewListPricesUseCase(marketRepo adapter.MarketPriceRepository) *ListPricesUseCase {
	return &ListPricesUseCase{
		marketRepo: marketRepo,
	}
}

// Execute performs the market price listing.
func (uc *ListPricesUseCase) Execute(ctx context.Context, input ListPricesInput) (*ListPricesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPriceListLimit
	}

	var (
		prices []*entity.MarketPrice
		err    error
	)
	if name := strings.TrimSpace(input.CropName); name != "" {
		prices, err = uc.marketRepo.FindByCropName(ctx, name, limit)
	} else {
		prices, err = uc.marketRepo.FindRecent(ctx, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list market prices: %w", err)
	}

	return &ListPricesOutput{Prices: prices}, nil
}
