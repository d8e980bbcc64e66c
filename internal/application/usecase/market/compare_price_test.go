// Package market contains market price use cases.
package market

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/domain/entity"
)

// fakeMarketPriceRepository is an in-memory adapter.MarketPriceRepository.
type fakeMarketPriceRepository struct {
	prices []*entity.MarketPrice
}

func (r *fakeMarketPriceRepository) Create(ctx context.Context, price *entity.MarketPrice) error {
	r.prices = append(r.prices, price)
	return nil
}

func (r *fakeMarketPriceRepository) FindRecent(ctx context.Context, limit int) ([]*entity.MarketPrice, error) {
	if len(r.prices) <= limit {
		return r.prices, nil
	}
	return r.prices[:limit], nil
}

func (r *fakeMarketPriceRepository) FindByCropName(ctx context.Context, cropName string, limit int) ([]*entity.MarketPrice, error) {
	var out []*entity.MarketPrice
	for _, p := range r.prices {
		if !strings.Contains(strings.ToLower(p.CropName), strings.ToLower(cropName)) {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func marketRow(cropName string, price int64, location string) *entity.MarketPrice {
	return entity.NewMarketPrice(cropName, decimal.NewFromInt(price), location, time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), "")
}

func TestComparePriceUseCase_Execute(t *testing.T) {
	repo := &fakeMarketPriceRepository{prices: []*entity.MarketPrice{
		marketRow("Basmati Rice", 25, "Karnal Mandi"),
		marketRow("Basmati Rice", 18, "Delhi Azadpur"),
		marketRow("Wheat", 22, "Karnal Mandi"),
	}}
	uc := NewComparePriceUseCase(repo)

	t.Run("computes market totals against the claimed total", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ComparePriceInput{
			CropName:          "basmati",
			Quantity:          decimal.NewFromInt(100),
			ClaimedPricePerKg: decimal.NewFromInt(20),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.ClaimedTotal.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("expected claimed total 2000, got %s", output.ClaimedTotal)
		}
		if len(output.Comparisons) != 2 {
			t.Fatalf("expected 2 comparisons, got %d", len(output.Comparisons))
		}

		karnal := output.Comparisons[0]
		if !karnal.MarketTotal.Equal(decimal.NewFromInt(2500)) {
			t.Errorf("expected market total 2500, got %s", karnal.MarketTotal)
		}
		if !karnal.Difference.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected difference 500, got %s", karnal.Difference)
		}
		if !karnal.Percentage.Equal(decimal.NewFromInt(25)) {
			t.Errorf("expected percentage 25, got %s", karnal.Percentage)
		}

		delhi := output.Comparisons[1]
		if !delhi.Difference.Equal(decimal.NewFromInt(-200)) {
			t.Errorf("expected difference -200, got %s", delhi.Difference)
		}
		if !delhi.Percentage.Equal(decimal.NewFromInt(-10)) {
			t.Errorf("expected percentage -10, got %s", delhi.Percentage)
		}
	})

	t.Run("zero claimed total yields zero percentage", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ComparePriceInput{
			CropName:          "Basmati Rice",
			Quantity:          decimal.Zero,
			ClaimedPricePerKg: decimal.NewFromInt(20),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, c := range output.Comparisons {
			if !c.Percentage.IsZero() {
				t.Errorf("expected zero percentage, got %s", c.Percentage)
			}
		}
	})

	t.Run("unmatched crop yields empty comparisons", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ComparePriceInput{
			CropName:          "Saffron",
			Quantity:          decimal.NewFromInt(10),
			ClaimedPricePerKg: decimal.NewFromInt(5),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Comparisons) != 0 {
			t.Fatalf("expected no comparisons, got %d", len(output.Comparisons))
		}
	})

	t.Run("rejects blank crop name and negative inputs", func(t *testing.T) {
		if _, err := uc.Execute(context.Background(), ComparePriceInput{CropName: "  "}); err == nil {
			t.Error("expected error for blank crop name")
		}
		if _, err := uc.Execute(context.Background(), ComparePriceInput{
			CropName: "Wheat",
			Quantity: decimal.NewFromInt(-1),
		}); err == nil {
			t.Error("expected error for negative quantity")
		}
		if _, err := uc.Execute(context.Background(), ComparePriceInput{
			CropName:          "Wheat",
			ClaimedPricePerKg: decimal.NewFromInt(-1),
		}); err == nil {
			t.Error("expected error for negative claimed price")
		}
	})
}
