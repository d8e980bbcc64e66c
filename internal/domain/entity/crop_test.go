// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func testCrop() *Crop {
	return &Crop{
		ID:             uuid.New(),
		Name:           "Wheat",
		FarmerID:       uuid.New(),
		Season:         SeasonRabi,
		Status:         CropStatusGrowing,
		PricePerKg:     decimal.NewFromInt(20),
		Quantity:       decimal.NewFromInt(100),
		HarvestDate:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		InvestmentCost: decimal.NewFromInt(500),
	}
}

func TestCrop_TotalValue(t *testing.T) {
	t.Run("total value is quantity times price per kg", func(t *testing.T) {
		crop := testCrop()
		if got := crop.TotalValue(); !got.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("expected total value 2000, got %s", got)
		}
	})

	t.Run("decimal quantities keep stored precision", func(t *testing.T) {
		crop := testCrop()
		crop.Quantity = decimal.RequireFromString("10.25")
		crop.PricePerKg = decimal.RequireFromString("4.40")
		if got := crop.TotalValue(); !got.Equal(decimal.RequireFromString("45.10")) {
			t.Errorf("expected total value 45.10, got %s", got)
		}
	})
}

func TestCrop_Profit(t *testing.T) {
	crop := testCrop()
	if got := crop.Profit(); !got.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("expected profit 1500, got %s", got)
	}
}

func TestCrop_ProfitMargin(t *testing.T) {
	t.Run("margin is profit over investment as a percentage", func(t *testing.T) {
		crop := testCrop()
		if got := crop.ProfitMargin(); !got.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected margin 300, got %s", got)
		}
	})

	t.Run("zero investment yields zero margin", func(t *testing.T) {
		crop := testCrop()
		crop.InvestmentCost = decimal.Zero
		if got := crop.ProfitMargin(); !got.Equal(decimal.Zero) {
			t.Errorf("expected margin 0, got %s", got)
		}
	})

	t.Run("zero investment yields zero margin even with negative profit", func(t *testing.T) {
		crop := testCrop()
		crop.InvestmentCost = decimal.Zero
		crop.Quantity = decimal.Zero
		if got := crop.ProfitMargin(); !got.Equal(decimal.Zero) {
			t.Errorf("expected margin 0, got %s", got)
		}
	})

	t.Run("loss produces negative margin", func(t *testing.T) {
		crop := testCrop()
		crop.InvestmentCost = decimal.NewFromInt(4000)
		// total value 2000, profit -2000, margin -50%
		if got := crop.ProfitMargin(); !got.Equal(decimal.NewFromInt(-50)) {
			t.Errorf("expected margin -50, got %s", got)
		}
	})
}

func TestCrop_DaysToHarvest(t *testing.T) {
	crop := testCrop()

	t.Run("future harvest date is positive", func(t *testing.T) {
		today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		if got := crop.DaysToHarvest(today); got != 29 {
			t.Errorf("expected 29 days, got %d", got)
		}
	})

	t.Run("past harvest date is negative", func(t *testing.T) {
		today := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
		if got := crop.DaysToHarvest(today); got != -5 {
			t.Errorf("expected -5 days, got %d", got)
		}
	})

	t.Run("same day is zero", func(t *testing.T) {
		today := time.Date(2025, 6, 30, 15, 30, 0, 0, time.UTC)
		if got := crop.DaysToHarvest(today); got != 0 {
			t.Errorf("expected 0 days, got %d", got)
		}
	})
}

func TestCrop_IsOverdue(t *testing.T) {
	today := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("growing crop past harvest date is overdue", func(t *testing.T) {
		crop := testCrop()
		crop.Status = CropStatusGrowing
		if !crop.IsOverdue(today) {
			t.Error("expected crop to be overdue")
		}
	})

	t.Run("sold crop past harvest date is not overdue", func(t *testing.T) {
		crop := testCrop()
		crop.Status = CropStatusSold
		if crop.IsOverdue(today) {
			t.Error("expected sold crop not to be overdue")
		}
	})

	t.Run("harvested crop past harvest date is not overdue", func(t *testing.T) {
		crop := testCrop()
		crop.Status = CropStatusHarvested
		if crop.IsOverdue(today) {
			t.Error("expected harvested crop not to be overdue")
		}
	})

	t.Run("crop due today is not overdue", func(t *testing.T) {
		crop := testCrop()
		if crop.IsOverdue(time.Date(2025, 6, 30, 23, 0, 0, 0, time.UTC)) {
			t.Error("expected crop due today not to be overdue")
		}
	})

	t.Run("overdue check does not mutate status", func(t *testing.T) {
		crop := testCrop()
		crop.IsOverdue(today)
		if crop.Status != CropStatusGrowing {
			t.Errorf("expected status to remain Growing, got %s", crop.Status)
		}
	})
}
