// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultPriceSource is the source label applied when none is provided.
const DefaultPriceSource = "Manual Entry"

// MarketPrice records the price of a crop at a market on a given date.
// The crop name is free text, not a reference to a Crop record. Rows are
// immutable historical facts once created.
type MarketPrice struct {
	ID             uuid.UUID
	CropName       string
	PricePerKg     decimal.Decimal
	MarketLocation string
	DateRecorded   time.Time
	Source         string
	CreatedAt      time.Time
}

// NewMarketPrice creates a new MarketPrice entity. The recorded date
// defaults to the creation date when the zero value is passed.
func NewMarketPrice(cropName string, pricePerKg decimal.Decimal, marketLocation string, dateRecorded time.Time, source string) *MarketPrice {
	now := time.Now().UTC()
	if dateRecorded.IsZero() {
		dateRecorded = now
	}
	if source == "" {
		source = DefaultPriceSource
	}

	return &MarketPrice{
		ID:             uuid.New(),
		CropName:       cropName,
		PricePerKg:     pricePerKg,
		MarketLocation: marketLocation,
		DateRecorded:   dateRecorded,
		Source:         source,
		CreatedAt:      now,
	}
}

// PriceComparison represents a single market row compared against a
// farmer's claimed quantity and price.
type PriceComparison struct {
	MarketLocation string
	PricePerKg     decimal.Decimal
	MarketTotal    decimal.Decimal
	Difference     decimal.Decimal // MarketTotal - claimed total
	Percentage     decimal.Decimal // Difference as a percentage of the claimed total
	DateRecorded   time.Time
}
