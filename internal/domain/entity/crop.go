// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Season represents the cropping period a crop belongs to.
type Season string

const (
	SeasonKharif Season = "Kharif" // Monsoon
	SeasonRabi   Season = "Rabi"   // Winter
	SeasonZaid   Season = "Zaid"   // Summer
	SeasonAnnual Season = "Annual"
)

// CropStatus represents the lifecycle stage of a crop. The stages form an
// ordered progression but stored data is not forced through it.
type CropStatus string

const (
	CropStatusPlanted   CropStatus = "Planted"
	CropStatusGrowing   CropStatus = "Growing"
	CropStatusReady     CropStatus = "Ready"
	CropStatusHarvested CropStatus = "Harvested"
	CropStatusSold      CropStatus = "Sold"
)

// Crop represents a crop grown by a farmer in the Farm Tracker system.
type Crop struct {
	ID                uuid.UUID
	Name              string
	FarmerID          uuid.UUID
	CategoryID        *uuid.UUID // Optional, can be uncategorized
	Season            Season
	Status            CropStatus
	PricePerKg        decimal.Decimal
	Quantity          decimal.Decimal // Kilograms
	PlantedDate       *time.Time
	HarvestDate       time.Time
	ActualHarvestDate *time.Time // Set once the crop is harvested
	InvestmentCost    decimal.Decimal
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewCrop creates a new Crop entity.
func NewCrop(
	name string,
	farmerID uuid.UUID,
	categoryID *uuid.UUID,
	season Season,
	status CropStatus,
	pricePerKg decimal.Decimal,
	quantity decimal.Decimal,
	plantedDate *time.Time,
	harvestDate time.Time,
	investmentCost decimal.Decimal,
	notes string,
) *Crop {
	now := time.Now().UTC()

	return &Crop{
		ID:             uuid.New(),
		Name:           name,
		FarmerID:       farmerID,
		CategoryID:     categoryID,
		Season:         season,
		Status:         status,
		PricePerKg:     pricePerKg,
		Quantity:       quantity,
		PlantedDate:    plantedDate,
		HarvestDate:    harvestDate,
		InvestmentCost: investmentCost,
		Notes:          notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// TotalValue returns quantity multiplied by price per kilogram.
func (c *Crop) TotalValue() decimal.Decimal {
	return c.Quantity.Mul(c.PricePerKg)
}

// Profit returns total value minus investment cost.
func (c *Crop) Profit() decimal.Decimal {
	return c.TotalValue().Sub(c.InvestmentCost)
}

// ProfitMargin returns profit as a percentage of the investment cost.
// A zero investment yields a margin of zero, never an error.
func (c *Crop) ProfitMargin() decimal.Decimal {
	if c.InvestmentCost.IsPositive() {
		return c.Profit().Div(c.InvestmentCost).Mul(decimal.NewFromInt(100))
	}
	return decimal.Zero
}

// DaysToHarvest returns the signed calendar-day difference between the
// harvest date and today. Negative when the harvest date is in the past.
func (c *Crop) DaysToHarvest(today time.Time) int {
	return int(truncateToDay(c.HarvestDate).Sub(truncateToDay(today)).Hours() / 24)
}

// IsOverdue reports whether the harvest date has passed while the crop is
// still in a pre-harvest status. It never mutates the stored status.
func (c *Crop) IsOverdue(today time.Time) bool {
	if c.Status == CropStatusHarvested || c.Status == CropStatusSold {
		return false
	}
	return truncateToDay(c.HarvestDate).Before(truncateToDay(today))
}

// truncateToDay drops the time-of-day component so day arithmetic is not
// affected by timestamps or DST offsets.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CropWithRelations represents a crop with its farmer and optional category.
type CropWithRelations struct {
	Crop     *Crop
	Farmer   *Farmer
	Category *CropCategory
}
