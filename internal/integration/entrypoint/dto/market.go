// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/farm-tracker/backend/internal/application/usecase/market"
	"github.com/farm-tracker/backend/internal/domain/entity"
)

// RecordPriceRequest represents the request body for recording a market price.
type RecordPriceRequest struct {
	CropName       string     `json:"crop_name" binding:"required,min=1,max=100"`
	PricePerKg     float64    `json:"price_per_kg"`
	MarketLocation string     `json:"market_location" binding:"required,min=1,max=200"`
	DateRecorded   *time.Time `json:"date_recorded,omitempty"`
	Source         string     `json:"source,omitempty"`
}

// ComparePriceRequest represents the request body for a price comparison.
type ComparePriceRequest struct {
	CropName   string  `json:"crop_name" binding:"required,min=1,max=100"`
	Quantity   float64 `json:"quantity"`
	PricePerKg float64 `json:"price_per_kg"`
}

// MarketPriceResponse represents a single market price in API responses.
type MarketPriceResponse struct {
	ID             string    `json:"id"`
	CropName       string    `json:"crop_name"`
	PricePerKg     string    `json:"price_per_kg"`
	MarketLocation string    `json:"market_location"`
	DateRecorded   time.Time `json:"date_recorded"`
	Source         string    `json:"source"`
	CreatedAt      time.Time `json:"created_at"`
}

// MarketPriceListResponse represents the response for listing market prices.
type MarketPriceListResponse struct {
	Prices []MarketPriceResponse `json:"prices"`
}

// PriceComparisonResponse is one market row in a price comparison.
type PriceComparisonResponse struct {
	MarketLocation string    `json:"market_location"`
	PricePerKg     string    `json:"price_per_kg"`
	MarketTotal    string    `json:"market_total"`
	Difference     string    `json:"difference"`
	Percentage     string    `json:"percentage"`
	DateRecorded   time.Time `json:"date_recorded"`
}

// ComparePriceResponse represents the response for a price comparison.
type ComparePriceResponse struct {
	CropName     string                    `json:"crop_name"`
	Quantity     string                    `json:"quantity"`
	ClaimedTotal string                    `json:"claimed_total"`
	Comparisons  []PriceComparisonResponse `json:"comparisons"`
}

// ToMarketPriceResponse converts a domain MarketPrice entity to a response DTO.
func ToMarketPriceResponse(p *entity.MarketPrice) MarketPriceResponse {
	return MarketPriceResponse{
		ID:             p.ID.String(),
		CropName:       p.CropName,
		PricePerKg:     p.PricePerKg.String(),
		MarketLocation: p.MarketLocation,
		DateRecorded:   p.DateRecorded,
		Source:         p.Source,
		CreatedAt:      p.CreatedAt,
	}
}

// ToMarketPriceListResponse converts market prices to a list response.
func ToMarketPriceListResponse(prices []*entity.MarketPrice) MarketPriceListResponse {
	responses := make([]MarketPriceResponse, len(prices))
	for i, p := range prices {
		responses[i] = ToMarketPriceResponse(p)
	}
	return MarketPriceListResponse{Prices: responses}
}

// ToComparePriceResponse converts the comparison output to a response DTO.
func ToComparePriceResponse(output *market.ComparePriceOutput) ComparePriceResponse {
	comparisons := make([]PriceComparisonResponse, len(output.Comparisons))
	for i, c := range output.Comparisons {
		comparisons[i] = PriceComparisonResponse{
			MarketLocation: c.MarketLocation,
			PricePerKg:     c.PricePerKg.String(),
			MarketTotal:    c.MarketTotal.String(),
			Difference:     c.Difference.String(),
			Percentage:     c.Percentage.String(),
			DateRecorded:   c.DateRecorded,
		}
	}
	return ComparePriceResponse{
		CropName:     output.CropName,
		Quantity:     output.Quantity.String(),
		ClaimedTotal: output.ClaimedTotal.String(),
		Comparisons:  comparisons,
	}
}
