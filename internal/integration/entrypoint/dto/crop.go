// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/farm-tracker/backend/internal/application/usecase/crop"
	"github.com/farm-tracker/backend/internal/domain/entity"
)

// CreateCropRequest represents the request body for crop creation.
type CreateCropRequest struct {
	Name           string     `json:"name" binding:"required,min=1,max=100"`
	FarmerID       string     `json:"farmer_id" binding:"required,uuid"`
	CategoryID     *string    `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Season         string     `json:"season" binding:"required,oneof=Kharif Rabi Zaid Annual"`
	Status         string     `json:"status,omitempty" binding:"omitempty,oneof=Planted Growing Ready Harvested Sold"`
	PricePerKg     float64    `json:"price_per_kg"`
	Quantity       float64    `json:"quantity"`
	PlantedDate    *time.Time `json:"planted_date,omitempty"`
	HarvestDate    time.Time  `json:"harvest_date" binding:"required"`
	InvestmentCost float64    `json:"investment_cost"`
	Notes          string     `json:"notes,omitempty"`
}

// UpdateCropRequest represents the request body for a crop edit.
type UpdateCropRequest struct {
	Name              *string    `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	CategoryID        *string    `json:"category_id,omitempty" binding:"omitempty,uuid"`
	ClearCategory     bool       `json:"clear_category,omitempty"`
	Season            *string    `json:"season,omitempty" binding:"omitempty,oneof=Kharif Rabi Zaid Annual"`
	Status            *string    `json:"status,omitempty" binding:"omitempty,oneof=Planted Growing Ready Harvested Sold"`
	PricePerKg        *float64   `json:"price_per_kg,omitempty"`
	Quantity          *float64   `json:"quantity,omitempty"`
	PlantedDate       *time.Time `json:"planted_date,omitempty"`
	HarvestDate       *time.Time `json:"harvest_date,omitempty"`
	ActualHarvestDate *time.Time `json:"actual_harvest_date,omitempty"`
	InvestmentCost    *float64   `json:"investment_cost,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
}

// CropResponse represents a single crop in API responses. Derived fields are
// computed from the stored values at read time.
type CropResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	FarmerID          string     `json:"farmer_id"`
	CategoryID        *string    `json:"category_id,omitempty"`
	Season            string     `json:"season"`
	Status            string     `json:"status"`
	PricePerKg        string     `json:"price_per_kg"`
	Quantity          string     `json:"quantity"`
	PlantedDate       *time.Time `json:"planted_date,omitempty"`
	HarvestDate       time.Time  `json:"harvest_date"`
	ActualHarvestDate *time.Time `json:"actual_harvest_date,omitempty"`
	InvestmentCost    string     `json:"investment_cost"`
	Notes             string     `json:"notes,omitempty"`
	TotalValue        string     `json:"total_value"`
	Profit            string     `json:"profit"`
	ProfitMargin      string     `json:"profit_margin"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CropListItemResponse is a crop row with relations and derived fields.
type CropListItemResponse struct {
	CropResponse
	FarmerName    string `json:"farmer_name,omitempty"`
	CategoryName  string `json:"category_name,omitempty"`
	CategoryIcon  string `json:"category_icon,omitempty"`
	DaysToHarvest int    `json:"days_to_harvest"`
	IsOverdue     bool   `json:"is_overdue"`
}

// CropListResponse represents the response for listing crops.
type CropListResponse struct {
	Crops []CropListItemResponse `json:"crops"`
}

// ToCropResponse converts a domain Crop entity to a CropResponse DTO.
func ToCropResponse(c *entity.Crop) CropResponse {
	response := CropResponse{
		ID:                c.ID.String(),
		Name:              c.Name,
		FarmerID:          c.FarmerID.String(),
		Season:            string(c.Season),
		Status:            string(c.Status),
		PricePerKg:        c.PricePerKg.String(),
		Quantity:          c.Quantity.String(),
		PlantedDate:       c.PlantedDate,
		HarvestDate:       c.HarvestDate,
		ActualHarvestDate: c.ActualHarvestDate,
		InvestmentCost:    c.InvestmentCost.String(),
		Notes:             c.Notes,
		TotalValue:        c.TotalValue().String(),
		Profit:            c.Profit().String(),
		ProfitMargin:      c.ProfitMargin().String(),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
	if c.CategoryID != nil {
		id := c.CategoryID.String()
		response.CategoryID = &id
	}
	return response
}

// ToCropListResponse converts crop list items to a CropListResponse.
func ToCropListResponse(items []*crop.CropListItem) CropListResponse {
	crops := make([]CropListItemResponse, len(items))
	for i, item := range items {
		row := CropListItemResponse{
			CropResponse:  ToCropResponse(item.Crop),
			DaysToHarvest: item.DaysToHarvest,
			IsOverdue:     item.IsOverdue,
		}
		if item.Farmer != nil {
			row.FarmerName = item.Farmer.Name
		}
		if item.Category != nil {
			row.CategoryName = item.Category.Name
			row.CategoryIcon = item.Category.Icon
		}
		crops[i] = row
	}
	return CropListResponse{Crops: crops}
}
