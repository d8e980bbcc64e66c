// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/farm-tracker/backend/internal/application/usecase/farmer"
	"github.com/farm-tracker/backend/internal/domain/entity"
)

// CreateFarmerRequest represents the request body for farmer creation.
type CreateFarmerRequest struct {
	Name            string     `json:"name" binding:"required,min=1,max=100"`
	Phone           string     `json:"phone,omitempty"`
	Email           string     `json:"email,omitempty" binding:"omitempty,email"`
	Address         string     `json:"address,omitempty"`
	DateOfBirth     *time.Time `json:"date_of_birth,omitempty"`
	ExperienceYears int        `json:"experience_years"`
	LandAreaAcres   float64    `json:"land_area_acres"`
}

// UpdateFarmerRequest represents the request body for a farmer profile edit.
type UpdateFarmerRequest struct {
	Name            *string    `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Phone           *string    `json:"phone,omitempty"`
	Email           *string    `json:"email,omitempty" binding:"omitempty,email"`
	Address         *string    `json:"address,omitempty"`
	DateOfBirth     *time.Time `json:"date_of_birth,omitempty"`
	ExperienceYears *int       `json:"experience_years,omitempty"`
	LandAreaAcres   *float64   `json:"land_area_acres,omitempty"`
}

// FarmerResponse represents a single farmer in API responses.
type FarmerResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email"`
	Address          string     `json:"address"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	ExperienceYears  int        `json:"experience_years"`
	ExperienceBucket string     `json:"experience_bucket"`
	LandAreaAcres    string     `json:"land_area_acres"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// FarmerListItemResponse is a farmer row with aggregated crop statistics.
type FarmerListItemResponse struct {
	FarmerResponse
	CropCount     int    `json:"crop_count"`
	TotalValue    string `json:"total_value"`
	UpcomingCount int    `json:"upcoming_count"`
}

// FarmerListResponse represents the response for listing farmers.
type FarmerListResponse struct {
	Farmers []FarmerListItemResponse `json:"farmers"`
}

// FarmerDetailResponse represents the farmer profile with analytics.
type FarmerDetailResponse struct {
	Farmer           FarmerResponse `json:"farmer"`
	CropCount        int            `json:"crop_count"`
	TotalValue       string         `json:"total_value"`
	UpcomingHarvests []CropResponse `json:"upcoming_harvests"`
	CropsBySeason    map[string]int `json:"crops_by_season"`
	CropsByStatus    map[string]int `json:"crops_by_status"`
	RecentCrops      []CropResponse `json:"recent_crops"`
}

// ToFarmerResponse converts a domain Farmer entity to a FarmerResponse DTO.
func ToFarmerResponse(f *entity.Farmer) FarmerResponse {
	return FarmerResponse{
		ID:               f.ID.String(),
		Name:             f.Name,
		Phone:            f.Phone,
		Email:            f.Email,
		Address:          f.Address,
		DateOfBirth:      f.DateOfBirth,
		ExperienceYears:  f.ExperienceYears,
		ExperienceBucket: string(f.ExperienceBucket()),
		LandAreaAcres:    f.LandAreaAcres.String(),
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
	}
}

// ToFarmerListResponse converts farmer list items to a FarmerListResponse.
func ToFarmerListResponse(items []*entity.FarmerWithStats) FarmerListResponse {
	farmers := make([]FarmerListItemResponse, len(items))
	for i, item := range items {
		farmers[i] = FarmerListItemResponse{
			FarmerResponse: ToFarmerResponse(item.Farmer),
			CropCount:      item.CropCount,
			TotalValue:     item.TotalValue.String(),
			UpcomingCount:  item.UpcomingCount,
		}
	}
	return FarmerListResponse{Farmers: farmers}
}

// ToFarmerDetailResponse converts the farmer detail output to a response DTO.
func ToFarmerDetailResponse(output *farmer.GetFarmerOutput) FarmerDetailResponse {
	bySeason := make(map[string]int, len(output.CropsBySeason))
	for season, count := range output.CropsBySeason {
		bySeason[string(season)] = count
	}
	byStatus := make(map[string]int, len(output.CropsByStatus))
	for status, count := range output.CropsByStatus {
		byStatus[string(status)] = count
	}

	upcoming := make([]CropResponse, len(output.UpcomingHarvests))
	for i, c := range output.UpcomingHarvests {
		upcoming[i] = ToCropResponse(c)
	}
	recent := make([]CropResponse, len(output.RecentCrops))
	for i, c := range output.RecentCrops {
		recent[i] = ToCropResponse(c)
	}

	return FarmerDetailResponse{
		Farmer:           ToFarmerResponse(output.Farmer),
		CropCount:        output.CropCount,
		TotalValue:       output.TotalValue.String(),
		UpcomingHarvests: upcoming,
		CropsBySeason:    bySeason,
		CropsByStatus:    byStatus,
		RecentCrops:      recent,
	}
}
