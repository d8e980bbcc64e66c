// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/farm-tracker/backend/internal/application/usecase/dashboard"
)

// SeasonSliceResponse is one season's share of the crop portfolio.
type SeasonSliceResponse struct {
	Season   string  `json:"season"`
	Count    int     `json:"count"`
	Quantity float64 `json:"quantity"`
}

// StatusSliceResponse is one status' share of the crop portfolio.
type StatusSliceResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// MonthPointResponse is one month in the crop creation series.
type MonthPointResponse struct {
	Month    string  `json:"month"` // YYYY-MM
	Count    int     `json:"count"`
	Quantity float64 `json:"quantity"`
}

// TopFarmerResponse is one entry in the top-farmers ranking.
type TopFarmerResponse struct {
	FarmerID      string `json:"farmer_id"`
	Name          string `json:"name"`
	CropCount     int    `json:"crop_count"`
	TotalQuantity string `json:"total_quantity"`
}

// HarvestItemResponse is a crop row on the upcoming, overdue or recent lists.
type HarvestItemResponse struct {
	CropID        string    `json:"crop_id"`
	CropName      string    `json:"crop_name"`
	FarmerID      string    `json:"farmer_id"`
	FarmerName    string    `json:"farmer_name"`
	HarvestDate   time.Time `json:"harvest_date"`
	Status        string    `json:"status"`
	TotalValue    string    `json:"total_value"`
	DaysToHarvest int       `json:"days_to_harvest"`
}

// DashboardOverviewResponse represents the full dashboard payload.
type DashboardOverviewResponse struct {
	TotalFarmers       int64                 `json:"total_farmers"`
	TotalCrops         int64                 `json:"total_crops"`
	TotalValue         string                `json:"total_value"`
	TotalProfit        string                `json:"total_profit"`
	SeasonDistribution []SeasonSliceResponse `json:"season_distribution"`
	StatusDistribution []StatusSliceResponse `json:"status_distribution"`
	MonthlySeries      []MonthPointResponse  `json:"monthly_series"`
	TopFarmers         []TopFarmerResponse   `json:"top_farmers"`
	UpcomingHarvests   []HarvestItemResponse `json:"upcoming_harvests"`
	OverdueCrops       []HarvestItemResponse `json:"overdue_crops"`
	RecentCrops        []HarvestItemResponse `json:"recent_crops"`
	GeneratedAt        time.Time             `json:"generated_at"`
}

// ToDashboardOverviewResponse converts the overview output to a response DTO.
func ToDashboardOverviewResponse(output *dashboard.GetOverviewOutput) DashboardOverviewResponse {
	seasons := make([]SeasonSliceResponse, len(output.SeasonDistribution))
	for i, s := range output.SeasonDistribution {
		seasons[i] = SeasonSliceResponse{
			Season:   string(s.Season),
			Count:    s.Count,
			Quantity: s.Quantity,
		}
	}

	statuses := make([]StatusSliceResponse, len(output.StatusDistribution))
	for i, s := range output.StatusDistribution {
		statuses[i] = StatusSliceResponse{
			Status: string(s.Status),
			Count:  s.Count,
		}
	}

	months := make([]MonthPointResponse, len(output.MonthlySeries))
	for i, m := range output.MonthlySeries {
		months[i] = MonthPointResponse{
			Month:    m.Month.Format("2006-01"),
			Count:    m.Count,
			Quantity: m.Quantity,
		}
	}

	topFarmers := make([]TopFarmerResponse, len(output.TopFarmers))
	for i, f := range output.TopFarmers {
		topFarmers[i] = TopFarmerResponse{
			FarmerID:      f.FarmerID.String(),
			Name:          f.Name,
			CropCount:     f.CropCount,
			TotalQuantity: f.TotalQuantity.String(),
		}
	}

	return DashboardOverviewResponse{
		TotalFarmers:       output.TotalFarmers,
		TotalCrops:         output.TotalCrops,
		TotalValue:         output.TotalValue.String(),
		TotalProfit:        output.TotalProfit.String(),
		SeasonDistribution: seasons,
		StatusDistribution: statuses,
		MonthlySeries:      months,
		TopFarmers:         topFarmers,
		UpcomingHarvests:   toHarvestItemResponses(output.UpcomingHarvests),
		OverdueCrops:       toHarvestItemResponses(output.OverdueCrops),
		RecentCrops:        toHarvestItemResponses(output.RecentCrops),
		GeneratedAt:        output.GeneratedAt,
	}
}

func toHarvestItemResponses(items []dashboard.HarvestItem) []HarvestItemResponse {
	responses := make([]HarvestItemResponse, len(items))
	for i, item := range items {
		responses[i] = HarvestItemResponse{
			CropID:        item.CropID.String(),
			CropName:      item.CropName,
			FarmerID:      item.FarmerID.String(),
			FarmerName:    item.FarmerName,
			HarvestDate:   item.HarvestDate,
			Status:        string(item.Status),
			TotalValue:    item.TotalValue.String(),
			DaysToHarvest: item.DaysToHarvest,
		}
	}
	return responses
}
