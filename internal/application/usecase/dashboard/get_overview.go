// Package dashboard contains the dashboard overview use case.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
)

const (
	// overviewCacheKey is the cache slot holding the serialized overview.
	overviewCacheKey = "dashboard:overview"

	// overviewCacheTTL bounds how stale the cached overview can get.
	overviewCacheTTL = 60 * time.Second

	// upcomingWindowDays is the inclusive horizon for upcoming harvests.
	upcomingWindowDays = 30

	// monthlySeriesMonths is the span of the monthly crop series.
	monthlySeriesMonths = 6

	topFarmersLimit  = 3
	recentCropsLimit = 5
)

// SeasonSlice is one season's share of the crop portfolio.
type SeasonSlice struct {
	Season   entity.Season
	Count    int
	Quantity float64
}

// StatusSlice is one status' share of the crop portfolio.
type StatusSlice struct {
	Status entity.CropStatus
	Count  int
}

// MonthPoint is one month in the crop creation series.
type MonthPoint struct {
	Month    time.Time
	Count    int
	Quantity float64
}

// TopFarmerItem is one entry in the top-farmers ranking.
type TopFarmerItem struct {
	FarmerID      uuid.UUID
	Name          string
	CropCount     int
	TotalQuantity decimal.Decimal
}

// HarvestItem is a crop row on the upcoming or overdue lists.
type HarvestItem struct {
	CropID        uuid.UUID
	CropName      string
	FarmerID      uuid.UUID
	FarmerName    string
	HarvestDate   time.Time
	Status        entity.CropStatus
	TotalValue    decimal.Decimal
	DaysToHarvest int
}

// GetOverviewOutput is the full dashboard payload.
type GetOverviewOutput struct {
	TotalFarmers       int64
	TotalCrops         int64
	TotalValue         decimal.Decimal
	TotalProfit        decimal.Decimal
	SeasonDistribution []SeasonSlice
	StatusDistribution []StatusSlice
	MonthlySeries      []MonthPoint
	TopFarmers         []TopFarmerItem
	UpcomingHarvests   []HarvestItem
	OverdueCrops       []HarvestItem
	RecentCrops        []HarvestItem
	GeneratedAt        time.Time
}

// GetOverviewUseCase assembles the dashboard overview. The payload is
// cached for a short interval since it touches every table.
type GetOverviewUseCase struct {
	farmerRepo    adapter.FarmerRepository
	cropRepo      adapter.CropRepository
	dashboardRepo adapter.DashboardRepository
	cache         adapter.Cache
	clock         adapter.Clock
	logger        *slog.Logger
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	farmerRepo adapter.FarmerRepository,
	cropRepo adapter.CropRepository,
	dashboardRepo adapter.DashboardRepository,
	cache adapter.Cache,
	clock adapter.Clock,
	logger *slog.Logger,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		farmerRepo:    farmerRepo,
		cropRepo:      cropRepo,
		dashboardRepo: dashboardRepo,
		cache:         cache,
		clock:         clock,
		logger:        logger,
	}
}

// Execute builds the dashboard overview, serving from cache when possible.
func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*GetOverviewOutput, error) {
	if cached, ok := uc.fromCache(ctx); ok {
		return cached, nil
	}

	output, err := uc.build(ctx)
	if err != nil {
		return nil, err
	}

	uc.toCache(ctx, output)
	return output, nil
}

// fromCache attempts a cache read. Cache failures degrade to a rebuild.
func (uc *GetOverviewUseCase) fromCache(ctx context.Context) (*GetOverviewOutput, bool) {
	if uc.cache == nil {
		return nil, false
	}
	raw, found, err := uc.cache.Get(ctx, overviewCacheKey)
	if err != nil {
		uc.logger.Warn("dashboard cache read failed", "error", err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	var output GetOverviewOutput
	if err := json.Unmarshal(raw, &output); err != nil {
		uc.logger.Warn("dashboard cache entry corrupt", "error", err)
		return nil, false
	}
	return &output, true
}

func (uc *GetOverviewUseCase) toCache(ctx context.Context, output *GetOverviewOutput) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(output)
	if err != nil {
		uc.logger.Warn("dashboard cache marshal failed", "error", err)
		return
	}
	if err := uc.cache.Set(ctx, overviewCacheKey, raw, overviewCacheTTL); err != nil {
		uc.logger.Warn("dashboard cache write failed", "error", err)
	}
}

func (uc *GetOverviewUseCase) build(ctx context.Context) (*GetOverviewOutput, error) {
	now := uc.clock.Now()
	today := dateOnly(now)

	totalFarmers, err := uc.farmerRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count farmers: %w", err)
	}
	totalCrops, err := uc.cropRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count crops: %w", err)
	}

	crops, err := uc.cropRepo.FindByFilter(ctx, adapter.CropFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load crops: %w", err)
	}
	totalValue := decimal.Zero
	totalProfit := decimal.Zero
	for _, c := range crops {
		totalValue = totalValue.Add(c.Crop.TotalValue())
		totalProfit = totalProfit.Add(c.Crop.Profit())
	}

	seasonCounts, err := uc.dashboardRepo.SeasonCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load season counts: %w", err)
	}
	statusCounts, err := uc.dashboardRepo.StatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load status counts: %w", err)
	}
	monthCounts, err := uc.dashboardRepo.MonthlyCounts(ctx, today, monthlySeriesMonths)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly counts: %w", err)
	}
	topFarmers, err := uc.dashboardRepo.TopFarmersByQuantity(ctx, topFarmersLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top farmers: %w", err)
	}

	horizon := today.AddDate(0, 0, upcomingWindowDays)
	upcoming, err := uc.cropRepo.FindHarvestWindow(ctx, today, horizon,
		[]entity.CropStatus{entity.CropStatusPlanted, entity.CropStatusGrowing})
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming harvests: %w", err)
	}
	overdue, err := uc.cropRepo.FindOverdue(ctx, today,
		[]entity.CropStatus{entity.CropStatusPlanted, entity.CropStatusGrowing})
	if err != nil {
		return nil, fmt.Errorf("failed to load overdue crops: %w", err)
	}
	recent, err := uc.cropRepo.FindRecent(ctx, recentCropsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent crops: %w", err)
	}

	output := &GetOverviewOutput{
		TotalFarmers:       totalFarmers,
		TotalCrops:         totalCrops,
		TotalValue:         totalValue,
		TotalProfit:        totalProfit,
		SeasonDistribution: make([]SeasonSlice, len(seasonCounts)),
		StatusDistribution: make([]StatusSlice, len(statusCounts)),
		MonthlySeries:      make([]MonthPoint, len(monthCounts)),
		TopFarmers:         make([]TopFarmerItem, len(topFarmers)),
		UpcomingHarvests:   harvestItems(upcoming, today),
		OverdueCrops:       harvestItems(overdue, today),
		RecentCrops:        harvestItems(recent, today),
		GeneratedAt:        now,
	}
	for i, sc := range seasonCounts {
		output.SeasonDistribution[i] = SeasonSlice{Season: sc.Season, Count: sc.Count, Quantity: sc.Quantity}
	}
	for i, sc := range statusCounts {
		output.StatusDistribution[i] = StatusSlice{Status: sc.Status, Count: sc.Count}
	}
	for i, mc := range monthCounts {
		output.MonthlySeries[i] = MonthPoint{Month: mc.Month, Count: mc.Count, Quantity: mc.Quantity}
	}
	for i, tf := range topFarmers {
		output.TopFarmers[i] = TopFarmerItem{
			FarmerID:      tf.Farmer.ID,
			Name:          tf.Farmer.Name,
			CropCount:     tf.CropCount,
			TotalQuantity: tf.TotalQuantity,
		}
	}
	return output, nil
}

// harvestItems flattens crop rows into dashboard list entries.
func harvestItems(crops []*entity.CropWithRelations, today time.Time) []HarvestItem {
	items := make([]HarvestItem, len(crops))
	for i, c := range crops {
		farmerName := ""
		if c.Farmer != nil {
			farmerName = c.Farmer.Name
		}
		items[i] = HarvestItem{
			CropID:        c.Crop.ID,
			CropName:      c.Crop.Name,
			FarmerID:      c.Crop.FarmerID,
			FarmerName:    farmerName,
			HarvestDate:   c.Crop.HarvestDate,
			Status:        c.Crop.Status,
			TotalValue:    c.Crop.TotalValue(),
			DaysToHarvest: c.Crop.DaysToHarvest(today),
		}
	}
	return items
}

// dateOnly strips the time of day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
