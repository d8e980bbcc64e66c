// Package main seeds the database with sample data for local development.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/config"
	"github.com/farm-tracker/backend/internal/domain/entity"
	"github.com/farm-tracker/backend/internal/infra/db"
	"github.com/farm-tracker/backend/internal/integration/persistence"
	"github.com/farm-tracker/backend/internal/integration/persistence/model"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.FarmerModel{},
		&model.CropCategoryModel{},
		&model.CropModel{},
		&model.MarketPriceModel{},
		&model.WeatherDataModel{},
		&model.NotificationModel{},
		&model.CategorySuggestionModel{},
		&model.EmailQueueModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	gdb := database.DB()

	categoryRepo := persistence.NewCategoryRepository(gdb)
	farmerRepo := persistence.NewFarmerRepository(gdb)
	cropRepo := persistence.NewCropRepository(gdb)
	marketRepo := persistence.NewMarketPriceRepository(gdb)
	weatherRepo := persistence.NewWeatherRepository(gdb)

	// Categories
	categories := []*entity.CropCategory{
		entity.NewCropCategory("Cereals", "Rice, wheat, maize and other grain crops", "🌾"),
		entity.NewCropCategory("Pulses", "Lentils, chickpeas and other legumes", "🫘"),
		entity.NewCropCategory("Vegetables", "Seasonal vegetable crops", "🥬"),
		entity.NewCropCategory("Fruits", "Orchard and plantation fruit crops", "🍎"),
		entity.NewCropCategory("Cash Crops", "Cotton, sugarcane and other commercial crops", "💰"),
	}
	for _, c := range categories {
		if err := categoryRepo.Create(ctx, c); err != nil {
			slog.Error("Failed to seed category", "name", c.Name, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Seeded categories", "count", len(categories))

	cereals := categories[0].ID
	vegetables := categories[2].ID

	// Farmers
	dob := time.Date(1978, 6, 12, 0, 0, 0, 0, time.UTC)
	farmers := []*entity.Farmer{
		entity.NewFarmer("Raj Patel", "+91 98765 43210", "raj.patel@example.com", "Village Rampur, Gujarat", &dob, 18, decimal.NewFromFloat(12.5)),
		entity.NewFarmer("Sita Devi", "+91 91234 56789", "sita.devi@example.com", "Village Kheda, Bihar", nil, 4, decimal.NewFromFloat(3.2)),
		entity.NewFarmer("Arjun Singh", "+91 99887 76655", "arjun.singh@example.com", "Village Bhilwara, Rajasthan", nil, 1, decimal.NewFromFloat(6)),
	}
	for _, f := range farmers {
		if err := farmerRepo.Create(ctx, f); err != nil {
			slog.Error("Failed to seed farmer", "name", f.Name, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Seeded farmers", "count", len(farmers))

	// Crops
	now := time.Now().UTC()
	planted := now.AddDate(0, -2, 0)
	crops := []*entity.Crop{
		entity.NewCrop("Basmati Rice", farmers[0].ID, &cereals, entity.SeasonKharif, entity.CropStatusGrowing,
			decimal.NewFromFloat(45), decimal.NewFromFloat(800), &planted, now.AddDate(0, 1, 15),
			decimal.NewFromFloat(18000), "Irrigated paddy field"),
		entity.NewCrop("Wheat", farmers[0].ID, &cereals, entity.SeasonRabi, entity.CropStatusPlanted,
			decimal.NewFromFloat(24), decimal.NewFromFloat(1200), nil, now.AddDate(0, 4, 0),
			decimal.NewFromFloat(22000), ""),
		entity.NewCrop("Tomato", farmers[1].ID, &vegetables, entity.SeasonZaid, entity.CropStatusReady,
			decimal.NewFromFloat(30), decimal.NewFromFloat(400), &planted, now.AddDate(0, 0, 5),
			decimal.NewFromFloat(8000), "Drip irrigation plot"),
		entity.NewCrop("Mustard", farmers[2].ID, nil, entity.SeasonRabi, entity.CropStatusPlanted,
			decimal.NewFromFloat(55), decimal.NewFromFloat(250), nil, now.AddDate(0, 3, 10),
			decimal.NewFromFloat(6000), "Awaiting category"),
	}
	for _, c := range crops {
		if err := cropRepo.Create(ctx, c); err != nil {
			slog.Error("Failed to seed crop", "name", c.Name, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Seeded crops", "count", len(crops))

	// Market prices
	prices := []*entity.MarketPrice{
		entity.NewMarketPrice("Basmati Rice", decimal.NewFromFloat(48), "Ahmedabad Mandi", now.AddDate(0, 0, -1), "Manual Entry"),
		entity.NewMarketPrice("Wheat", decimal.NewFromFloat(22.5), "Delhi Azadpur Mandi", now.AddDate(0, 0, -2), ""),
		entity.NewMarketPrice("Tomato", decimal.NewFromFloat(35), "Patna Mandi", now, ""),
	}
	for _, p := range prices {
		if err := marketRepo.Create(ctx, p); err != nil {
			slog.Error("Failed to seed market price", "crop", p.CropName, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Seeded market prices", "count", len(prices))

	// Weather observations
	observations := []*entity.WeatherData{
		entity.NewWeatherData("Ahmedabad", 34.2, 48, 0, "Sunny", now.AddDate(0, 0, -1)),
		entity.NewWeatherData("Patna", 29.8, 71, 12.4, "Rainy", now),
	}
	for _, w := range observations {
		if err := weatherRepo.Create(ctx, w); err != nil {
			slog.Error("Failed to seed weather data", "location", w.Location, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Seeded weather observations", "count", len(observations))

	slog.Info("Seed complete")
}
