// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
	"github.com/farm-tracker/backend/internal/integration/persistence/model"
)

// newTestDB opens an in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	err = db.AutoMigrate(
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
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func seedFarmer(t *testing.T, db *gorm.DB, name string) *entity.Farmer {
	t.Helper()
	farmer := entity.NewFarmer(name, "9876500000", "", "Karnal, Haryana", nil, 5, decimal.NewFromInt(3))
	if err := NewFarmerRepository(db).Create(context.Background(), farmer); err != nil {
		t.Fatalf("failed to seed farmer: %v", err)
	}
	return farmer
}

func seedCrop(t *testing.T, db *gorm.DB, farmer *entity.Farmer, name string, season entity.Season, status entity.CropStatus, harvestDate time.Time, quantity int64) *entity.Crop {
	t.Helper()
	crop := entity.NewCrop(name, farmer.ID, nil, season, status,
		decimal.NewFromInt(10), decimal.NewFromInt(quantity), nil, harvestDate, decimal.Zero, "")
	if err := NewCropRepository(db).Create(context.Background(), crop); err != nil {
		t.Fatalf("failed to seed crop: %v", err)
	}
	return crop
}

func TestCropRepository_FindByFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewCropRepository(db)
	ctx := context.Background()

	raj := seedFarmer(t, db, "Raj Kumar")
	sita := seedFarmer(t, db, "Sita Devi")

	seedCrop(t, db, raj, "Wheat", entity.SeasonRabi, entity.CropStatusGrowing,
		time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), 100)
	seedCrop(t, db, raj, "Mustard", entity.SeasonRabi, entity.CropStatusPlanted,
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 40)
	seedCrop(t, db, sita, "Basmati Rice", entity.SeasonKharif, entity.CropStatusGrowing,
		time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC), 600)

	t.Run("search matches farmer name through the join", func(t *testing.T) {
		crops, err := repo.FindByFilter(ctx, adapter.CropFilter{Search: "sita"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(crops) != 1 || crops[0].Crop.Name != "Basmati Rice" {
			t.Fatalf("expected only Basmati Rice, got %d crops", len(crops))
		}
		if crops[0].Farmer == nil || crops[0].Farmer.Name != "Sita Devi" {
			t.Error("expected farmer relation to be loaded")
		}
	})

	t.Run("search matches season case-insensitively", func(t *testing.T) {
		crops, err := repo.FindByFilter(ctx, adapter.CropFilter{Search: "kharif"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(crops) != 1 {
			t.Fatalf("expected 1 crop for season search, got %d", len(crops))
		}
	})

	t.Run("results are ordered by harvest date ascending", func(t *testing.T) {
		season := entity.SeasonRabi
		crops, err := repo.FindByFilter(ctx, adapter.CropFilter{Season: &season})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(crops) != 2 {
			t.Fatalf("expected 2 Rabi crops, got %d", len(crops))
		}
		if crops[0].Crop.Name != "Mustard" || crops[1].Crop.Name != "Wheat" {
			t.Errorf("unexpected order: %s, %s", crops[0].Crop.Name, crops[1].Crop.Name)
		}
	})
}

func TestCropRepository_FindHarvestWindow(t *testing.T) {
	db := newTestDB(t)
	repo := NewCropRepository(db)
	ctx := context.Background()

	raj := seedFarmer(t, db, "Raj Kumar")
	seedCrop(t, db, raj, "Edge", entity.SeasonKharif, entity.CropStatusGrowing,
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 10)
	seedCrop(t, db, raj, "Evening", entity.SeasonKharif, entity.CropStatusGrowing,
		time.Date(2025, 7, 1, 18, 30, 0, 0, time.UTC), 10)
	seedCrop(t, db, raj, "Outside", entity.SeasonKharif, entity.CropStatusGrowing,
		time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC), 10)
	seedCrop(t, db, raj, "Sold", entity.SeasonKharif, entity.CropStatusSold,
		time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), 10)
	seedCrop(t, db, raj, "Past", entity.SeasonKharif, entity.CropStatusGrowing,
		time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), 10)
	seedCrop(t, db, raj, "LateNight", entity.SeasonKharif, entity.CropStatusGrowing,
		time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC), 10)

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	statuses := []entity.CropStatus{entity.CropStatusPlanted, entity.CropStatusGrowing}

	t.Run("window bounds are inclusive and statuses filter", func(t *testing.T) {
		crops, err := repo.FindHarvestWindow(ctx, from, to, statuses)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(crops) != 2 {
			t.Fatalf("expected 2 crops on the window edge, got %d", len(crops))
		}
		if crops[0].Crop.Name != "Edge" || crops[1].Crop.Name != "Evening" {
			t.Errorf("unexpected crops: %s, %s", crops[0].Crop.Name, crops[1].Crop.Name)
		}
	})

	t.Run("time of day on the horizon day stays inside the window", func(t *testing.T) {
		crops, err := repo.FindHarvestWindow(ctx, from, to, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		names := map[string]bool{}
		for _, c := range crops {
			names[c.Crop.Name] = true
		}
		if !names["Evening"] {
			t.Error("expected the evening harvest on the horizon day to be included")
		}
		if names["Outside"] || names["LateNight"] {
			t.Error("expected crops outside the calendar window to be excluded")
		}
	})

	t.Run("overdue is strictly before the date", func(t *testing.T) {
		crops, err := repo.FindOverdue(ctx, from, statuses)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(crops) != 2 {
			t.Fatalf("expected 2 overdue crops, got %d", len(crops))
		}
		if crops[0].Crop.Name != "Past" || crops[1].Crop.Name != "LateNight" {
			t.Errorf("unexpected order: %s, %s", crops[0].Crop.Name, crops[1].Crop.Name)
		}
	})
}

func TestCropRepository_ClearCategory(t *testing.T) {
	db := newTestDB(t)
	cropRepo := NewCropRepository(db)
	categoryRepo := NewCategoryRepository(db)
	ctx := context.Background()

	category := entity.NewCropCategory("Cereals", "Grain crops", "🌾")
	if err := categoryRepo.Create(ctx, category); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	raj := seedFarmer(t, db, "Raj Kumar")
	crop := entity.NewCrop("Wheat", raj.ID, &category.ID, entity.SeasonRabi, entity.CropStatusGrowing,
		decimal.NewFromInt(20), decimal.NewFromInt(100), nil,
		time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), decimal.Zero, "")
	if err := cropRepo.Create(ctx, crop); err != nil {
		t.Fatalf("failed to create crop: %v", err)
	}

	if err := cropRepo.ClearCategory(ctx, category.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := cropRepo.FindByID(ctx, crop.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CategoryID != nil {
		t.Error("expected category reference to be cleared")
	}
}

func TestFarmerRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	farmerRepo := NewFarmerRepository(db)
	cropRepo := NewCropRepository(db)
	notificationRepo := NewNotificationRepository(db)
	ctx := context.Background()

	raj := seedFarmer(t, db, "Raj Kumar")
	crop := seedCrop(t, db, raj, "Wheat", entity.SeasonRabi, entity.CropStatusGrowing,
		time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), 100)
	notice := entity.NewNotification(raj.ID, "Welcome", "Welcome to Farm Tracker", entity.NotificationTypeGeneral)
	if err := notificationRepo.Create(ctx, notice); err != nil {
		t.Fatalf("failed to create notification: %v", err)
	}

	if err := farmerRepo.Delete(ctx, raj.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := farmerRepo.FindByID(ctx, raj.ID); !errors.Is(err, domainerror.ErrFarmerNotFound) {
		t.Errorf("expected ErrFarmerNotFound, got %v", err)
	}
	if _, err := cropRepo.FindByID(ctx, crop.ID); !errors.Is(err, domainerror.ErrCropNotFound) {
		t.Errorf("expected ErrCropNotFound, got %v", err)
	}
	notifications, err := notificationRepo.FindByFarmer(ctx, raj.ID, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifications) != 0 {
		t.Errorf("expected notifications to be removed, got %d", len(notifications))
	}
}

func TestFarmerRepository_ExperienceBucketFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewFarmerRepository(db)
	ctx := context.Background()

	for _, f := range []struct {
		name  string
		years int
	}{
		{"Fresh Farmer", 0},
		{"Boundary Two", 2},
		{"Mid Farmer", 7},
		{"Boundary Ten", 10},
		{"Veteran", 25},
	} {
		farmer := entity.NewFarmer(f.name, "9876500000", "", "", nil, f.years, decimal.Zero)
		if err := repo.Create(ctx, farmer); err != nil {
			t.Fatalf("failed to create farmer: %v", err)
		}
	}

	cases := []struct {
		bucket entity.ExperienceBucket
		want   int
	}{
		{entity.ExperienceBucketNew, 1},
		{entity.ExperienceBucketExperienced, 2},
		{entity.ExperienceBucketExpert, 2},
	}
	for _, tc := range cases {
		t.Run(string(tc.bucket), func(t *testing.T) {
			bucket := tc.bucket
			farmers, err := repo.FindByFilter(ctx, adapter.FarmerFilter{ExperienceBucket: &bucket})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(farmers) != tc.want {
				t.Errorf("expected %d farmers in %s, got %d", tc.want, tc.bucket, len(farmers))
			}
		})
	}
}

func TestMarketPriceRepository_FindByCropName(t *testing.T) {
	db := newTestDB(t)
	repo := NewMarketPriceRepository(db)
	ctx := context.Background()

	for i, row := range []struct {
		name  string
		price int64
		date  time.Time
	}{
		{"Basmati Rice", 25, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"Basmati Rice", 26, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)},
		{"Wheat", 22, time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)},
	} {
		price := entity.NewMarketPrice(row.name, decimal.NewFromInt(row.price), "Karnal Mandi", row.date, "")
		if err := repo.Create(ctx, price); err != nil {
			t.Fatalf("failed to create price %d: %v", i, err)
		}
	}

	prices, err := repo.FindByCropName(ctx, "BASMATI", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prices) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(prices))
	}
	// Newest first.
	if !prices[0].PricePerKg.Equal(decimal.NewFromInt(26)) {
		t.Errorf("expected newest price 26 first, got %s", prices[0].PricePerKg)
	}
	if prices[0].Source != entity.DefaultPriceSource {
		t.Errorf("expected default source, got %q", prices[0].Source)
	}
}

func TestDashboardRepository_TopFarmersByQuantity(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)
	ctx := context.Background()

	raj := seedFarmer(t, db, "Raj Kumar")
	sita := seedFarmer(t, db, "Sita Devi")
	arjun := seedFarmer(t, db, "Arjun Singh")
	gita := seedFarmer(t, db, "Gita Bai")

	seedCrop(t, db, raj, "Wheat", entity.SeasonRabi, entity.CropStatusGrowing,
		time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), 300)
	seedCrop(t, db, raj, "Mustard", entity.SeasonRabi, entity.CropStatusGrowing,
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 100)
	seedCrop(t, db, sita, "Rice", entity.SeasonKharif, entity.CropStatusGrowing,
		time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC), 600)
	seedCrop(t, db, arjun, "Cotton", entity.SeasonKharif, entity.CropStatusGrowing,
		time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), 200)
	seedCrop(t, db, gita, "Onion", entity.SeasonZaid, entity.CropStatusGrowing,
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), 50)

	top, err := repo.TopFarmersByQuantity(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 farmers, got %d", len(top))
	}
	want := []string{"Sita Devi", "Raj Kumar", "Arjun Singh"}
	for i, name := range want {
		if top[i].Farmer.Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, top[i].Farmer.Name)
		}
	}
	if top[1].CropCount != 2 {
		t.Errorf("expected Raj Kumar to have 2 crops, got %d", top[1].CropCount)
	}
	if !top[0].TotalQuantity.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected top quantity 600, got %s", top[0].TotalQuantity)
	}
}

func TestNotificationRepository_Dedup(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	farmerID := uuid.New()
	notice := entity.NewNotification(farmerID, "Harvest Reminder: Wheat", "Due soon", entity.NotificationTypeHarvestReminder)
	if err := repo.Create(ctx, notice); err != nil {
		t.Fatalf("failed to create notification: %v", err)
	}

	exists, err := repo.ExistsByFarmerAndTitle(ctx, farmerID, "Harvest Reminder: Wheat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected reminder to exist by (farmer, title)")
	}

	exists, err = repo.ExistsByFarmerTitleAndMessage(ctx, farmerID, "Harvest Reminder: Wheat", "Different text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("different message must not match the (farmer, title, message) key")
	}
}
