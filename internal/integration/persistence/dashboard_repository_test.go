// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/farm-tracker/backend/internal/domain/entity"
	"github.com/farm-tracker/backend/internal/integration/persistence/model"
)

func TestDashboardRepository_MonthlyCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)
	ctx := context.Background()

	raj := seedFarmer(t, db, "Raj Kumar")

	backdate := func(crop *entity.Crop, createdAt time.Time) {
		t.Helper()
		err := db.Model(&model.CropModel{}).
			Where("id = ?", crop.ID).
			Update("created_at", createdAt).Error
		if err != nil {
			t.Fatalf("failed to backdate crop: %v", err)
		}
	}

	harvest := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	backdate(seedCrop(t, db, raj, "Wheat", entity.SeasonRabi, entity.CropStatusGrowing, harvest, 100),
		time.Date(2025, 4, 12, 10, 30, 0, 0, time.UTC))
	backdate(seedCrop(t, db, raj, "Mustard", entity.SeasonRabi, entity.CropStatusPlanted, harvest, 40),
		time.Date(2025, 4, 28, 0, 0, 0, 0, time.UTC))
	backdate(seedCrop(t, db, raj, "Tomato", entity.SeasonZaid, entity.CropStatusGrowing, harvest, 60),
		time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC))
	backdate(seedCrop(t, db, raj, "Cotton", entity.SeasonKharif, entity.CropStatusSold, harvest, 10),
		time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC))

	ref := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	counts, err := repo.MonthlyCounts(ctx, ref, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(counts) != 6 {
		t.Fatalf("expected 6 month buckets, got %d", len(counts))
	}
	if !counts[0].Month.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected series to start at January 2025, got %v", counts[0].Month)
	}
	if !counts[5].Month.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected series to end at the reference month, got %v", counts[5].Month)
	}

	april := counts[3]
	if april.Count != 2 || april.Quantity != 140 {
		t.Errorf("expected April bucket of 2 crops / 140 quantity, got %d / %v", april.Count, april.Quantity)
	}
	if may := counts[4]; may.Count != 0 || may.Quantity != 0 {
		t.Errorf("expected empty May bucket, got %d / %v", may.Count, may.Quantity)
	}
	if june := counts[5]; june.Count != 1 || june.Quantity != 60 {
		t.Errorf("expected June bucket of 1 crop / 60 quantity, got %d / %v", june.Count, june.Quantity)
	}
	for _, c := range counts {
		if c.Month.Year() == 2024 {
			t.Errorf("December 2024 crop should fall outside the window")
		}
	}
}
