// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
	"github.com/farm-tracker/backend/internal/integration/persistence/model"
)

// cropRepository implements the adapter.CropRepository interface.
type cropRepository struct {
	db *gorm.DB
}

// NewCropRepository creates a new crop repository instance.
func NewCropRepository(db *gorm.DB) adapter.CropRepository {
	return &cropRepository{
		db: db,
	}
}

// Create creates a new crop in the database.
func (r *cropRepository) Create(ctx context.Context, crop *entity.Crop) error {
	cropModel := model.CropFromEntity(crop)
	result := r.db.WithContext(ctx).Create(cropModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a crop by its ID.
func (r *cropRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Crop, error) {
	var cropModel model.CropModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&cropModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCropNotFound
		}
		return nil, result.Error
	}
	return cropModel.ToEntity(), nil
}

// FindByIDWithRelations retrieves a crop with its farmer and category.
func (r *cropRepository) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*entity.CropWithRelations, error) {
	var cropModel model.CropModel
	result := r.db.WithContext(ctx).
		Preload("Farmer").
		Preload("Category").
		Where("crops.id = ?", id).
		First(&cropModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCropNotFound
		}
		return nil, result.Error
	}
	return cropModel.ToEntityWithRelations(), nil
}

// FindByFilter retrieves crops matching the filter with relations loaded,
// ordered by harvest date ascending. The search spans crop name, farmer
// name and season, so the farmers table is joined in.
func (r *cropRepository) FindByFilter(ctx context.Context, filter adapter.CropFilter) ([]*entity.CropWithRelations, error) {
	query := r.db.WithContext(ctx).
		Model(&model.CropModel{}).
		Preload("Farmer").
		Preload("Category")

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.
			Joins("JOIN farmers ON farmers.id = crops.farmer_id").
			Where(
				"LOWER(crops.name) LIKE ? OR LOWER(farmers.name) LIKE ? OR LOWER(crops.season) LIKE ?",
				pattern, pattern, pattern,
			)
	}
	if filter.Season != nil {
		query = query.Where("crops.season = ?", string(*filter.Season))
	}
	if filter.Status != nil {
		query = query.Where("crops.status = ?", string(*filter.Status))
	}
	if filter.FarmerID != nil {
		query = query.Where("crops.farmer_id = ?", *filter.FarmerID)
	}

	var cropModels []model.CropModel
	result := query.Order("crops.harvest_date ASC").Find(&cropModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toEntitiesWithRelations(cropModels), nil
}

// FindByFarmer retrieves all crops belonging to a farmer.
func (r *cropRepository) FindByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.Crop, error) {
	var cropModels []model.CropModel
	result := r.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("harvest_date ASC").
		Find(&cropModels)
	if result.Error != nil {
		return nil, result.Error
	}

	crops := make([]*entity.Crop, len(cropModels))
	for i, cm := range cropModels {
		crops[i] = cm.ToEntity()
	}
	return crops, nil
}

// FindHarvestWindow retrieves crops whose harvest date falls in [from, to]
// inclusive, restricted to the given statuses when any are provided. The
// bounds are calendar days: a harvest date carrying a time-of-day on the
// horizon day still falls inside the window.
func (r *cropRepository) FindHarvestWindow(ctx context.Context, from, to time.Time, statuses []entity.CropStatus) ([]*entity.CropWithRelations, error) {
	query := r.db.WithContext(ctx).
		Model(&model.CropModel{}).
		Preload("Farmer").
		Preload("Category").
		Where("harvest_date >= ? AND harvest_date < ?", dayStart(from), dayStart(to).AddDate(0, 0, 1))

	if len(statuses) > 0 {
		query = query.Where("status IN ?", statusStrings(statuses))
	}

	var cropModels []model.CropModel
	result := query.Order("harvest_date ASC").Find(&cropModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toEntitiesWithRelations(cropModels), nil
}

// FindOverdue retrieves crops whose harvest date is strictly before the
// given calendar day, restricted to the given statuses.
func (r *cropRepository) FindOverdue(ctx context.Context, before time.Time, statuses []entity.CropStatus) ([]*entity.CropWithRelations, error) {
	query := r.db.WithContext(ctx).
		Model(&model.CropModel{}).
		Preload("Farmer").
		Preload("Category").
		Where("harvest_date < ?", dayStart(before))

	if len(statuses) > 0 {
		query = query.Where("status IN ?", statusStrings(statuses))
	}

	var cropModels []model.CropModel
	result := query.Order("harvest_date ASC").Find(&cropModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toEntitiesWithRelations(cropModels), nil
}

// FindRecent retrieves the most recently created crops.
func (r *cropRepository) FindRecent(ctx context.Context, limit int) ([]*entity.CropWithRelations, error) {
	var cropModels []model.CropModel
	result := r.db.WithContext(ctx).
		Preload("Farmer").
		Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Find(&cropModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toEntitiesWithRelations(cropModels), nil
}

// Update updates an existing crop in the database.
func (r *cropRepository) Update(ctx context.Context, crop *entity.Crop) error {
	cropModel := model.CropFromEntity(crop)
	result := r.db.WithContext(ctx).Save(cropModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a crop from the database.
func (r *cropRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CropModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Count returns the total number of crops.
func (r *cropRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.CropModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// ClearCategory nulls out the category reference on all crops that point
// at the given category.
func (r *cropRepository) ClearCategory(ctx context.Context, categoryID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.CropModel{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil)
	return result.Error
}

// toEntitiesWithRelations maps crop models with preloaded relations.
func toEntitiesWithRelations(cropModels []model.CropModel) []*entity.CropWithRelations {
	crops := make([]*entity.CropWithRelations, len(cropModels))
	for i := range cropModels {
		crops[i] = cropModels[i].ToEntityWithRelations()
	}
	return crops
}

// statusStrings converts status constants for IN clauses.
func statusStrings(statuses []entity.CropStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// dayStart truncates a time to midnight of its calendar day.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
