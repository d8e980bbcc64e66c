// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
	"github.com/farm-tracker/backend/internal/integration/persistence/model"
)

// farmerRepository implements the adapter.FarmerRepository interface.
type farmerRepository struct {
	db *gorm.DB
}

// NewFarmerRepository creates a new farmer repository instance.
func NewFarmerRepository(db *gorm.DB) adapter.FarmerRepository {
	return &farmerRepository{
		db: db,
	}
}

// Create creates a new farmer in the database.
func (r *farmerRepository) Create(ctx context.Context, farmer *entity.Farmer) error {
	farmerModel := model.FarmerFromEntity(farmer)
	result := r.db.WithContext(ctx).Create(farmerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a farmer by their ID.
func (r *farmerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Farmer, error) {
	var farmerModel model.FarmerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&farmerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFarmerNotFound
		}
		return nil, result.Error
	}
	return farmerModel.ToEntity(), nil
}

// FindByFilter retrieves farmers matching the filter, ordered by name.
// The experience bucket filter translates to year ranges here so the
// half-open boundaries live in one place per backend.
func (r *farmerRepository) FindByFilter(ctx context.Context, filter adapter.FarmerFilter) ([]*entity.Farmer, error) {
	query := r.db.WithContext(ctx).Model(&model.FarmerModel{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ? OR LOWER(address) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.ExperienceBucket != nil {
		switch *filter.ExperienceBucket {
		case entity.ExperienceBucketNew:
			query = query.Where("experience_years < ?", 2)
		case entity.ExperienceBucketExperienced:
			query = query.Where("experience_years >= ? AND experience_years < ?", 2, 10)
		case entity.ExperienceBucketExpert:
			query = query.Where("experience_years >= ?", 10)
		}
	}

	var farmerModels []model.FarmerModel
	result := query.Order("name ASC").Find(&farmerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	farmers := make([]*entity.Farmer, len(farmerModels))
	for i, fm := range farmerModels {
		farmers[i] = fm.ToEntity()
	}
	return farmers, nil
}

// FindAll retrieves every farmer, ordered by name.
func (r *farmerRepository) FindAll(ctx context.Context) ([]*entity.Farmer, error) {
	return r.FindByFilter(ctx, adapter.FarmerFilter{})
}

// Update updates an existing farmer in the database.
func (r *farmerRepository) Update(ctx context.Context, farmer *entity.Farmer) error {
	farmerModel := model.FarmerFromEntity(farmer)
	result := r.db.WithContext(ctx).Save(farmerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a farmer and cascades to their crops and notifications.
func (r *farmerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// sqlite in tests does not enforce the FK cascade, so dependents are
	// removed explicitly inside one transaction.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("farmer_id = ?", id).Delete(&model.NotificationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("farmer_id = ?", id).Delete(&model.CropModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.FarmerModel{}, "id = ?", id).Error
	})
}

// Count returns the total number of farmers.
func (r *farmerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.FarmerModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
