// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
	"github.com/farm-tracker/backend/internal/integration/persistence/model"
)

// notificationRepository implements the adapter.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance.
func NewNotificationRepository(db *gorm.DB) adapter.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create creates a new notification in the database.
func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationModel := model.NotificationFromEntity(notification)
	result := r.db.WithContext(ctx).Create(notificationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a notification by its ID.
func (r *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationModel model.NotificationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&notificationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrNotificationNotFound
		}
		return nil, result.Error
	}
	return notificationModel.ToEntity(), nil
}

// FindRecent retrieves the most recent notifications, newest first.
func (r *notificationRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&notificationModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toNotifications(notificationModels), nil
}

// FindByFarmer retrieves a farmer's notifications, newest first.
func (r *notificationRepository) FindByFarmer(ctx context.Context, farmerID uuid.UUID, limit int) ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel
	result := r.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notificationModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toNotifications(notificationModels), nil
}

// ExistsByFarmerAndTitle checks for an existing notification with the same
// farmer and title.
func (r *notificationRepository) ExistsByFarmerAndTitle(ctx context.Context, farmerID uuid.UUID, title string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("farmer_id = ? AND title = ?", farmerID, title).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// ExistsByFarmerTitleAndMessage checks for an existing notification with
// the same farmer, title and message text.
func (r *notificationRepository) ExistsByFarmerTitleAndMessage(ctx context.Context, farmerID uuid.UUID, title, message string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("farmer_id = ? AND title = ? AND message = ?", farmerID, title, message).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// MarkRead sets the read flag on a notification.
func (r *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID, read bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("is_read", read)
	return result.Error
}

func toNotifications(notificationModels []model.NotificationModel) []*entity.Notification {
	notifications := make([]*entity.Notification, len(notificationModels))
	for i, nm := range notificationModels {
		notifications[i] = nm.ToEntity()
	}
	return notifications
}
