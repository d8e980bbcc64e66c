// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/domain/entity"
)

// NotificationRepository defines the interface for notification persistence operations.
type NotificationRepository interface {
	// Create creates a new notification in the database.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindRecent retrieves the most recent notifications, newest first.
	FindRecent(ctx context.Context, limit int) ([]*entity.Notification, error)

	// FindByFarmer retrieves a farmer's notifications, newest first.
	FindByFarmer(ctx context.Context, farmerID uuid.UUID, limit int) ([]*entity.Notification, error)

	// ExistsByFarmerAndTitle checks for an existing notification with the
	// same farmer and title. Used to keep reminder generation idempotent.
	ExistsByFarmerAndTitle(ctx context.Context, farmerID uuid.UUID, title string) (bool, error)

	// ExistsByFarmerTitleAndMessage checks for an existing notification with
	// the same farmer, title and message text.
	ExistsByFarmerTitleAndMessage(ctx context.Context, farmerID uuid.UUID, title, message string) (bool, error)

	// MarkRead sets the read flag on a notification.
	MarkRead(ctx context.Context, id uuid.UUID, read bool) error
}
