// Package notification contains notification use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
)

// defaultNotificationLimit bounds an unqualified notification listing.
const defaultNotificationLimit = 20

// ListNotificationsInput represents the input for listing notifications.
type ListNotificationsInput struct {
	FarmerID *uuid.UUID // Optional filter
	Limit    int        // Defaults to 20
}

// ListNotificationsOutput represents the output of listing notifications.
type ListNotificationsOutput struct {
	Notifications []*entity.Notification
	UnreadCount   int
}

// ListNotificationsUseCase handles the notification listing, newest first.
type ListNotificationsUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewListNotificationsUseCase creates a new ListNotificationsUseCase instance.
func NewListNotificationsUseCase(notificationRepo adapter.NotificationRepository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute performs the notification listing.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, input ListNotificationsInput) (*ListNotificationsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultNotificationLimit
	}

	var (
		notifications []*entity.Notification
		err           error
	)
	if input.FarmerID != nil {
		notifications, err = uc.notificationRepo.FindByFarmer(ctx, *input.FarmerID, limit)
	} else {
		notifications, err = uc.notificationRepo.FindRecent(ctx, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}

	return &ListNotificationsOutput{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}
