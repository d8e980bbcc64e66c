// Package notification contains notification use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/application/adapter"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
)

// MarkReadInput represents the input for marking a notification read.
type MarkReadInput struct {
	ID uuid.UUID
}

// MarkReadUseCase flags a notification as read.
type MarkReadUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewMarkReadUseCase creates a new MarkReadUseCase instance.
func NewMarkReadUseCase(notificationRepo adapter.NotificationRepository) *MarkReadUseCase {
	return &MarkReadUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute marks the notification as read.
func (uc *MarkReadUseCase) Execute(ctx context.Context, input MarkReadInput) error {
	if _, err := uc.notificationRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeNotificationNotFound,
			"notification not found",
			err,
		)
	}

	if err := uc.notificationRepo.MarkRead(ctx, input.ID, true); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}
