// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueHarvestReminderEmail queues a harvest reminder email.
func (s *Service) QueueHarvestReminderEmail(ctx context.Context, input adapter.QueueHarvestReminderInput) error {
	subject := fmt.Sprintf("Harvest Reminder: %s - Farm Tracker", input.CropName)

	templateData := map[string]interface{}{
		"farmer_name":  input.FarmerName,
		"crop_name":    input.CropName,
		"harvest_date": input.HarvestDate,
	}

	job := entity.NewEmailJob(
		entity.TemplateHarvestReminder,
		input.FarmerEmail,
		input.FarmerName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue harvest reminder email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
