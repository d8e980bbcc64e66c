// Package notification contains notification use cases.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
)

// reminderWindowDays is the inclusive horizon for harvest reminders.
const reminderWindowDays = 7

// harvestDateFormat renders dates the way they appear in reminder text.
const harvestDateFormat = "January 2, 2006"

// generalTemplate is one entry of the rotating general-notice pool.
type generalTemplate struct {
	title   string
	message string
}

// generalPool is the fixed set of general notices farmers rotate through.
var generalPool = []generalTemplate{
	{"Weather Advisory", "Check the local forecast before planning irrigation this week."},
	{"Market Update", "New mandi prices have been recorded. Compare before you sell."},
	{"Soil Health Tip", "Consider a soil test before the next sowing cycle."},
	{"Scheme Alert", "Review current government support schemes for your district."},
}

// GenerateRemindersInput represents the input for reminder generation.
type GenerateRemindersInput struct{}

// GenerateRemindersOutput represents the output of reminder generation.
// Only newly created notifications are returned.
type GenerateRemindersOutput struct {
	Created      []*entity.Notification
	Skipped      int
	QueuedEmails int
}

// GenerateRemindersUseCase creates harvest reminders for crops due within
// the next week plus one rotating general notice per farmer. Generation is
// idempotent: reminders are keyed by (farmer, title) and general notices
// by (farmer, title, message), so repeated runs create nothing new.
type GenerateRemindersUseCase struct {
	farmerRepo       adapter.FarmerRepository
	cropRepo         adapter.CropRepository
	notificationRepo adapter.NotificationRepository
	emailService     adapter.EmailService
	clock            adapter.Clock
	logger           *slog.Logger
}

// NewGenerateRemindersUseCase creates a new GenerateRemindersUseCase instance.
func NewGenerateRemindersUseCase(
	farmerRepo adapter.FarmerRepository,
	cropRepo adapter.CropRepository,
	notificationRepo adapter.NotificationRepository,
	emailService adapter.EmailService,
	clock adapter.Clock,
	logger *slog.Logger,
) *GenerateRemindersUseCase {
	return &GenerateRemindersUseCase{
		farmerRepo:       farmerRepo,
		cropRepo:         cropRepo,
		notificationRepo: notificationRepo,
		emailService:     emailService,
		clock:            clock,
		logger:           logger,
	}
}

// Execute generates the reminders.
func (uc *GenerateRemindersUseCase) Execute(ctx context.Context, _ GenerateRemindersInput) (*GenerateRemindersOutput, error) {
	now := uc.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	horizon := today.AddDate(0, 0, reminderWindowDays)

	output := &GenerateRemindersOutput{}

	farmers, err := uc.farmerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load farmers: %w", err)
	}
	farmersByID := make(map[uuid.UUID]*entity.Farmer, len(farmers))
	for _, f := range farmers {
		farmersByID[f.ID] = f
	}

	// Reminders key off the harvest date alone; status is not consulted so
	// even crops already marked harvested or sold keep their reminder.
	crops, err := uc.cropRepo.FindHarvestWindow(ctx, today, horizon, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load crops due for harvest: %w", err)
	}

	for _, c := range crops {
		farmer := farmersByID[c.Crop.FarmerID]
		if farmer == nil {
			continue
		}

		title := "Harvest Reminder: " + c.Crop.Name
		exists, err := uc.notificationRepo.ExistsByFarmerAndTitle(ctx, farmer.ID, title)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing reminder: %w", err)
		}
		if exists {
			output.Skipped++
			continue
		}

		message := fmt.Sprintf("Your crop '%s' is due for harvest on %s. Plan labour and transport ahead of time.",
			c.Crop.Name, c.Crop.HarvestDate.Format(harvestDateFormat))
		reminder := entity.NewNotification(farmer.ID, title, message, entity.NotificationTypeHarvestReminder)

		if err := uc.notificationRepo.Create(ctx, reminder); err != nil {
			return nil, fmt.Errorf("failed to create reminder: %w", err)
		}
		output.Created = append(output.Created, reminder)

		if farmer.Email != "" && uc.emailService != nil {
			if err := uc.emailService.QueueHarvestReminderEmail(ctx, adapter.QueueHarvestReminderInput{
				FarmerName:  farmer.Name,
				FarmerEmail: farmer.Email,
				CropName:    c.Crop.Name,
				HarvestDate: c.Crop.HarvestDate.Format(harvestDateFormat),
			}); err != nil {
				// Delivery is best-effort; the in-app reminder already exists.
				uc.logger.Warn("failed to queue reminder email", "farmer_id", farmer.ID, "error", err)
			} else {
				output.QueuedEmails++
			}
		}
	}

	for i, farmer := range farmers {
		tpl := generalPool[i%len(generalPool)]
		exists, err := uc.notificationRepo.ExistsByFarmerTitleAndMessage(ctx, farmer.ID, tpl.title, tpl.message)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing notice: %w", err)
		}
		if exists {
			output.Skipped++
			continue
		}

		notice := entity.NewNotification(farmer.ID, tpl.title, tpl.message, entity.NotificationTypeGeneral)
		if err := uc.notificationRepo.Create(ctx, notice); err != nil {
			return nil, fmt.Errorf("failed to create notice: %w", err)
		}
		output.Created = append(output.Created, notice)
	}

	return output, nil
}
