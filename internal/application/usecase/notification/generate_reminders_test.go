// Package notification contains notification use cases.
package notification

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeFarmerRepository struct {
	adapter.FarmerRepository
	farmers []*entity.Farmer
}

func (r *fakeFarmerRepository) FindAll(ctx context.Context) ([]*entity.Farmer, error) {
	return r.farmers, nil
}

type fakeCropRepository struct {
	adapter.CropRepository
	crops []*entity.CropWithRelations
}

func (r *fakeCropRepository) FindHarvestWindow(ctx context.Context, from, to time.Time, statuses []entity.CropStatus) ([]*entity.CropWithRelations, error) {
	var out []*entity.CropWithRelations
	for _, c := range r.crops {
		if c.Crop.HarvestDate.Before(from) || c.Crop.HarvestDate.After(to) {
			continue
		}
		if len(statuses) > 0 {
			match := false
			for _, s := range statuses {
				if c.Crop.Status == s {
					match = true
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, c)
	}
	return out, nil
}

// fakeNotificationRepository stores notifications in memory and honors the
// existence checks the generator relies on.
type fakeNotificationRepository struct {
	notifications []*entity.Notification
}

func (r *fakeNotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, domainerror.ErrNotificationNotFound
}

func (r *fakeNotificationRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Notification, error) {
	return r.notifications, nil
}

func (r *fakeNotificationRepository) FindByFarmer(ctx context.Context, farmerID uuid.UUID, limit int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.notifications {
		if n.FarmerID == farmerID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepository) ExistsByFarmerAndTitle(ctx context.Context, farmerID uuid.UUID, title string) (bool, error) {
	for _, n := range r.notifications {
		if n.FarmerID == farmerID && n.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeNotificationRepository) ExistsByFarmerTitleAndMessage(ctx context.Context, farmerID uuid.UUID, title, message string) (bool, error) {
	for _, n := range r.notifications {
		if n.FarmerID == farmerID && n.Title == title && n.Message == message {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID, read bool) error {
	for _, n := range r.notifications {
		if n.ID == id {
			n.IsRead = read
		}
	}
	return nil
}

type fakeEmailService struct {
	queued []adapter.QueueHarvestReminderInput
}

func (s *fakeEmailService) QueueHarvestReminderEmail(ctx context.Context, input adapter.QueueHarvestReminderInput) error {
	s.queued = append(s.queued, input)
	return nil
}

func reminderCrop(name string, farmerID uuid.UUID, status entity.CropStatus, harvestDate time.Time) *entity.CropWithRelations {
	return &entity.CropWithRelations{
		Crop: &entity.Crop{
			ID:          uuid.New(),
			Name:        name,
			FarmerID:    farmerID,
			Season:      entity.SeasonKharif,
			Status:      status,
			Quantity:    decimal.NewFromInt(100),
			HarvestDate: harvestDate,
		},
	}
}

func TestGenerateRemindersUseCase_Execute(t *testing.T) {
	clock := fixedClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	withEmail := &entity.Farmer{ID: uuid.New(), Name: "Raj Kumar", Email: "raj@example.com"}
	withoutEmail := &entity.Farmer{ID: uuid.New(), Name: "Sita Devi"}

	newUseCase := func() (*GenerateRemindersUseCase, *fakeNotificationRepository, *fakeEmailService) {
		notifRepo := &fakeNotificationRepository{}
		emails := &fakeEmailService{}
		farmerRepo := &fakeFarmerRepository{farmers: []*entity.Farmer{withEmail, withoutEmail}}
		cropRepo := &fakeCropRepository{crops: []*entity.CropWithRelations{
			reminderCrop("Wheat", withEmail.ID, entity.CropStatusGrowing, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)),
			reminderCrop("Tomatoes", withoutEmail.ID, entity.CropStatusGrowing, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)),
			reminderCrop("Mustard", withoutEmail.ID, entity.CropStatusHarvested, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)),
			reminderCrop("Onions", withEmail.ID, entity.CropStatusGrowing, time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)),
		}}
		uc := NewGenerateRemindersUseCase(farmerRepo, cropRepo, notifRepo, emails, clock, logger)
		return uc, notifRepo, emails
	}

	t.Run("creates reminders for crops due within a week", func(t *testing.T) {
		uc, _, _ := newUseCase()
		output, err := uc.Execute(context.Background(), GenerateRemindersInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var reminders []*entity.Notification
		for _, n := range output.Created {
			if n.Type == entity.NotificationTypeHarvestReminder {
				reminders = append(reminders, n)
			}
		}
		if len(reminders) != 3 {
			t.Fatalf("expected 3 harvest reminders, got %d", len(reminders))
		}
		if reminders[0].Title != "Harvest Reminder: Wheat" {
			t.Errorf("unexpected title %q", reminders[0].Title)
		}
		if !strings.Contains(reminders[0].Message, "June 5, 2025") {
			t.Errorf("expected long-form date in message, got %q", reminders[0].Message)
		}
	})

	t.Run("status does not exempt an in-window crop", func(t *testing.T) {
		uc, notifRepo, _ := newUseCase()
		if _, err := uc.Execute(context.Background(), GenerateRemindersInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		exists, err := notifRepo.ExistsByFarmerAndTitle(context.Background(), withoutEmail.ID, "Harvest Reminder: Mustard")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected a reminder for the harvested crop due within the window")
		}
	})

	t.Run("creates one general notice per farmer", func(t *testing.T) {
		uc, _, _ := newUseCase()
		output, err := uc.Execute(context.Background(), GenerateRemindersInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		general := 0
		for _, n := range output.Created {
			if n.Type == entity.NotificationTypeGeneral {
				general++
			}
		}
		if general != 2 {
			t.Errorf("expected 2 general notices, got %d", general)
		}
	})

	t.Run("second run creates nothing new", func(t *testing.T) {
		uc, notifRepo, _ := newUseCase()
		if _, err := uc.Execute(context.Background(), GenerateRemindersInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		before := len(notifRepo.notifications)

		output, err := uc.Execute(context.Background(), GenerateRemindersInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Created) != 0 {
			t.Errorf("expected no new notifications, got %d", len(output.Created))
		}
		if output.Skipped != before {
			t.Errorf("expected %d skips, got %d", before, output.Skipped)
		}
		if len(notifRepo.notifications) != before {
			t.Errorf("notification count changed from %d to %d", before, len(notifRepo.notifications))
		}
	})

	t.Run("queues emails only for farmers with an address", func(t *testing.T) {
		uc, _, emails := newUseCase()
		output, err := uc.Execute(context.Background(), GenerateRemindersInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.QueuedEmails != 1 {
			t.Fatalf("expected 1 queued email, got %d", output.QueuedEmails)
		}
		if len(emails.queued) != 1 || emails.queued[0].FarmerEmail != "raj@example.com" {
			t.Fatalf("unexpected queued emails: %+v", emails.queued)
		}
		if emails.queued[0].HarvestDate != "June 5, 2025" {
			t.Errorf("expected formatted harvest date, got %q", emails.queued[0].HarvestDate)
		}
	})
}
