package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
	"github.com/farm-tracker/backend/internal/integration/email/templates"
)

// fakeQueue is an in-memory adapter.EmailQueueRepository.
type fakeQueue struct {
	jobs map[uuid.UUID]*entity.EmailJob
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{jobs: make(map[uuid.UUID]*entity.EmailJob)}
}

func (q *fakeQueue) Create(ctx context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *fakeQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	now := time.Now().UTC()
	var out []*entity.EmailJob
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && !job.ScheduledAt.After(now) {
			out = append(out, job)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (q *fakeQueue) Update(ctx context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *fakeQueue) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	return 0, nil
}

func newTestWorker(t *testing.T, queue *fakeQueue, sender *MockEmailSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func harvestReminderInput(name, email, crop, date string) adapter.QueueHarvestReminderInput {
	return adapter.QueueHarvestReminderInput{
		FarmerName:  name,
		FarmerEmail: email,
		CropName:    crop,
		HarvestDate: date,
	}
}

func TestWorker_ProcessNow(t *testing.T) {
	ctx := context.Background()

	t.Run("sends a queued harvest reminder", func(t *testing.T) {
		queue := newFakeQueue()
		sender := NewMockEmailSender()
		worker := newTestWorker(t, queue, sender)

		service := NewService(queue)
		err := service.QueueHarvestReminderEmail(ctx, harvestReminderInput("Raj Kumar", "raj@example.com", "Wheat", "June 5, 2025"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker.ProcessNow(ctx)

		if len(sender.SentEmails) != 1 {
			t.Fatalf("expected 1 sent email, got %d", len(sender.SentEmails))
		}
		sent := sender.SentEmails[0]
		if sent.To != "raj@example.com" {
			t.Errorf("unexpected recipient: %s", sent.To)
		}
		if !strings.Contains(sent.Subject, "Harvest Reminder: Wheat") {
			t.Errorf("unexpected subject: %s", sent.Subject)
		}
		if !strings.Contains(sent.HTML, "Wheat") || !strings.Contains(sent.HTML, "June 5, 2025") {
			t.Error("expected crop name and date in rendered HTML")
		}
		if !strings.Contains(sent.Text, "Raj Kumar") {
			t.Error("expected farmer name in rendered text")
		}

		for _, job := range queue.jobs {
			if job.Status != entity.EmailStatusSent {
				t.Errorf("expected job to be sent, got %s", job.Status)
			}
		}
	})

	t.Run("temporary failure reschedules the job", func(t *testing.T) {
		queue := newFakeQueue()
		sender := NewMockEmailSender()
		sender.SetFailure(errors.New("rate limited"), false)
		worker := newTestWorker(t, queue, sender)

		service := NewService(queue)
		if err := service.QueueHarvestReminderEmail(ctx, harvestReminderInput("Sita Devi", "sita@example.com", "Rice", "October 1, 2025")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker.ProcessNow(ctx)

		for _, job := range queue.jobs {
			if job.Status != entity.EmailStatusPending {
				t.Errorf("expected job to stay pending for retry, got %s", job.Status)
			}
			if job.Attempts != 1 {
				t.Errorf("expected 1 attempt, got %d", job.Attempts)
			}
		}
	})

	t.Run("permanent failure marks the job failed", func(t *testing.T) {
		queue := newFakeQueue()
		sender := NewMockEmailSender()
		sender.SetFailure(errors.New("422 validation error"), true)
		worker := newTestWorker(t, queue, sender)

		service := NewService(queue)
		if err := service.QueueHarvestReminderEmail(ctx, harvestReminderInput("Arjun Singh", "bad@example.com", "Cotton", "November 1, 2025")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker.ProcessNow(ctx)

		for _, job := range queue.jobs {
			if job.Status != entity.EmailStatusFailed {
				t.Errorf("expected job to be failed, got %s", job.Status)
			}
		}
	})
}
