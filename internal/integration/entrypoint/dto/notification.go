// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/farm-tracker/backend/internal/application/usecase/notification"
	"github.com/farm-tracker/backend/internal/domain/entity"
)

// NotificationResponse represents a single notification in API responses.
type NotificationResponse struct {
	ID        string    `json:"id"`
	FarmerID  string    `json:"farmer_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListResponse represents the response for listing notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

// GenerateRemindersResponse represents the result of reminder generation.
type GenerateRemindersResponse struct {
	Created      []NotificationResponse `json:"created"`
	CreatedCount int                    `json:"created_count"`
	Skipped      int                    `json:"skipped"`
	QueuedEmails int                    `json:"queued_emails"`
}

// ToNotificationResponse converts a Notification entity to a response DTO.
func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		FarmerID:  n.FarmerID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationListResponse converts the listing output to a response DTO.
func ToNotificationListResponse(output *notification.ListNotificationsOutput) NotificationListResponse {
	responses := make([]NotificationResponse, len(output.Notifications))
	for i, n := range output.Notifications {
		responses[i] = ToNotificationResponse(n)
	}
	return NotificationListResponse{
		Notifications: responses,
		UnreadCount:   output.UnreadCount,
	}
}

// ToGenerateRemindersResponse converts the generation output to a response DTO.
func ToGenerateRemindersResponse(output *notification.GenerateRemindersOutput) GenerateRemindersResponse {
	created := make([]NotificationResponse, len(output.Created))
	for i, n := range output.Created {
		created[i] = ToNotificationResponse(n)
	}
	return GenerateRemindersResponse{
		Created:      created,
		CreatedCount: len(created),
		Skipped:      output.Skipped,
		QueuedEmails: output.QueuedEmails,
	}
}
