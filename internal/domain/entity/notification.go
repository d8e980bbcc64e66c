// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType represents the kind of notification sent to a farmer.
type NotificationType string

const (
	NotificationTypeHarvestReminder NotificationType = "harvest_reminder"
	NotificationTypePriceAlert      NotificationType = "price_alert"
	NotificationTypeWeatherAlert    NotificationType = "weather_alert"
	NotificationTypeGeneral         NotificationType = "general"
)

// Notification represents a message delivered to a farmer.
type Notification struct {
	ID        uuid.UUID
	FarmerID  uuid.UUID
	Title     string
	Message   string
	Type      NotificationType
	IsRead    bool
	CreatedAt time.Time
}

// NewNotification creates a new unread Notification entity.
func NewNotification(farmerID uuid.UUID, title, message string, notificationType NotificationType) *Notification {
	return &Notification{
		ID:        uuid.New(),
		FarmerID:  farmerID,
		Title:     title,
		Message:   message,
		Type:      notificationType,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}
}
