// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/domain/entity"
)

// NotificationModel represents the notifications table in the database.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(200);not null;index"`
	Message   string    `gorm:"type:text;not null"`
	Type      string    `gorm:"type:varchar(20);not null;default:'general'"`
	IsRead    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;index"`

	// Relationships (not loaded by default, use Preload)
	Farmer *FarmerModel `gorm:"foreignKey:FarmerID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the NotificationModel.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToEntity converts a NotificationModel to a domain Notification entity.
func (m *NotificationModel) ToEntity() *entity.Notification {
	return &entity.Notification{
		ID:        m.ID,
		FarmerID:  m.FarmerID,
		Title:     m.Title,
		Message:   m.Message,
		Type:      entity.NotificationType(m.Type),
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

// NotificationFromEntity creates a NotificationModel from a domain entity.
func NotificationFromEntity(notification *entity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:        notification.ID,
		FarmerID:  notification.FarmerID,
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      string(notification.Type),
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}
