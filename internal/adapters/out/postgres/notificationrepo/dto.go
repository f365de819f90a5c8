// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence.
package notificationrepo

import (
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents one persisted notification row.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"index"`
	Type      string    `gorm:"size:32"`
	Priority  string    `gorm:"size:16"`
	Title     string
	Message   string
	ActionURL string
	IsRead    bool `gorm:"index"`
	ReadAt    *time.Time
	CreatedAt time.Time
}

// TableName specifies the database table name for notification rows.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        aggregate.ID().Bytes(),
		UserID:    aggregate.UserID(),
		Type:      aggregate.Type().String(),
		Priority:  aggregate.Priority().String(),
		Title:     aggregate.Title(),
		Message:   aggregate.Message(),
		ActionURL: aggregate.ActionURL(),
		IsRead:    aggregate.IsRead(),
		ReadAt:    aggregate.ReadAt(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database row to a notification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	notifType, err := notification.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	priority, err := notification.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		dto.UserID,
		notifType,
		priority,
		dto.Title,
		dto.Message,
		dto.ActionURL,
		dto.IsRead,
		dto.ReadAt,
		dto.CreatedAt,
	)
}
