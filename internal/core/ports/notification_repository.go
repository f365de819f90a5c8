package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification (read state).
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	// Returns an ObjectNotFoundError when no such notification exists.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// MarkAllRead marks every unread notification of the user as read.
	MarkAllRead(ctx context.Context, userID string) error

	// Delete removes a notification. This is an owner-initiated feed
	// cleanup, not a lifecycle operation.
	Delete(ctx context.Context, id kernel.UUID) error
}
