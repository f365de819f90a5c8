package notification

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification instance
	// was not created through a factory method.
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")
)

// Notification is a persisted, typed message to a user. It is written once
// by the lifecycle side and afterwards mutated only by its owner (markRead,
// delete).
type Notification struct {
	id        kernel.UUID
	userID    string
	notifType Type
	priority  Priority
	title     string
	message   string
	actionURL string
	isRead    bool
	readAt    *time.Time
	createdAt time.Time

	isConstructed bool
}

// NewNotification creates a notification with an explicit title and message.
// Priority is derived from the type.
func NewNotification(
	id kernel.UUID,
	userID string,
	notifType Type,
	title string,
	message string,
	actionURL string,
	now time.Time,
) (*Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, errs.NewValueIsRequiredError("userID")
	}
	if err := notifType.Validate(); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}

	return &Notification{
		id:            id,
		userID:        userID,
		notifType:     notifType,
		priority:      notifType.Priority(),
		title:         title,
		message:       message,
		actionURL:     actionURL,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// NewOrderNotification creates a notification for an order lifecycle event,
// resolving the title and message from the type's template.
func NewOrderNotification(
	id kernel.UUID,
	userID string,
	notifType Type,
	orderNumber string,
	actionURL string,
	now time.Time,
) (*Notification, error) {
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}

	title, message, err := resolveOrderTemplate(notifType, orderNumber)
	if err != nil {
		return nil, err
	}
	return NewNotification(id, userID, notifType, title, message, actionURL, now)
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	userID string,
	notifType Type,
	priority Priority,
	title string,
	message string,
	actionURL string,
	isRead bool,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, userID, notifType, title, message, actionURL, createdAt)
	if err != nil {
		return nil, err
	}
	if err = priority.Validate(); err != nil {
		return nil, err
	}

	n.priority = priority
	n.isRead = isRead
	n.readAt = readAt
	return n, nil
}

// Validate ensures the Notification was created through a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// IsEqual compares two notifications by their unique identifiers.
func (n *Notification) IsEqual(other *Notification) bool {
	return other != nil && n.id.IsEqual(other.id)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID { return n.id }

// UserID returns the owning user.
func (n *Notification) UserID() string { return n.userID }

// Type returns the notification type.
func (n *Notification) Type() Type { return n.notifType }

// Priority returns the delivery priority.
func (n *Notification) Priority() Priority { return n.priority }

// Title returns the resolved title.
func (n *Notification) Title() string { return n.title }

// Message returns the resolved message body.
func (n *Notification) Message() string { return n.message }

// ActionURL returns the link the notification points at, may be empty.
func (n *Notification) ActionURL() string { return n.actionURL }

// IsRead reports whether the owner has read the notification.
func (n *Notification) IsRead() bool { return n.isRead }

// ReadAt returns when the notification was read, nil if unread.
func (n *Notification) ReadAt() *time.Time { return n.readAt }

// CreatedAt returns the creation time.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// MarkRead marks the notification as read. Idempotent: marking an already
// read notification keeps the original readAt.
func (n *Notification) MarkRead(now time.Time) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if n.isRead {
		return nil
	}

	ts := now
	n.isRead = true
	n.readAt = &ts
	return nil
}
