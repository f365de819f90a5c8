package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

// MarkNotificationReadCommand represents a request by a user to mark one of
// their notifications as read.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	userID         string

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a command to mark the notification
// read on behalf of the user.
func NewMarkNotificationReadCommand(notificationID kernel.UUID, userID string) (MarkNotificationReadCommand, error) {
	command := MarkNotificationReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setNotificationID(notificationID),
		command.setUserID(userID),
	); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

// NotificationID returns the notification to mark read.
func (c MarkNotificationReadCommand) NotificationID() kernel.UUID { return c.notificationID }

// UserID returns the acting user.
func (c MarkNotificationReadCommand) UserID() string { return c.userID }

func (c *MarkNotificationReadCommand) setNotificationID(notificationID kernel.UUID) error {
	if err := notificationID.Validate(); err != nil {
		return err
	}

	c.notificationID = notificationID
	return nil
}

func (c *MarkNotificationReadCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userID")
	}

	c.userID = userID
	return nil
}
