package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrDeleteNotificationCommandIsNotConstructed = errors.New(
	"DeleteNotificationCommand must be created via NewDeleteNotificationCommand constructor",
)

// DeleteNotificationCommand represents a request by a user to remove a
// notification from their feed.
type DeleteNotificationCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	userID         string

	guard guard.ConstructorGuard
}

// NewDeleteNotificationCommand creates a command to delete the notification
// on behalf of the user.
func NewDeleteNotificationCommand(notificationID kernel.UUID, userID string) (DeleteNotificationCommand, error) {
	command := DeleteNotificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setNotificationID(notificationID),
		command.setUserID(userID),
	); err != nil {
		return DeleteNotificationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteNotificationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteNotificationCommandIsNotConstructed)
}

// NotificationID returns the notification to delete.
func (c DeleteNotificationCommand) NotificationID() kernel.UUID { return c.notificationID }

// UserID returns the acting user.
func (c DeleteNotificationCommand) UserID() string { return c.userID }

func (c *DeleteNotificationCommand) setNotificationID(notificationID kernel.UUID) error {
	if err := notificationID.Validate(); err != nil {
		return err
	}

	c.notificationID = notificationID
	return nil
}

func (c *DeleteNotificationCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userID")
	}

	c.userID = userID
	return nil
}
