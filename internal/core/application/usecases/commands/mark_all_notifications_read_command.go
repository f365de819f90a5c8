package commands

import (
	"errors"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
)

// MarkAllNotificationsReadCommand represents a request by a user to mark
// their whole notification feed as read.
type MarkAllNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	userID string

	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a command for the user.
func NewMarkAllNotificationsReadCommand(userID string) (MarkAllNotificationsReadCommand, error) {
	command := MarkAllNotificationsReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setUserID(userID); err != nil {
		return MarkAllNotificationsReadCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

// UserID returns the acting user.
func (c MarkAllNotificationsReadCommand) UserID() string { return c.userID }

func (c *MarkAllNotificationsReadCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userID")
	}

	c.userID = userID
	return nil
}
