package commands

import (
	"context"
	"time"
)

// MarkAllNotificationsReadCommandHandler marks every unread notification of
// a user as read in one write.
type MarkAllNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
	timeout    time.Duration
}

// NewMarkAllNotificationsReadCommandHandler creates a handler for bulk read
// marking.
func NewMarkAllNotificationsReadCommandHandler(uowFactory NotificationUoWFactory) MarkAllNotificationsReadCommandHandler {
	return MarkAllNotificationsReadCommandHandler{
		uowFactory: uowFactory,
		timeout:    defaultCommandTimeout,
	}
}

// Handle processes the command.
func (h MarkAllNotificationsReadCommandHandler) Handle(ctx context.Context, command MarkAllNotificationsReadCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	uow := h.uowFactory.Create()
	if err := uow.Begin(opCtx); err != nil {
		return classifyDependencyErr(opCtx, "notification store", err)
	}

	defer func() {
		_ = uow.Rollback(opCtx)
	}()

	if err := uow.NotificationRepository().MarkAllRead(opCtx, command.UserID()); err != nil {
		return classifyDependencyErr(opCtx, "notification store", err)
	}

	if err := uow.Commit(opCtx); err != nil {
		return classifyDependencyErr(opCtx, "notification store", err)
	}

	return nil
}
