package commands

import (
	"context"
	"time"

	"commerce/internal/pkg/errs"
)

// MarkNotificationReadCommandHandler marks a single notification as read.
// Only the owning user may do so; a foreign notification is reported as not
// found rather than forbidden, so the operation leaks no other user's data.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
	timeout    time.Duration
}

// NewMarkNotificationReadCommandHandler creates a handler for read marking.
func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
		timeout:    defaultCommandTimeout,
	}
}

// Handle processes the command.
func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, command MarkNotificationReadCommand) error {
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

	notificationRepo := uow.NotificationRepository()
	n, err := notificationRepo.Get(opCtx, command.NotificationID())
	if err != nil {
		return classifyDependencyErr(opCtx, "notification store", err)
	}
	if n.UserID() != command.UserID() {
		return errs.NewObjectNotFoundError("notificationID", command.NotificationID())
	}

	if err = n.MarkRead(time.Now()); err != nil {
		return err
	}

	if err = notificationRepo.Update(opCtx, n); err != nil {
		return classifyDependencyErr(opCtx, "notification store", err)
	}

	if err = uow.Commit(opCtx); err != nil {
		return classifyDependencyErr(opCtx, "notification store", err)
	}

	return nil
}
