package commands

import (
	"context"
	"time"

	"commerce/internal/pkg/errs"
)

// DeleteNotificationCommandHandler removes a notification from its owner's
// feed. Like read marking, a foreign notification is reported as not found.
type DeleteNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
	timeout    time.Duration
}

// NewDeleteNotificationCommandHandler creates a handler for deletions.
func NewDeleteNotificationCommandHandler(uowFactory NotificationUoWFactory) DeleteNotificationCommandHandler {
	return DeleteNotificationCommandHandler{
		uowFactory: uowFactory,
		timeout:    defaultCommandTimeout,
	}
}

// Handle processes the command.
func (h DeleteNotificationCommandHandler) Handle(ctx context.Context, command DeleteNotificationCommand) error {
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

	if err = notificationRepo.Delete(opCtx, command.NotificationID()); err != nil {
		return classifyDependencyErr(opCtx, "notification store", err)
	}

	if err = uow.Commit(opCtx); err != nil {
		return classifyDependencyErr(opCtx, "notification store", err)
	}

	return nil
}
