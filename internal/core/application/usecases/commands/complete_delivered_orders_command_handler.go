package commands

import (
	"context"
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// CompleteDeliveredOrdersCommandHandler finishes the lifecycle of orders the
// buyer never confirmed: everything delivered before the command's cutoff is
// transitioned to completed, with the usual notification side effect.
//
// Example:
//
//	handler := NewCompleteDeliveredOrdersCommandHandler(uowFactory)
//	cmd, err := commands.NewCompleteDeliveredOrdersCommand(time.Now().AddDate(0, 0, -7))
//	if err != nil {
//	    return err
//	}
//
//	// This would typically be called periodically by a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("auto-complete failed: %v", err)
//	}
type CompleteDeliveredOrdersCommandHandler struct {
	uowFactory LifecycleUoWFactory
	timeout    time.Duration
}

// NewCompleteDeliveredOrdersCommandHandler creates a handler for the
// auto-complete batch operation.
func NewCompleteDeliveredOrdersCommandHandler(uowFactory LifecycleUoWFactory) CompleteDeliveredOrdersCommandHandler {
	return CompleteDeliveredOrdersCommandHandler{
		uowFactory: uowFactory,
		timeout:    defaultLifecycleTimeout,
	}
}

// Handle completes every order delivered before the cutoff. Each order runs
// in its own transaction so one conflicting write does not roll back the
// rest; failures are joined and reported after the whole batch ran.
func (h CompleteDeliveredOrdersCommandHandler) Handle(ctx context.Context, command CompleteDeliveredOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	ids, err := h.collectDeliveredOrders(ctx, command.Cutoff())
	if err != nil {
		return err
	}

	var batchErr error
	for _, id := range ids {
		_, err = runLifecycleTransition(ctx, h.uowFactory, id, h.timeout,
			func(aggregate *order.Order, now time.Time) error {
				return aggregate.TransitionTo(order.Completed, now)
			})
		if err != nil {
			batchErr = errors.Join(batchErr, err)
		}
	}

	return batchErr
}

func (h CompleteDeliveredOrdersCommandHandler) collectDeliveredOrders(
	ctx context.Context,
	cutoff time.Time,
) ([]kernel.UUID, error) {
	opCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	uow := h.uowFactory.Create()
	if err := uow.Begin(opCtx); err != nil {
		return nil, classifyLifecycleErr(opCtx, err)
	}

	defer func() {
		_ = uow.Rollback(opCtx)
	}()

	orders, err := uow.OrderRepository().GetAllInDeliveredStatusBefore(opCtx, cutoff)
	if err != nil {
		return nil, classifyLifecycleErr(opCtx, err)
	}

	ids := make([]kernel.UUID, 0, len(orders))
	for _, aggregate := range orders {
		ids = append(ids, aggregate.ID())
	}
	return ids, nil
}
