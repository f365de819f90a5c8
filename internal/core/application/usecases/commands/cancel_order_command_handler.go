package commands

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels an order. Sugar over the transition
// workflow: the move to cancelled follows the same state machine rules and
// side effects (stock restoration when the order was already paid, the
// order_cancelled notification), plus the reason lands in the order's note.
type CancelOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
	timeout    time.Duration
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory LifecycleUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		timeout:    defaultLifecycleTimeout,
	}
}

// Handle processes the cancellation command and returns the updated order.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return runLifecycleTransition(ctx, h.uowFactory, command.OrderID(), h.timeout,
		func(aggregate *order.Order, now time.Time) error {
			return aggregate.Cancel(command.Reason(), now)
		})
}
