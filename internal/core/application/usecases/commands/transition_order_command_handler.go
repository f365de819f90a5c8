package commands

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/order"
)

// TransitionOrderCommandHandler drives the order state machine. On every
// legal transition it persists the new status and timestamp under optimistic
// concurrency control and performs the side effects of the target status:
// reaching paid deducts stock through the ledger, a cancellation after
// payment (or a completed refund) restores it, and every status with a
// user-facing meaning records a notification.
//
// A stale-version write is retried with a fresh load a bounded number of
// times before the conflict surfaces to the caller; an illegal move fails
// with an InvalidTransitionError and leaves the order untouched.
type TransitionOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
	timeout    time.Duration
}

// NewTransitionOrderCommandHandler creates a handler for status transitions.
func NewTransitionOrderCommandHandler(uowFactory LifecycleUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		timeout:    defaultLifecycleTimeout,
	}
}

// Handle processes the transition command and returns the updated order.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, command TransitionOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return runLifecycleTransition(ctx, h.uowFactory, command.OrderID(), h.timeout,
		func(aggregate *order.Order, now time.Time) error {
			return aggregate.TransitionTo(command.NewStatus(), now)
		})
}
