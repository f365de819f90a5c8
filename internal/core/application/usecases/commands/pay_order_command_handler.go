package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
)

// ErrPaymentDeclined is returned when the payment provider refuses to
// authorize the order total. The order stays pending.
var ErrPaymentDeclined = errors.New("payment declined")

// PayOrderCommandHandler authorizes payment for a pending order and, on
// success, drives the transition to paid with its usual side effects (stock
// deduction, order_paid notification).
//
// Authorization happens before the transition transaction: a declined or
// failed authorization leaves the order pending and writes nothing.
type PayOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
	provider   ports.PaymentProvider
	timeout    time.Duration
}

// NewPayOrderCommandHandler creates a handler for order payment.
func NewPayOrderCommandHandler(uowFactory LifecycleUoWFactory, provider ports.PaymentProvider) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		provider:   provider,
		timeout:    defaultLifecycleTimeout,
	}
}

// Handle processes the payment command and returns the paid order.
func (h PayOrderCommandHandler) Handle(ctx context.Context, command PayOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	amount, err := h.loadOrderTotal(ctx, command)
	if err != nil {
		return nil, err
	}

	authCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	authorization, err := h.provider.Authorize(authCtx, command.OrderID(), amount, command.PaymentMethodID())
	if err != nil {
		if errors.Is(authCtx.Err(), context.DeadlineExceeded) {
			return nil, errs.NewDependencyTimeoutError("payment provider", err)
		}
		return nil, errs.NewDependencyFailureError("payment provider", err)
	}
	if !authorization.Success {
		return nil, fmt.Errorf("%w: order %s", ErrPaymentDeclined, command.OrderID())
	}

	return runLifecycleTransition(ctx, h.uowFactory, command.OrderID(), h.timeout,
		func(aggregate *order.Order, now time.Time) error {
			return aggregate.TransitionTo(order.Paid, now)
		})
}

// loadOrderTotal reads the order's total amount in a short read-only
// transaction, so the authorization request never runs inside the write
// transaction.
func (h PayOrderCommandHandler) loadOrderTotal(ctx context.Context, command PayOrderCommand) (kernel.Money, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Money{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return kernel.Money{}, err
	}

	return aggregate.Totals().TotalAmount(), nil
}
