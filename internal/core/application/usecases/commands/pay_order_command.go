package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents a request to authorize payment for a pending
// order and, on success, move it to paid.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	paymentMethodID string

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to pay for the order.
func NewPayOrderCommand(orderID kernel.UUID, paymentMethodID string) (PayOrderCommand, error) {
	command := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setPaymentMethodID(paymentMethodID),
	); err != nil {
		return PayOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to pay for.
func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentMethodID returns the payment method to authorize against.
func (c PayOrderCommand) PaymentMethodID() string {
	return c.paymentMethodID
}

func (c *PayOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PayOrderCommand) setPaymentMethodID(paymentMethodID string) error {
	if paymentMethodID == "" {
		return errs.NewValueIsRequiredError("paymentMethodID")
	}

	c.paymentMethodID = paymentMethodID
	return nil
}
