package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to turn a cart into a durable
// order. Encapsulates the cart to commit, the shipping address snapshot, and
// the payment method the order will later be authorized against.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), cartID, address, "pm-123", nil, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, pricing)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	cartID          kernel.UUID
	address         order.Address
	paymentMethodID string
	promotionCodes  []string
	note            string
	explicitNumber  order.Number

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to turn the cart into an order.
// Validates that both identifiers and the address are well formed and that a
// payment method is supplied.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	cartID kernel.UUID,
	address order.Address,
	paymentMethodID string,
	promotionCodes []string,
	note string,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCartID(cartID),
		command.setAddress(address),
		command.setPaymentMethodID(paymentMethodID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	command.promotionCodes = append([]string(nil), promotionCodes...)
	command.note = note
	return command, nil
}

// WithExplicitNumber returns a copy of the command carrying an explicitly
// supplied order number. Used by administrative imports; the numbering
// authority never overwrites it.
func (c CreateOrderCommand) WithExplicitNumber(number order.Number) (CreateOrderCommand, error) {
	if err := number.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	c.explicitNumber = number
	return c, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CartID returns the identifier of the cart being committed.
func (c CreateOrderCommand) CartID() kernel.UUID {
	return c.cartID
}

// Address returns the shipping address snapshot.
func (c CreateOrderCommand) Address() order.Address {
	return c.address
}

// PaymentMethodID returns the payment method for later authorization.
func (c CreateOrderCommand) PaymentMethodID() string {
	return c.paymentMethodID
}

// PromotionCodes returns the promotion codes to record on the order.
func (c CreateOrderCommand) PromotionCodes() []string {
	return c.promotionCodes
}

// Note returns the internal order note.
func (c CreateOrderCommand) Note() string {
	return c.note
}

// ExplicitNumber returns the administratively supplied order number, zero
// when the number should be generated.
func (c CreateOrderCommand) ExplicitNumber() order.Number {
	return c.explicitNumber
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *CreateOrderCommand) setAddress(address order.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setPaymentMethodID(paymentMethodID string) error {
	if paymentMethodID == "" {
		return errs.NewValueIsRequiredError("paymentMethodID")
	}

	c.paymentMethodID = paymentMethodID
	return nil
}
