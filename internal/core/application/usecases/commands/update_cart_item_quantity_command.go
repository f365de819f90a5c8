package commands

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrUpdateCartItemQuantityCommandIsNotConstructed = errors.New(
	"UpdateCartItemQuantityCommand must be created via NewUpdateCartItemQuantityCommand constructor",
)

// UpdateCartItemQuantityCommand represents a request to change the quantity
// of a line item already in the cart. The price snapshot stays unchanged.
type UpdateCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	cartID    kernel.UUID
	productID string
	variantID string
	quantity  int

	guard guard.ConstructorGuard
}

// NewUpdateCartItemQuantityCommand creates a command to set the line item's
// quantity. The quantity must be positive; whether it fits the available
// stock is decided at handling time.
func NewUpdateCartItemQuantityCommand(
	cartID kernel.UUID,
	productID string,
	variantID string,
	quantity int,
) (UpdateCartItemQuantityCommand, error) {
	command := UpdateCartItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCartID(cartID),
		command.setProductID(productID),
		command.setQuantity(quantity),
	); err != nil {
		return UpdateCartItemQuantityCommand{}, err
	}

	command.variantID = variantID
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemQuantityCommandIsNotConstructed)
}

// CartID returns the cart to mutate.
func (c UpdateCartItemQuantityCommand) CartID() kernel.UUID { return c.cartID }

// ProductID returns the product key of the line item.
func (c UpdateCartItemQuantityCommand) ProductID() string { return c.productID }

// VariantID returns the variant key of the line item.
func (c UpdateCartItemQuantityCommand) VariantID() string { return c.variantID }

// Quantity returns the new quantity.
func (c UpdateCartItemQuantityCommand) Quantity() int { return c.quantity }

func (c *UpdateCartItemQuantityCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *UpdateCartItemQuantityCommand) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}

	c.productID = productID
	return nil
}

func (c *UpdateCartItemQuantityCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not a positive quantity", quantity),
		)
	}

	c.quantity = quantity
	return nil
}
