package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a request to drop a line item from the
// cart entirely, regardless of its quantity.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	cartID    kernel.UUID
	productID string
	variantID string

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove the line item for the
// (product, variant) key.
func NewRemoveCartItemCommand(cartID kernel.UUID, productID, variantID string) (RemoveCartItemCommand, error) {
	command := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCartID(cartID),
		command.setProductID(productID),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	command.variantID = variantID
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// CartID returns the cart to mutate.
func (c RemoveCartItemCommand) CartID() kernel.UUID { return c.cartID }

// ProductID returns the product key of the line item.
func (c RemoveCartItemCommand) ProductID() string { return c.productID }

// VariantID returns the variant key of the line item.
func (c RemoveCartItemCommand) VariantID() string { return c.variantID }

func (c *RemoveCartItemCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *RemoveCartItemCommand) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}

	c.productID = productID
	return nil
}
