package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand represents a request to empty a cart.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	cartID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to empty the cart.
func NewClearCartCommand(cartID kernel.UUID) (ClearCartCommand, error) {
	command := ClearCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCartID(cartID); err != nil {
		return ClearCartCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// CartID returns the cart to empty.
func (c ClearCartCommand) CartID() kernel.UUID { return c.cartID }

func (c *ClearCartCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}
