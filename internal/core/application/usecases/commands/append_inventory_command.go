package commands

import (
	"errors"

	"commerce/internal/core/domain/model/inventory"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrAppendInventoryCommandIsNotConstructed = errors.New(
	"AppendInventoryCommand must be created via NewAppendInventoryCommand constructor",
)

// AppendInventoryCommand represents a request to append an entry to the
// stock ledger: an initial seed, a manual adjustment, or a system-driven
// correction. Order-driven sales and returns do not go through this command;
// the lifecycle handlers write them directly.
type AppendInventoryCommand struct { //nolint:recvcheck //using for validation
	productID      string
	variantID      string
	txType         inventory.TransactionType
	quantityChange int
	reference      inventory.Reference
	note           string
	allowNegative  bool

	guard guard.ConstructorGuard
}

// NewAppendInventoryCommand creates a command to append a ledger entry.
func NewAppendInventoryCommand(
	productID string,
	variantID string,
	txType inventory.TransactionType,
	quantityChange int,
	reference inventory.Reference,
	note string,
	allowNegative bool,
) (AppendInventoryCommand, error) {
	command := AppendInventoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setTxType(txType),
		command.setReference(reference),
	); err != nil {
		return AppendInventoryCommand{}, err
	}

	command.variantID = variantID
	command.quantityChange = quantityChange
	command.note = note
	command.allowNegative = allowNegative
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendInventoryCommand) Validate() error {
	return c.guard.Validate(ErrAppendInventoryCommandIsNotConstructed)
}

// ProductID returns the affected product.
func (c AppendInventoryCommand) ProductID() string { return c.productID }

// VariantID returns the affected variant, empty for variant-less products.
func (c AppendInventoryCommand) VariantID() string { return c.variantID }

// TxType returns the transaction type.
func (c AppendInventoryCommand) TxType() inventory.TransactionType { return c.txType }

// QuantityChange returns the signed stock delta.
func (c AppendInventoryCommand) QuantityChange() int { return c.quantityChange }

// Reference returns the originator of the change.
func (c AppendInventoryCommand) Reference() inventory.Reference { return c.reference }

// Note returns the free-form annotation.
func (c AppendInventoryCommand) Note() string { return c.note }

// AllowNegative reports whether a non-sale entry may drive stock below zero.
func (c AppendInventoryCommand) AllowNegative() bool { return c.allowNegative }

func (c *AppendInventoryCommand) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}

	c.productID = productID
	return nil
}

func (c *AppendInventoryCommand) setTxType(txType inventory.TransactionType) error {
	if err := txType.Validate(); err != nil {
		return err
	}

	c.txType = txType
	return nil
}

func (c *AppendInventoryCommand) setReference(reference inventory.Reference) error {
	if reference.IsZero() {
		return errs.NewValueIsRequiredError("reference")
	}

	c.reference = reference
	return nil
}
