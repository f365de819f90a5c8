package commands

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand represents a request to put a product into the owner's
// cart, snapshotting the product details and unit price at add time.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	ownerID      string
	productID    string
	variantID    string
	productName  string
	productSKU   string
	productImage string
	quantity     int
	unitPrice    kernel.Money

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add quantity units of the
// product to the owner's cart at the given price snapshot.
func NewAddCartItemCommand(
	ownerID string,
	productID string,
	variantID string,
	productName string,
	productSKU string,
	productImage string,
	quantity int,
	unitPrice kernel.Money,
) (AddCartItemCommand, error) {
	command := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwnerID(ownerID),
		command.setProductID(productID),
		command.setProductName(productName),
		command.setQuantity(quantity),
		command.setUnitPrice(unitPrice),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	command.variantID = variantID
	command.productSKU = productSKU
	command.productImage = productImage
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// OwnerID returns the cart owner.
func (c AddCartItemCommand) OwnerID() string { return c.ownerID }

// ProductID returns the product to add.
func (c AddCartItemCommand) ProductID() string { return c.productID }

// VariantID returns the variant to add, empty for variant-less products.
func (c AddCartItemCommand) VariantID() string { return c.variantID }

// ProductName returns the product name snapshot.
func (c AddCartItemCommand) ProductName() string { return c.productName }

// ProductSKU returns the SKU snapshot.
func (c AddCartItemCommand) ProductSKU() string { return c.productSKU }

// ProductImage returns the image URL snapshot.
func (c AddCartItemCommand) ProductImage() string { return c.productImage }

// Quantity returns the number of units to add.
func (c AddCartItemCommand) Quantity() int { return c.quantity }

// UnitPrice returns the price snapshot.
func (c AddCartItemCommand) UnitPrice() kernel.Money { return c.unitPrice }

func (c *AddCartItemCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return errs.NewValueIsRequiredError("ownerID")
	}

	c.ownerID = ownerID
	return nil
}

func (c *AddCartItemCommand) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}

	c.productID = productID
	return nil
}

func (c *AddCartItemCommand) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}

	c.productName = productName
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not a positive quantity", quantity),
		)
	}

	c.quantity = quantity
	return nil
}

func (c *AddCartItemCommand) setUnitPrice(unitPrice kernel.Money) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%s is negative", unitPrice),
		)
	}

	c.unitPrice = unitPrice
	return nil
}
