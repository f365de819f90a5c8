package cart

import (
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// LineItem is a single product position in a cart. The unit price is a
// snapshot taken when the item was added; quantity updates never change it.
type LineItem struct {
	productID    string
	variantID    string
	productName  string
	productSKU   string
	productImage string
	quantity     int
	unitPrice    kernel.Money

	isConstructed bool
}

// NewLineItem creates a line item with a fresh price snapshot.
func NewLineItem(
	productID string,
	variantID string,
	productName string,
	productSKU string,
	productImage string,
	quantity int,
	unitPrice kernel.Money,
) (*LineItem, error) {
	if productID == "" {
		return nil, errs.NewValueIsRequiredError("productID")
	}
	if productName == "" {
		return nil, errs.NewValueIsRequiredError("productName")
	}
	if quantity < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not a positive quantity", quantity),
		)
	}
	if unitPrice.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%s is negative", unitPrice),
		)
	}

	return &LineItem{
		productID:     productID,
		variantID:     variantID,
		productName:   productName,
		productSKU:    productSKU,
		productImage:  productImage,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the line item was created through NewLineItem.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return errs.NewValueIsRequiredError("lineItem")
	}
	return nil
}

// ProductID returns the product identifier.
func (li *LineItem) ProductID() string { return li.productID }

// VariantID returns the variant identifier, empty for variant-less products.
func (li *LineItem) VariantID() string { return li.variantID }

// ProductName returns the product name snapshot.
func (li *LineItem) ProductName() string { return li.productName }

// ProductSKU returns the SKU snapshot.
func (li *LineItem) ProductSKU() string { return li.productSKU }

// ProductImage returns the image URL snapshot.
func (li *LineItem) ProductImage() string { return li.productImage }

// Quantity returns the ordered quantity.
func (li *LineItem) Quantity() int { return li.quantity }

// UnitPrice returns the price snapshot taken when the item was added.
func (li *LineItem) UnitPrice() kernel.Money { return li.unitPrice }

// Subtotal returns unitPrice multiplied by quantity.
func (li *LineItem) Subtotal() kernel.Money { return li.unitPrice.MulInt(li.quantity) }

// matchesKey reports whether the line item is for the given (product, variant).
func (li *LineItem) matchesKey(productID, variantID string) bool {
	return li.productID == productID && li.variantID == variantID
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not a positive quantity", quantity),
		)
	}
	li.quantity = quantity
	return nil
}
