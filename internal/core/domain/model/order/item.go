package order

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an immutable snapshot of a cart line item taken at order creation
// time. It freezes the product name, SKU, image, and unit price so that later
// catalog changes never alter what the customer agreed to pay.
//
// The only mutation Items permit after creation is the shipped/returned
// flags, set by the Order aggregate when the lifecycle reaches the matching
// statuses.
type Item struct {
	id             kernel.UUID
	orderID        kernel.UUID
	productID      string
	variantID      string
	productName    string
	productSKU     string
	productImage   string
	quantity       int
	unitPrice      kernel.Money
	discountAmount kernel.Money
	finalAmount    kernel.Money
	isShipped      bool
	isReturned     bool

	isConstructed bool
}

// NewItem creates an order item snapshot. Quantity must be a positive
// integer and the unit price non-negative; the final amount is derived as
// unitPrice x quantity - discount and never recomputed afterwards.
func NewItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productID string,
	variantID string,
	productName string,
	productSKU string,
	productImage string,
	quantity int,
	unitPrice kernel.Money,
	discountAmount kernel.Money,
) (*Item, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
	); err != nil {
		return nil, err
	}
	if productID == "" {
		return nil, errs.NewValueIsRequiredError("productID")
	}
	if quantity < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not a positive integer", quantity),
		)
	}
	if unitPrice.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%s is negative", unitPrice),
		)
	}
	if discountAmount.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"discountAmount",
			fmt.Errorf("%s is negative", discountAmount),
		)
	}

	return &Item{
		id:             id,
		orderID:        orderID,
		productID:      productID,
		variantID:      variantID,
		productName:    productName,
		productSKU:     productSKU,
		productImage:   productImage,
		quantity:       quantity,
		unitPrice:      unitPrice,
		discountAmount: discountAmount,
		finalAmount:    unitPrice.MulInt(quantity).Sub(discountAmount),
		isConstructed:  true,
	}, nil
}

// RestoreItem reconstructs an item from persistence, including the
// shipped/returned flags. It bypasses derivation: the stored final amount is
// trusted as written at creation time.
func RestoreItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productID string,
	variantID string,
	productName string,
	productSKU string,
	productImage string,
	quantity int,
	unitPrice kernel.Money,
	discountAmount kernel.Money,
	finalAmount kernel.Money,
	isShipped bool,
	isReturned bool,
) (*Item, error) {
	item, err := NewItem(id, orderID, productID, variantID, productName, productSKU, productImage,
		quantity, unitPrice, discountAmount)
	if err != nil {
		return nil, err
	}

	item.finalAmount = finalAmount
	item.isShipped = isShipped
	item.isReturned = isReturned
	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// OrderID returns the identifier of the owning order.
func (i *Item) OrderID() kernel.UUID { return i.orderID }

// ProductID returns the snapshot product identifier.
func (i *Item) ProductID() string { return i.productID }

// VariantID returns the snapshot variant identifier, empty when the product
// has no variants.
func (i *Item) VariantID() string { return i.variantID }

// ProductName returns the product name as displayed at purchase time.
func (i *Item) ProductName() string { return i.productName }

// ProductSKU returns the SKU snapshot.
func (i *Item) ProductSKU() string { return i.productSKU }

// ProductImage returns the product image reference snapshot.
func (i *Item) ProductImage() string { return i.productImage }

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int { return i.quantity }

// UnitPrice returns the price snapshot per unit.
func (i *Item) UnitPrice() kernel.Money { return i.unitPrice }

// DiscountAmount returns the discount applied to this line.
func (i *Item) DiscountAmount() kernel.Money { return i.discountAmount }

// FinalAmount returns unitPrice x quantity - discount as computed at creation.
func (i *Item) FinalAmount() kernel.Money { return i.finalAmount }

// IsShipped reports whether the line left the warehouse.
func (i *Item) IsShipped() bool { return i.isShipped }

// IsReturned reports whether the line's stock was restored after a
// post-payment cancellation or refund.
func (i *Item) IsReturned() bool { return i.isReturned }

func (i *Item) markShipped() { i.isShipped = true }

func (i *Item) markReturned() { i.isReturned = true }
