package cart

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through the NewCart factory method.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
)

// Cart is the aggregate root for a shopper's pending selection. Items keep
// their insertion order; mutating operations bump the version used for
// optimistic concurrency on the write side.
type Cart struct {
	id      kernel.UUID
	ownerID string
	items   []*LineItem
	version int

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewCart creates an empty cart for the given owner.
func NewCart(id kernel.UUID, ownerID string, now time.Time) (*Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if ownerID == "" {
		return nil, errs.NewValueIsRequiredError("ownerID")
	}

	return &Cart{
		id:            id,
		ownerID:       ownerID,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart from persistence.
func RestoreCart(
	id kernel.UUID,
	ownerID string,
	items []*LineItem,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Cart, error) {
	c, err := NewCart(id, ownerID, createdAt)
	if err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidError("version")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	c.items = items
	c.version = version
	c.updatedAt = updatedAt
	return c, nil
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// IsEqual compares two carts by their unique identifiers.
func (c *Cart) IsEqual(other *Cart) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID { return c.id }

// OwnerID returns the identifier of the user or anonymous session owning the
// cart.
func (c *Cart) OwnerID() string { return c.ownerID }

// Items returns the line items in insertion order.
func (c *Cart) Items() []*LineItem { return c.items }

// Version returns the optimistic concurrency version.
func (c *Cart) Version() int { return c.version }

// CreatedAt returns the creation time.
func (c *Cart) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the time of the last mutation.
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// TotalQuantity returns the sum of all line item quantities.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.items {
		total += item.quantity
	}
	return total
}

// Subtotal returns the sum of all line item subtotals.
func (c *Cart) Subtotal() kernel.Money {
	subtotal := kernel.ZeroMoney()
	for _, item := range c.items {
		subtotal = subtotal.Add(item.Subtotal())
	}
	return subtotal
}

// FindItem returns the line item for the (product, variant) key, or an
// ObjectNotFoundError when the cart has no such item.
func (c *Cart) FindItem(productID, variantID string) (*LineItem, error) {
	for _, item := range c.items {
		if item.matchesKey(productID, variantID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("lineItem", productID+"/"+variantID)
}

// AddItem adds the line item to the cart. When an item with the same
// (product, variant) key already exists its quantity is increased and the
// price snapshot is refreshed to the newly supplied one; this re-add is the
// only way an existing snapshot ever changes.
func (c *Cart) AddItem(item *LineItem, now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}

	for _, existing := range c.items {
		if existing.matchesKey(item.productID, item.variantID) {
			existing.quantity += item.quantity
			existing.unitPrice = item.unitPrice
			c.touch(now)
			return nil
		}
	}

	c.items = append(c.items, item)
	c.touch(now)
	return nil
}

// UpdateItemQuantity sets the quantity of an existing line item. The price
// snapshot is kept unchanged.
func (c *Cart) UpdateItemQuantity(productID, variantID string, quantity int, now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}

	item, err := c.FindItem(productID, variantID)
	if err != nil {
		return err
	}
	if err := item.setQuantity(quantity); err != nil {
		return err
	}

	c.touch(now)
	return nil
}

// RemoveItem deletes the line item for the (product, variant) key.
func (c *Cart) RemoveItem(productID, variantID string, now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}

	for i, item := range c.items {
		if item.matchesKey(productID, variantID) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.touch(now)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("lineItem", productID+"/"+variantID)
}

// Clear removes every line item. Called once the cart's content has been
// committed into an order.
func (c *Cart) Clear(now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.items = nil
	c.touch(now)
	return nil
}

func (c *Cart) touch(now time.Time) {
	c.updatedAt = now
	c.version++
}
