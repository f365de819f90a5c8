package order

import (
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from creation through payment, fulfilment,
// and the terminal statuses.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and order number
//   - Must have at least one item; items are immutable snapshots
//   - Total amount always reconciles with subtotal, shipping, tax, and discount
//   - Status transitions follow the state machine defined on Status
//   - Each status reached stamps its timestamp exactly once
//   - Every successful transition increments the version used for optimistic
//     concurrency control; a persisted write with a stale version is rejected
//   - Orders are never deleted; cancellation and refund are terminal statuses
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	id             kernel.UUID
	number         Number
	ownerID        string
	status         Status
	items          []*Item
	totals         Totals
	address        Address
	promotionCodes []string
	note           string
	version        int

	createdAt   time.Time
	updatedAt   time.Time
	paidAt      *time.Time
	confirmedAt *time.Time
	shippedAt   *time.Time
	deliveredAt *time.Time
	completedAt *time.Time
	cancelledAt *time.Time
	refundedAt  *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in pending status from a priced cart snapshot.
// This is the only way to create a valid Order, ensuring all business
// invariants hold from the start.
//
// The order number must already have been issued (or supplied explicitly for
// administrative imports); NewOrder never generates one itself.
//
// Example:
//
//	number, _ := order.NewNumber(now, 1)
//	o, err := order.NewOrder(kernel.NewUUID(), number, "user-1", items, totals, addr, nil, "", now)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	number Number,
	ownerID string,
	items []*Item,
	totals Totals,
	address Address,
	promotionCodes []string,
	note string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setOwnerID(ownerID),
		o.setItems(items),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}

	o.totals = totals
	o.promotionCodes = append([]string(nil), promotionCodes...)
	o.note = note
	return o, nil
}

// RestoreOrderParams carries the persisted state needed to rehydrate an
// Order aggregate.
type RestoreOrderParams struct {
	ID             kernel.UUID
	Number         Number
	OwnerID        string
	Status         Status
	Items          []*Item
	Totals         Totals
	Address        Address
	PromotionCodes []string
	Note           string
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
	PaidAt         *time.Time
	ConfirmedAt    *time.Time
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
	CompletedAt    *time.Time
	CancelledAt    *time.Time
	RefundedAt     *time.Time
}

// RestoreOrder reconstructs an Order from persistence. Used exclusively by
// repository implementations; validation still applies so corrupt rows are
// rejected at the boundary.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o, err := NewOrder(
		params.ID, params.Number, params.OwnerID, params.Items,
		params.Totals, params.Address, params.PromotionCodes, params.Note,
		params.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = params.Status.Validate(); err != nil {
		return nil, err
	}
	if params.Version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version",
			fmt.Errorf("%d is not a positive version", params.Version),
		)
	}

	o.status = params.Status
	o.version = params.Version
	o.updatedAt = params.UpdatedAt
	o.paidAt = params.PaidAt
	o.confirmedAt = params.ConfirmedAt
	o.shippedAt = params.ShippedAt
	o.deliveredAt = params.DeliveredAt
	o.completedAt = params.CompletedAt
	o.cancelledAt = params.CancelledAt
	o.refundedAt = params.RefundedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the day-scoped order number.
func (o *Order) Number() Number { return o.number }

// OwnerID returns the identifier of the user or anonymous session that owns
// the order.
func (o *Order) OwnerID() string { return o.ownerID }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Items returns the order's line item snapshots.
func (o *Order) Items() []*Item { return o.items }

// Totals returns the reconciled money breakdown.
func (o *Order) Totals() Totals { return o.totals }

// Address returns the shipping address snapshot.
func (o *Order) Address() Address { return o.address }

// PromotionCodes returns the promotion codes applied at creation.
func (o *Order) PromotionCodes() []string { return o.promotionCodes }

// Note returns the internal order note.
func (o *Order) Note() string { return o.note }

// Version returns the optimistic concurrency version. It starts at 1 and
// increments on every successful transition.
func (o *Order) Version() int { return o.version }

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the time of the last transition.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// PaidAt returns when the order was paid, nil if never.
func (o *Order) PaidAt() *time.Time { return o.paidAt }

// ConfirmedAt returns when the order was confirmed, nil if never.
func (o *Order) ConfirmedAt() *time.Time { return o.confirmedAt }

// ShippedAt returns when the order was shipped, nil if never.
func (o *Order) ShippedAt() *time.Time { return o.shippedAt }

// DeliveredAt returns when the order was delivered, nil if never.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// CompletedAt returns when the order was completed, nil if never.
func (o *Order) CompletedAt() *time.Time { return o.completedAt }

// CancelledAt returns when the order was cancelled, nil if never.
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

// RefundedAt returns when the order was refunded, nil if never.
func (o *Order) RefundedAt() *time.Time { return o.refundedAt }

// TransitionTo moves the order to newStatus.
//
// The move must be a legal edge of the state machine; otherwise an
// InvalidTransitionError is returned and the order is left completely
// unchanged (status, version, and timestamps).
//
// On success the matching status timestamp is stamped, updatedAt advances,
// and the version increments. Reaching shipped marks every item as shipped;
// a stock-restoring cancellation marks every item as returned.
func (o *Order) TransitionTo(newStatus Status, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.status.CanTransitionTo(newStatus); err != nil {
		return err
	}

	restoresStock := newStatus == Cancelled && o.status.StockCommitted()

	o.status = newStatus
	o.stampStatusTime(newStatus, now)
	o.updatedAt = now
	o.version++

	switch {
	case newStatus == Shipped:
		for _, item := range o.items {
			item.markShipped()
		}
	case restoresStock || newStatus == Refunded:
		for _, item := range o.items {
			item.markReturned()
		}
	}

	return nil
}

// Cancel transitions the order to cancelled, recording the reason in the
// internal note. Sugar over TransitionTo.
func (o *Order) Cancel(reason string, now time.Time) error {
	if err := o.TransitionTo(Cancelled, now); err != nil {
		return err
	}

	if reason != "" {
		if o.note != "" {
			o.note += "; "
		}
		o.note += "cancelled: " + reason
	}
	return nil
}

func (o *Order) stampStatusTime(status Status, now time.Time) {
	ts := now
	switch status {
	case Paid:
		o.paidAt = &ts
	case Confirmed:
		o.confirmedAt = &ts
	case Shipped:
		o.shippedAt = &ts
	case Delivered:
		o.deliveredAt = &ts
	case Completed:
		o.completedAt = &ts
	case Cancelled:
		o.cancelledAt = &ts
	case Refunded:
		o.refundedAt = &ts
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return errs.NewValueIsRequiredError("ownerID")
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}
