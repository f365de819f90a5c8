package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart is the sentinel error for order creation from a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrSequenceExhausted is the sentinel error for an exhausted day-scoped
	// order number sequence. It is fatal for order creation on that day and
	// must never wrap around.
	ErrSequenceExhausted = errors.New("order number sequence exhausted")
)

// EmptyCartError indicates that an order was requested from a cart that
// contains no line items.
type EmptyCartError struct {
	CartID any
}

// NewEmptyCartError creates an EmptyCartError for the offending cart.
func NewEmptyCartError(cartID any) *EmptyCartError {
	return &EmptyCartError{CartID: cartID}
}

func (e *EmptyCartError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrEmptyCart, e.CartID))
}

func (e *EmptyCartError) Unwrap() error {
	return ErrEmptyCart
}

// SequenceExhaustedError indicates that more order numbers were requested for
// a calendar day than the five-digit sequence can issue.
type SequenceExhaustedError struct {
	Day      string
	LastUsed int
}

// NewSequenceExhaustedError creates a SequenceExhaustedError for the given day.
func NewSequenceExhaustedError(day string, lastUsed int) *SequenceExhaustedError {
	return &SequenceExhaustedError{Day: day, LastUsed: lastUsed}
}

func (e *SequenceExhaustedError) Error() string {
	return sanitize(fmt.Sprintf("%s: day is %s, last value is %d",
		ErrSequenceExhausted, e.Day, e.LastUsed))
}

func (e *SequenceExhaustedError) Unwrap() error {
	return ErrSequenceExhausted
}
