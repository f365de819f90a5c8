package services

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
)

// SequenceStore hands out the next value of a day-scoped counter. The first
// call for a calendar day returns 1; every further call returns the previous
// value plus one. Implementations must linearize concurrent callers so no
// value is ever returned twice.
type SequenceStore interface {
	NextDailySequence(ctx context.Context, day time.Time) (int, error)
}

// OrderNumberingAuthority issues order numbers in the format
// ORD-YYYYMMDD-NNNNN: unique across the lifetime of the system, strictly
// increasing within a calendar day, resetting to 00001 on the first order of
// a new day.
//
// Exhausting the five-digit sequence is fatal for the day; the authority
// never wraps around and never reuses a value.
type OrderNumberingAuthority struct {
	store SequenceStore

	isConstructed bool
}

// NewOrderNumberingAuthority creates the authority over the given store.
func NewOrderNumberingAuthority(store SequenceStore) (*OrderNumberingAuthority, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	return &OrderNumberingAuthority{store: store, isConstructed: true}, nil
}

// Validate ensures the authority was created through the constructor.
func (a *OrderNumberingAuthority) Validate() error {
	if a == nil || !a.isConstructed {
		return errs.NewValueIsRequiredError("orderNumberingAuthority")
	}
	return nil
}

// Next issues the next order number for the given day.
func (a *OrderNumberingAuthority) Next(ctx context.Context, day time.Time) (order.Number, error) {
	if err := a.Validate(); err != nil {
		return order.Number{}, err
	}

	sequence, err := a.store.NextDailySequence(ctx, day)
	if err != nil {
		return order.Number{}, err
	}
	if sequence > order.MaxDailySequence {
		return order.Number{}, errs.NewSequenceExhaustedError(day.Format("20060102"), sequence)
	}

	return order.NewNumber(day, sequence)
}

// Ensure returns the explicitly supplied number unchanged when present and
// issues a fresh one otherwise. Administrative imports carry their own
// numbers; the authority must never overwrite them.
func (a *OrderNumberingAuthority) Ensure(ctx context.Context, explicit order.Number, day time.Time) (order.Number, error) {
	if !explicit.IsZero() {
		return explicit, nil
	}
	return a.Next(ctx, day)
}
