package kernel

import (
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for monetary amounts expressed in minor currency
// units (cents, yen, and so on). It wraps github.com/shopspring/decimal so
// that totals reconcile exactly: computing the same cart twice always yields
// identical results, with rounding applied as a single explicit half-up step
// per derived field rather than accumulated floating drift.
//
// Money is immutable; all arithmetic methods return a new value. The zero
// value is a valid zero amount.
//
// Example:
//
//	price := kernel.NewMoneyFromInt(600)
//	subtotal := price.MulInt(2)          // 1200
//	tax := subtotal.MulRounded(taxRate)  // 60 at 5%
type Money struct {
	amount decimal.Decimal
}

// NewMoneyFromInt creates a Money from an integer amount of minor units.
func NewMoneyFromInt(amount int64) Money {
	return Money{amount: decimal.NewFromInt(amount)}
}

// NewMoneyFromDecimal creates a Money from an exact decimal amount.
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromString parses a Money from its decimal string representation,
// as stored in the database.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return Money{amount: d}, nil
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt returns the amount multiplied by an integer factor.
func (m Money) MulInt(factor int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor)))}
}

// MulRounded multiplies the amount by a decimal rate and rounds the result
// half-up to the smallest currency unit. This is the single rounding step
// applied to each derived pricing field.
func (m Money) MulRounded(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Round(0)}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// GreaterOrEqual reports whether m >= other.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// IsEqual compares two amounts for exact equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
