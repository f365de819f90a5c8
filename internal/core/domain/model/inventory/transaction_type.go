package inventory

import (
	"fmt"

	"commerce/internal/pkg/errs"
)

// TransactionType classifies a stock-affecting event.
type TransactionType int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown TransactionType = iota

	// TypeInitial seeds the opening stock level of a key.
	TypeInitial

	// TypeSale deducts stock for a paid order. Its quantity change is always
	// negative and it may never drive stock below zero.
	TypeSale

	// TypeReturn restores stock, typically for a cancelled or refunded order.
	TypeReturn

	// TypeAdjustment corrects stock after a recount or damage write-off.
	TypeAdjustment
)

func getTransactionTypeStrings() map[TransactionType]string {
	return map[TransactionType]string{
		TypeUnknown:    "unknown",
		TypeInitial:    "initial",
		TypeSale:       "sale",
		TypeReturn:     "return",
		TypeAdjustment: "adjustment",
	}
}

// TransactionTypeFromString parses a persisted or caller-supplied type name.
func TransactionTypeFromString(s string) (TransactionType, error) {
	for t, name := range getTransactionTypeStrings() {
		if name == s && t != TypeUnknown {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"transactionType",
		fmt.Errorf("%q is not a valid transaction type", s),
	)
}

// Validate checks if the value is one of the defined transaction types.
func (t TransactionType) Validate() error {
	if _, ok := getTransactionTypeStrings()[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"transactionType",
			fmt.Errorf("%d is not a valid transaction type", t),
		)
	}
	return nil
}

// String returns the lowercase name of the type. Implements fmt.Stringer.
func (t TransactionType) String() string {
	if str, ok := getTransactionTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
