package inventory

import (
	"fmt"

	"commerce/internal/pkg/errs"
)

// ReferenceType names the kind of originator behind a transaction.
type ReferenceType int

const (
	// ReferenceUnknown represents an invalid or undefined reference type.
	ReferenceUnknown ReferenceType = iota

	// ReferenceOrder links the transaction to an order.
	ReferenceOrder

	// ReferenceManual marks a transaction entered by an operator.
	ReferenceManual

	// ReferenceSystem marks a transaction produced by an automated process.
	ReferenceSystem
)

func getReferenceTypeStrings() map[ReferenceType]string {
	return map[ReferenceType]string{
		ReferenceUnknown: "unknown",
		ReferenceOrder:   "order",
		ReferenceManual:  "manual",
		ReferenceSystem:  "system",
	}
}

// ReferenceTypeFromString parses a persisted or caller-supplied name.
func ReferenceTypeFromString(s string) (ReferenceType, error) {
	for t, name := range getReferenceTypeStrings() {
		if name == s && t != ReferenceUnknown {
			return t, nil
		}
	}
	return ReferenceUnknown, errs.NewValueIsInvalidErrorWithCause(
		"referenceType",
		fmt.Errorf("%q is not a valid reference type", s),
	)
}

// Validate checks if the value is one of the defined reference types.
func (t ReferenceType) Validate() error {
	if _, ok := getReferenceTypeStrings()[t]; !ok || t == ReferenceUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"referenceType",
			fmt.Errorf("%d is not a valid reference type", t),
		)
	}
	return nil
}

// String returns the lowercase name of the reference type.
func (t ReferenceType) String() string {
	if str, ok := getReferenceTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Reference identifies what caused a transaction: an order, an operator
// action, or an automated process.
type Reference struct {
	refType ReferenceType
	id      string
}

// NewReference creates a reference of the given type. The id is required for
// order references and optional otherwise.
func NewReference(refType ReferenceType, id string) (Reference, error) {
	if err := refType.Validate(); err != nil {
		return Reference{}, err
	}
	if refType == ReferenceOrder && id == "" {
		return Reference{}, errs.NewValueIsRequiredError("referenceID")
	}
	return Reference{refType: refType, id: id}, nil
}

// Type returns the reference type.
func (r Reference) Type() ReferenceType { return r.refType }

// ID returns the identifier of the originator, empty when not applicable.
func (r Reference) ID() string { return r.id }

// IsZero reports whether the reference is unset.
func (r Reference) IsZero() bool { return r == Reference{} }
