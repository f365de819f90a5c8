// Package services provides domain services that implement business
// operations spanning multiple aggregates.
//
// The package includes:
//   - PricingEngine: a pure function from cart line items to the reconciled
//     order totals (subtotal, tax, shipping, discount, total)
//   - OrderNumberingAuthority: issues unique, day-scoped, strictly
//     increasing order numbers backed by a persisted sequence
//
// Domain services hold no entity state of their own; they coordinate
// aggregates and value objects following Domain-Driven Design principles.
package services
