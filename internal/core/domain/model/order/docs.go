// Package order provides domain entities and business logic for order management
// in the commerce system. It implements the Order aggregate root with lifecycle
// management, state transitions, and priced line-item snapshots.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, totals, and lifecycle
//   - Item: An immutable snapshot of a cart line item taken at order creation
//   - Status: A state machine that enforces valid order status transitions
//   - Number: The day-scoped order number in the ORD-YYYYMMDD-NNNNN format
//   - Totals: The reconciled subtotal/shipping/tax/discount/total amounts
//   - Address: The shipping address snapshot
//
// Key business rules:
//   - Orders are created in pending status from a non-empty cart snapshot
//   - Status follows the workflow draft -> pending -> paid -> confirmed ->
//     processing -> shipped -> delivered -> completed, with cancellation
//     allowed from any pre-shipped status and refunds from paid onward
//   - completed, cancelled, and refunded are terminal; no transition may skip
//     backward or re-enter a terminal status
//   - Total amount always equals subtotal + shipping + tax - discount
//   - Every successful transition increments the aggregate version used for
//     optimistic concurrency control
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
