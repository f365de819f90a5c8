// Package cart contains the shopping cart aggregate.
//
// A Cart is a mutable, owner-scoped collection of line items. Each line item
// snapshots the product's unit price at the moment it is added; the snapshot
// is refreshed only by an explicit re-add, never by a quantity change. The
// cart is the sole input to order creation and is cleared once its content
// has been committed into an order.
package cart
