// Package notification contains the user-facing notification entity and the
// mapping from order lifecycle statuses to notification types.
//
// A notification is written once when a lifecycle event (or a non-order
// event) occurs and afterwards only mutated by its owner: marked read or
// deleted. Titles and messages are resolved from per-type templates at
// creation time.
package notification
