// Package errs provides standardized error types for the commerce order core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per failure kind the core distinguishes:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value is outside its permitted range
//   - ObjectNotFoundError: For when an entity cannot be located
//   - InvalidTransitionError: For an illegal order status move
//   - ConcurrencyConflictError: For a write that used a stale entity version
//   - NegativeStockError: For a sale that would drive stock below zero
//   - EmptyCartError: For order creation attempted from a cart with no items
//   - SequenceExhaustedError: For an exhausted day-scoped order number sequence
//   - DependencyFailureError / DependencyTimeoutError: For a collaborator that
//     failed or did not respond in time
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel so callers classify with errors.Is
//
// This standardized approach keeps every surfaced error carrying a stable
// machine-readable kind next to its human-readable message, and enables
// consistent status mapping at the HTTP boundary.
package errs
