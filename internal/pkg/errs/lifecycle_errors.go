package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is the sentinel error for illegal order status moves.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrConcurrencyConflict is the sentinel error for writes that used a stale
	// entity version. Callers should reload the entity and retry.
	ErrConcurrencyConflict = errors.New("concurrency conflict")
)

// InvalidTransitionError indicates a requested order status move that is not
// an edge of the order state machine.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the rejected (from, to) pair.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ConcurrencyConflictError indicates that the stored version of an entity
// advanced between load and write, so the write was rejected.
type ConcurrencyConflictError struct {
	ParamName string
	ID        any
	Version   int
}

// NewConcurrencyConflictError creates a ConcurrencyConflictError for the named
// entity, its identifier and the stale version that was submitted.
func NewConcurrencyConflictError(paramName string, id any, version int) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{ParamName: paramName, ID: id, Version: version}
}

func (e *ConcurrencyConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s version %d is stale",
		ErrConcurrencyConflict, e.ParamName, e.ID, e.Version))
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}
