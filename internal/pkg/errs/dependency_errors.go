package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrDependencyFailure is the sentinel error for a collaborator that
	// definitively failed.
	ErrDependencyFailure = errors.New("dependency failed")

	// ErrDependencyTimeout is the sentinel error for a collaborator that did
	// not respond within its bounded timeout. The outcome of the call is
	// unknown, which is why it is distinct from a definitive failure.
	ErrDependencyTimeout = errors.New("dependency timed out")
)

// DependencyFailureError indicates that a named collaborator (ledger,
// notification store, payment provider) reported a failure.
type DependencyFailureError struct {
	Dependency string
	Cause      error
}

// NewDependencyFailureError creates a DependencyFailureError for the named collaborator.
func NewDependencyFailureError(dependency string, cause error) *DependencyFailureError {
	return &DependencyFailureError{Dependency: dependency, Cause: cause}
}

func (e *DependencyFailureError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrDependencyFailure, e.Dependency, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrDependencyFailure, e.Dependency))
}

func (e *DependencyFailureError) Unwrap() error {
	return ErrDependencyFailure
}

// DependencyTimeoutError indicates that a named collaborator exceeded its
// bounded timeout.
type DependencyTimeoutError struct {
	Dependency string
	Cause      error
}

// NewDependencyTimeoutError creates a DependencyTimeoutError for the named collaborator.
func NewDependencyTimeoutError(dependency string, cause error) *DependencyTimeoutError {
	return &DependencyTimeoutError{Dependency: dependency, Cause: cause}
}

func (e *DependencyTimeoutError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrDependencyTimeout, e.Dependency, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrDependencyTimeout, e.Dependency))
}

func (e *DependencyTimeoutError) Unwrap() error {
	return ErrDependencyTimeout
}
