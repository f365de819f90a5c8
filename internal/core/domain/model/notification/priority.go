package notification

import (
	"fmt"

	"commerce/internal/pkg/errs"
)

// Priority ranks how prominently a notification should be surfaced.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityLow marks informational notifications.
	PriorityLow

	// PriorityNormal is the default priority.
	PriorityNormal

	// PriorityHigh marks notifications the user should see promptly.
	PriorityHigh
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "unknown",
		PriorityLow:     "low",
		PriorityNormal:  "normal",
		PriorityHigh:    "high",
	}
}

// PriorityFromString parses a persisted or caller-supplied priority name.
func PriorityFromString(s string) (Priority, error) {
	for p, name := range getPriorityStrings() {
		if name == s && p != PriorityUnknown {
			return p, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority",
		fmt.Errorf("%q is not a valid priority", s),
	)
}

// Validate checks if the value is one of the defined priorities.
func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok || p == PriorityUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"priority",
			fmt.Errorf("%d is not a valid priority", p),
		)
	}
	return nil
}

// String returns the lowercase name of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}
