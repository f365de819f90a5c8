package order

import (
	"fmt"
	"regexp"
	"time"

	"commerce/internal/pkg/errs"
)

// MaxDailySequence is the largest sequence value the five-digit order number
// format can carry within one calendar day.
const MaxDailySequence = 99999

// numberPattern validates the persisted order number format. The format is
// load-bearing for external consumers (search, support lookups) and must not
// change.
var numberPattern = regexp.MustCompile(`^ORD-\d{8}-\d{5}$`)

// Number is the human-facing order identifier in the ORD-YYYYMMDD-NNNNN
// format: a fixed prefix, the calendar day the order was created, and a
// five-digit zero-padded sequence that restarts at 00001 each day.
//
// Number is a value object; it is unique across the lifetime of the system
// and never reassigned once issued.
type Number struct {
	value string
}

// NewNumber builds a Number for the given calendar day and sequence value.
// The sequence must lie in [1, MaxDailySequence]; exhaustion of the sequence
// is the caller's concern and reported before this constructor is reached.
func NewNumber(day time.Time, sequence int) (Number, error) {
	if sequence < 1 || sequence > MaxDailySequence {
		return Number{}, errs.NewValueIsOutOfRangeError("order number sequence", sequence, 1, MaxDailySequence)
	}

	return Number{value: fmt.Sprintf("ORD-%s-%05d", day.Format("20060102"), sequence)}, nil
}

// NumberFromString parses an explicitly supplied or persisted order number.
// Used for administrative imports, where an existing number must be kept
// rather than regenerated.
func NumberFromString(s string) (Number, error) {
	if !numberPattern.MatchString(s) {
		return Number{}, errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%q does not match ORD-YYYYMMDD-NNNNN", s),
		)
	}
	return Number{value: s}, nil
}

// String returns the formatted order number.
func (n Number) String() string {
	return n.value
}

// IsZero reports whether no number has been assigned.
func (n Number) IsZero() bool {
	return n.value == ""
}

// Validate checks that the number was constructed through NewNumber or
// NumberFromString.
func (n Number) Validate() error {
	if n.IsZero() {
		return errs.NewValueIsRequiredError("order number")
	}
	return nil
}

// IsEqual compares two order numbers.
func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}
