package order

import (
	"fmt"

	"commerce/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	draft ──> pending ──> paid ──> confirmed ──> processing ──> shipped ──> delivered ──> completed
//	  │          │          │           │             │            │             │
//	  │          │          ├───────────┴─────────────┘            └──────┬──────┘
//	  └──────────┴──> cancelled        (refunding reachable from paid onward)
//	                                    refunding ──> refunded
//
// completed, cancelled, and refunded are terminal. Transitions never skip
// backward and never leave a terminal status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is an order that has been staged but not yet submitted.
	Draft

	// Pending is the initial status of a created order awaiting payment.
	Pending

	// Paid indicates payment was authorized; stock has been deducted.
	Paid

	// Confirmed indicates the merchant accepted the paid order.
	Confirmed

	// Processing indicates the order is being prepared for shipment.
	Processing

	// Shipped indicates the order left the warehouse. Cancellation is no
	// longer possible from this point; refunds still are.
	Shipped

	// Delivered indicates the carrier confirmed delivery.
	Delivered

	// Completed is the terminal happy-path status.
	Completed

	// Cancelled is the terminal status for orders cancelled before shipment.
	Cancelled

	// Refunding indicates a refund is in progress.
	Refunding

	// Refunded is the terminal status of a completed refund.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Draft:      "draft",
		Pending:    "pending",
		Paid:       "paid",
		Confirmed:  "confirmed",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Completed:  "completed",
		Cancelled:  "cancelled",
		Refunding:  "refunding",
		Refunded:   "refunded",
	}
}

// getStatusSuccessors returns the complete transition table of the state
// machine. A status maps to the exact set of statuses it may move to.
func getStatusSuccessors() map[Status][]Status {
	return map[Status][]Status{
		Draft:      {Pending, Cancelled},
		Pending:    {Paid, Cancelled},
		Paid:       {Confirmed, Cancelled, Refunding},
		Confirmed:  {Processing, Cancelled, Refunding},
		Processing: {Shipped, Cancelled, Refunding},
		Shipped:    {Delivered, Refunding},
		Delivered:  {Completed, Refunding},
		Refunding:  {Refunded},
		Completed:  {},
		Cancelled:  {},
		Refunded:   {},
	}
}

// StatusFromString parses a persisted or caller-supplied status name.
// Returns an error for names outside the state machine, including "unknown".
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusSuccessors()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status, as persisted and exposed
// over the API. Implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == Refunded
}

// CanTransitionTo checks whether moving to next is an edge of the state
// machine. Returns an InvalidTransitionError describing the rejected pair
// otherwise.
func (s Status) CanTransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	for _, allowed := range getStatusSuccessors()[s] {
		if allowed == next {
			return nil
		}
	}

	return errs.NewInvalidTransitionError(s.String(), next.String())
}

// StockCommitted reports whether stock has been deducted for an order in this
// status, meaning a cancellation must restore it. True from paid onward on
// the forward chain; false for draft, pending, and the statuses reached after
// stock was already restored.
func (s Status) StockCommitted() bool {
	switch s {
	case Paid, Confirmed, Processing, Shipped, Delivered, Completed, Refunding:
		return true
	default:
		return false
	}
}
