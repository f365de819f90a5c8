package commands

import (
	"errors"
	"time"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrCompleteDeliveredOrdersCommandIsNotConstructed = errors.New(
	"CompleteDeliveredOrdersCommand must be created via NewCompleteDeliveredOrdersCommand constructor",
)

// CompleteDeliveredOrdersCommand triggers completion of all orders that were
// delivered before the cutoff and never confirmed by the buyer. Run
// periodically by the scheduler.
type CompleteDeliveredOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewCompleteDeliveredOrdersCommand creates a command completing orders
// delivered before the cutoff.
func NewCompleteDeliveredOrdersCommand(cutoff time.Time) (CompleteDeliveredOrdersCommand, error) {
	if cutoff.IsZero() {
		return CompleteDeliveredOrdersCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return CompleteDeliveredOrdersCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveredOrdersCommandIsNotConstructed)
}

// Cutoff returns the delivery-time threshold: orders delivered before it are
// completed.
func (c CompleteDeliveredOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}
