package commands

import (
	"context"
	"errors"
	"time"

	"commerce/internal/pkg/errs"
)

// defaultCommandTimeout bounds a command handler's unit of work, from Begin
// through Commit.
const defaultCommandTimeout = 5 * time.Second

// classifyDependencyErr distinguishes a call that ran out of time from a
// definitive failure of the named dependency.
func classifyDependencyErr(ctx context.Context, dependency string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errs.NewDependencyTimeoutError(dependency, err)
	}
	return err
}
