package jobs

import (
	"context"
	"log/slog"
	"time"

	"commerce/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderCompletionJob manages the scheduled completion of delivered orders.
// Runs hourly and completes every order delivered longer ago than the
// configured confirmation window.
type OrderCompletionJob struct {
	handler commands.CompleteDeliveredOrdersCommandHandler
	window  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderCompletionJob creates a job that auto-completes delivered orders
// once the buyer's confirmation window has passed.
func NewOrderCompletionJob(
	handler commands.CompleteDeliveredOrdersCommandHandler,
	window time.Duration,
	logger *slog.Logger,
) *OrderCompletionJob {
	return &OrderCompletionJob{
		handler: handler,
		window:  window,
		cron:    cron.New(),
		logger:  logger.With("component", "order_completion_job"),
	}
}

// Start begins the order completion job to run every hour.
func (j *OrderCompletionJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCompleteDeliveredOrdersCommand(time.Now().Add(-j.window))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order completion job misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Order completion job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order completion job started (running hourly)",
		"confirmationWindow", j.window.String())
	return nil
}

// Stop stops the order completion job.
func (j *OrderCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order completion job stopped")
}
