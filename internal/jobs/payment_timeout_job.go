package jobs

import (
	"context"
	"log/slog"
	"time"

	"sales/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentTimeoutJob periodically cancels orders stuck awaiting payment past
// the configured window. Runs once a minute; the window itself, not the
// schedule, decides when an order becomes stale.
type PaymentTimeoutJob struct {
	handler commands.CancelStalePaymentsCommandHandler
	window  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentTimeoutJob creates the job with the given payment window.
func NewPaymentTimeoutJob(
	handler commands.CancelStalePaymentsCommandHandler,
	window time.Duration,
	logger *slog.Logger,
) *PaymentTimeoutJob {
	return &PaymentTimeoutJob{
		handler: handler,
		window:  window,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_timeout_job"),
	}
}

// Start begins the payment timeout job, running at the top of every minute.
func (j *PaymentTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCancelStalePaymentsCommand(j.window)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Payment timeout job misconfigured", "error", cmdErr)
			return
		}

		cancelled, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Payment timeout job failed", "error", handleErr)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale orders", "count", cancelled, "window", j.window)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment timeout job started (running every minute)")
	return nil
}

// Stop stops the payment timeout job.
func (j *PaymentTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment timeout job stopped")
}
