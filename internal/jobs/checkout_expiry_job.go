package jobs

import (
	"context"
	"log/slog"

	"bookstore/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CheckoutExpiryJob sweeps staged checkouts that were never committed.
// Runs every minute; abandoned checkouts only occupy table rows, so the
// sweep is cheap and a missed run is harmless.
type CheckoutExpiryJob struct {
	handler commands.ExpireCheckoutsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCheckoutExpiryJob creates a new job for expiring abandoned checkouts.
func NewCheckoutExpiryJob(handler commands.ExpireCheckoutsCommandHandler, logger *slog.Logger) *CheckoutExpiryJob {
	return &CheckoutExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "checkout_expiry_job"),
	}
}

// Start begins the checkout expiry job to run every minute.
func (j *CheckoutExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireCheckoutsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Checkout expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Checkout expiry job started (running every minute)")
	return nil
}

// Stop stops the checkout expiry job.
func (j *CheckoutExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Checkout expiry job stopped")
}
