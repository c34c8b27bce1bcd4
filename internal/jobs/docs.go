// Package jobs provides scheduled background tasks for the bookstore.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the storefront.
//
// # Available Jobs
//
// 1. CheckoutExpiryJob - Runs every minute to delete staged checkouts abandoned past their TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireCheckoutsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The expiry job uses the cron expression "* * * * *", running once a minute.
// Staged checkouts hold no stock reservations, so a delayed sweep has no
// effect on order processing.
//
// # Error Handling
//
// - Expiry job logs failures and retries on the next tick
// - Failed job starts report the error to the caller
package jobs
