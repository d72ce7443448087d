// Package jobs provides scheduled background tasks for the purchase system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the purchase service.
//
// # Available Jobs
//
// 1. OrphanSweepJob - Runs every minute to report purchase headers that have no line items
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(orphanedPurchasesHandler, logger)
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
// The sweep uses the cron expression "0 * * * * *" which means it runs every minute.
// Orphaned headers only appear when the second phase of the two-phase create fails,
// so a minute of lag is acceptable.
//
// # Error Handling
//
// - The sweep logs query failures and keeps running on its schedule
// - Each orphaned header is logged as a warning with its id, amount, currency and status
// - Failed job starts will stop any already running jobs
package jobs
