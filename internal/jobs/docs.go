// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order lifecycle.
//
// # Available Jobs
//
// 1. OrderStatsJob - Runs every minute to log the per-status order rollup
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager, err := jobs.NewJobManager(orderStatsHandler, logger)
//	if err != nil {
//		log.Fatal("Failed to create jobs:", err)
//	}
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The stats job is read-only; its failures are logged and never interrupt
// request handling. Failed job starts surface as startup errors.
package jobs
