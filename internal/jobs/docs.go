// Package jobs provides scheduled background tasks for walt.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DriverRankReportJob - Logs the top of the driver rank report on a schedule
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(rankReportHandler, "0 */5 * * * *", logger)
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
// Schedules use six fields with seconds first. The default "0 * * * * *"
// runs once a minute.
//
// # Error Handling
//
// - Report failures are logged at Error and the next run proceeds as usual
// - An invalid schedule makes StartAll fail
package jobs
