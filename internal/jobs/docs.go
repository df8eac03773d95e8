// Package jobs provides scheduled background tasks for the marketplace core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the service needs.
//
// # Available Jobs
//
// 1. DemandRefreshJob - Periodically pulls the community demand snapshot and
// raises urgent-demand and hotspot alerts through the notification dispatcher.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(refreshDemandsHandler, "", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The refresh job defaults to "*/30 * * * * *" (every 30 seconds, seconds
// field enabled). The spec is configurable through DEMAND_REFRESH_SPEC.
//
// # Error Handling
//
// A failed refresh tick is logged and dropped; the next tick retries. Alert
// deduplication lives in the refresh handler, so retries never double-notify.
package jobs
