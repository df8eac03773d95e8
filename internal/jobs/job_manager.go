package jobs

import (
	"fmt"
	"log/slog"

	"hatbazar/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	demandRefreshJob *DemandRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	refreshDemandsHandler *commands.RefreshDemandsCommandHandler,
	demandRefreshSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		demandRefreshJob: NewDemandRefreshJob(refreshDemandsHandler, demandRefreshSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.demandRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start demand refresh job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.demandRefreshJob.Stop()
}
