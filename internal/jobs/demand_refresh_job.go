package jobs

import (
	"context"
	"log/slog"

	"hatbazar/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultDemandRefreshSpec polls the demand backend every 30 seconds. The
// expression uses the seconds field enabled by cron.WithSeconds.
const DefaultDemandRefreshSpec = "*/30 * * * * *"

// DemandRefreshJob periodically pulls the community demand snapshot and lets
// the refresh handler raise urgent and hotspot alerts.
type DemandRefreshJob struct {
	handler *commands.RefreshDemandsCommandHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDemandRefreshJob creates the demand refresh job. An empty spec falls
// back to DefaultDemandRefreshSpec.
func NewDemandRefreshJob(
	handler *commands.RefreshDemandsCommandHandler,
	spec string,
	logger *slog.Logger,
) *DemandRefreshJob {
	if spec == "" {
		spec = DefaultDemandRefreshSpec
	}
	return &DemandRefreshJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "demand_refresh_job"),
	}
}

// Start schedules the job. Returns an error if the cron spec is invalid.
func (j *DemandRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshDemandsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// The demand backend being unreachable is a transient condition;
			// the next tick retries.
			j.logger.ErrorContext(ctx, "Demand refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Demand refresh job started", "spec", j.spec)
	return nil
}

// Stop stops the demand refresh job.
func (j *DemandRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Demand refresh job stopped")
}
