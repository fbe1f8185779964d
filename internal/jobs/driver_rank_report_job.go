package jobs

import (
	"context"
	"log/slog"

	"walt/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultReportSchedule runs the report at the start of every minute.
const DefaultReportSchedule = "0 * * * * *"

const reportTop = 3

// DriverRankReportJob periodically logs the drivers with the longest total distance.
type DriverRankReportJob struct {
	handler  queries.GetDriverRankReportQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDriverRankReportJob creates the report job. An empty schedule falls back
// to DefaultReportSchedule. Schedules use the six-field cron format with seconds.
func NewDriverRankReportJob(
	handler queries.GetDriverRankReportQueryHandler,
	schedule string,
	logger *slog.Logger,
) *DriverRankReportJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}

	return &DriverRankReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "driver_rank_report_job"),
	}
}

// Start schedules the job. Returns an error for an unparsable schedule.
func (j *DriverRankReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.report(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver rank report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the report job.
func (j *DriverRankReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver rank report job stopped")
}

func (j *DriverRankReportJob) report(ctx context.Context) {
	rows, err := j.handler.Handle(ctx, queries.NewGetDriverRankReportQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Driver rank report job failed", "error", err)
		return
	}

	for i, row := range rows {
		if i == reportTop {
			break
		}
		j.logger.InfoContext(ctx, "Driver rank",
			"position", i+1, "driver", row.DriverName, "total_km", row.TotalDistance)
	}
}
