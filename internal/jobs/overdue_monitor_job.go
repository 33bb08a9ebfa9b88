package jobs

import (
	"context"
	"log/slog"
	"time"

	"tracker/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueMonitorJob periodically scans for shipments past their estimated
// delivery that are still in flight and surfaces them in the operational log.
// Runs every minute.
type OverdueMonitorJob struct {
	handler queries.GetOverdueShipmentsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueMonitorJob creates a job that reports overdue shipments.
func NewOverdueMonitorJob(handler queries.GetOverdueShipmentsQueryHandler, logger *slog.Logger) *OverdueMonitorJob {
	return &OverdueMonitorJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_monitor_job"),
	}
}

// Start begins the overdue scan on a once-per-minute schedule.
func (j *OverdueMonitorJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue monitor job started (running every minute)")
	return nil
}

// Stop stops the overdue monitor job.
func (j *OverdueMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue monitor job stopped")
}

func (j *OverdueMonitorJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetOverdueShipmentsQuery(time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue monitor job failed to build query", "error", err)
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue monitor job failed", "error", err)
		return
	}

	if len(overdue) == 0 {
		return
	}

	j.logger.WarnContext(ctx, "Overdue shipments detected", "count", len(overdue))
	for _, s := range overdue {
		j.logger.WarnContext(ctx, "Shipment overdue",
			"shipmentId", s.ID.String(),
			"trackingNumber", s.TrackingNumber,
			"status", s.Status,
			"estimatedDelivery", s.EstimatedDelivery,
		)
	}
}
