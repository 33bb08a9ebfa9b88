// Package jobs provides scheduled background tasks for the shipment tracking
// service, built on github.com/robfig/cron/v3.
//
// The only job today is OverdueMonitorJob, which runs every minute and logs
// shipments whose estimated delivery has passed while they are still in
// flight. Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(overdueHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"

	"tracker/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueMonitorJob *OverdueMonitorJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	overdueHandler queries.GetOverdueShipmentsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueMonitorJob: NewOverdueMonitorJob(overdueHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue monitor job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueMonitorJob.Stop()
}
