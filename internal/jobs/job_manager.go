package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	lowStockMonitorJob *LowStockMonitorJob
	orderDigestJob     *OrderDigestJob
}

// NewJobManager creates a job manager over the given jobs.
func NewJobManager(lowStockMonitorJob *LowStockMonitorJob, orderDigestJob *OrderDigestJob) *JobManager {
	return &JobManager{
		lowStockMonitorJob: lowStockMonitorJob,
		orderDigestJob:     orderDigestJob,
	}
}

// StartAll starts all scheduled jobs. A job that fails to start stops the
// ones already running.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock monitor job: %w", err)
	}

	if err := jm.orderDigestJob.Start(); err != nil {
		jm.lowStockMonitorJob.Stop()
		return fmt.Errorf("failed to start order digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.orderDigestJob.Stop()
	jm.lowStockMonitorJob.Stop()
}
