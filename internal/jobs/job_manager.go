package jobs

import (
	"fmt"
)

// JobManager coordinates the application's scheduled jobs.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reseedJob *ReseedJob
}

// NewJobManager creates a job manager for the given jobs.
func NewJobManager(reseedJob *ReseedJob) *JobManager {
	return &JobManager{
		reseedJob: reseedJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reseedJob.Start(); err != nil {
		return fmt.Errorf("failed to start reseed job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reseedJob.Stop()
}
