package jobs

import (
	"fmt"
	"log/slog"
)

// Job is a scheduled task that can be started once and stopped.
type Job interface {
	Name() string
	Start() error
	Stop()
}

// JobManager starts and stops a set of jobs together.
type JobManager struct {
	jobs   []Job
	logger *slog.Logger
}

func NewJobManager(logger *slog.Logger, jobs ...Job) *JobManager {
	return &JobManager{
		jobs:   jobs,
		logger: logger.With("component", "job_manager"),
	}
}

// StartAll starts every job in order. If one fails, the jobs already started
// are stopped again.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("failed to start %s: %w", job.Name(), err)
		}
	}

	jm.logger.Info("jobs started", "count", len(jm.jobs))
	return nil
}

// StopAll stops every job and waits for running executions to finish.
func (jm *JobManager) StopAll() {
	for _, job := range jm.jobs {
		job.Stop()
	}
}
