package scheduler

import (
	"context"
	"time"
)

// Scheduler runs a task at a fixed interval until its context is cancelled
type Scheduler struct {
	interval time.Duration
	task     func(context.Context)
}

// New creates a new Scheduler instance
func New(interval time.Duration, task func(context.Context)) *Scheduler {
	return &Scheduler{
		interval: interval,
		task:     task,
	}
}

// Run blocks, executing the task every interval. When firstRunImmediately is
// set the task runs once before the first tick. Returns when ctx is done.
func (s *Scheduler) Run(ctx context.Context, firstRunImmediately bool) {
	if firstRunImmediately {
		s.task(ctx)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.task(ctx)
		case <-ctx.Done():
			return
		}
	}
}
