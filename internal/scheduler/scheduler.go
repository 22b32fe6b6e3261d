package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the refresh job on a cron schedule. Each tick rebuilds the
// pipeline from scratch: fresh load, fresh encodings, full redraw.
type Scheduler struct {
	Cron *cron.Cron
	Job  func()
	Ctx  context.Context
}

// NewScheduler creates a Scheduler around the refresh job.
func NewScheduler(ctx context.Context, job func()) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		Job:  job,
		Ctx:  ctx,
	}
}

// Register registers the refresh job under the given cron expression.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.run); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

func (s *Scheduler) run() {
	select {
	case <-s.Ctx.Done():
		return
	default:
	}
	s.Job()
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the refresh job immediately (manual trigger / run-on-start).
func (s *Scheduler) RunNow() {
	s.run()
}
