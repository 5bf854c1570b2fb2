package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler re-scans the configured target pages on a fixed interval,
// staggering the targets to avoid fetch bursts.
type Scheduler struct {
	cron    *cron.Cron
	engine  *Engine
	targets []string
	stagger time.Duration
	log     *slog.Logger
}

// NewScheduler creates a new Scheduler that scans every target each interval.
func NewScheduler(
	eng *Engine,
	targets []string,
	scanInterval time.Duration,
	staggerOffset time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:    c,
		engine:  eng,
		targets: targets,
		stagger: staggerOffset,
		log:     log,
	}

	if _, err := c.AddFunc(
		"@every "+scanInterval.String(),
		s.runScans,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled scans.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "targets", len(s.targets))
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runScans() {
	ctx := context.Background()

	for i, target := range s.targets {
		s.log.Info("scheduled scan starting", "target", target)
		if _, _, err := s.engine.RunScan(ctx, target); err != nil {
			s.log.Error("scheduled scan failed", "target", target, "error", err)
		}

		// Stagger between targets to avoid fetch bursts.
		if i < len(s.targets)-1 && s.stagger > 0 {
			time.Sleep(s.stagger)
		}
	}
}
