package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rickgao/stock-etl/internal/config"
	"github.com/rickgao/stock-etl/internal/pipeline"
)

// Scheduler runs the pipeline on a cron schedule with per-step retries.
type Scheduler struct {
	cfg    config.SchedulerConfig
	runner *pipeline.Runner
	logger *slog.Logger

	cron *cron.Cron
	mu   sync.Mutex // serializes runs; TryLock skips overlapping ticks
}

// New creates a Scheduler driving the runner.
func New(cfg config.SchedulerConfig, runner *pipeline.Runner, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cfg:    cfg,
		runner: runner,
		logger: logger,
		cron:   cron.New(),
	}
}

// Start registers the schedule and begins ticking.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		if !s.mu.TryLock() {
			s.logger.Warn("previous run still in progress, skipping tick")
			return
		}
		defer s.mu.Unlock()

		if err := s.RunOnce(ctx); err != nil {
			s.logger.Error("run permanently failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("register schedule %q: %w", s.cfg.Schedule, err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started",
		"schedule", s.cfg.Schedule,
		"max_retries", s.cfg.MaxRetries,
		"retry_delay", s.cfg.RetryDelay,
	)
	return nil
}

// Stop halts the ticker and waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.mu.Lock() // wait out any in-flight run
	s.mu.Unlock()
	s.logger.Info("scheduler stopped")
}

// RunOnce executes every pipeline step in order, retrying each failed step
// up to MaxRetries times with a fixed delay before failing the run.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	for _, step := range s.runner.Steps() {
		if err := s.runStep(ctx, step); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) runStep(ctx context.Context, step pipeline.Step) error {
	var err error
	for attempt := 0; attempt <= s.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			s.logger.Warn("retrying step",
				"step", step.Name,
				"attempt", attempt,
				"delay", s.cfg.RetryDelay,
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.cfg.RetryDelay):
			}
		}

		if err = step.Run(ctx); err == nil {
			return nil
		}
		s.logger.Error("step attempt failed",
			"step", step.Name,
			"attempt", attempt,
			"error", err,
		)
	}
	return fmt.Errorf("step %s failed after %d attempts: %w",
		step.Name, s.cfg.MaxRetries+1, err)
}
