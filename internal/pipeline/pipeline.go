package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Step is one independently callable pipeline stage.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Runner executes steps in declaration order.
type Runner struct {
	steps  []Step
	logger *slog.Logger
}

// NewRunner creates a Runner over the given steps.
func NewRunner(steps []Step, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		steps:  steps,
		logger: logger,
	}
}

// Steps returns the configured steps. The scheduler wraps each one with its
// own retry policy.
func (r *Runner) Steps() []Step {
	return r.steps
}

// Run executes every step once, in order, aborting on the first failure.
// Each run carries a fresh run ID through the logs.
func (r *Runner) Run(ctx context.Context) error {
	runID := uuid.New()
	logger := r.logger.With("run_id", runID)

	logger.Info("run started", "steps", len(r.steps))

	for _, step := range r.steps {
		logger.Info("step started", "step", step.Name)
		if err := step.Run(ctx); err != nil {
			logger.Error("step failed", "step", step.Name, "error", err)
			return fmt.Errorf("step %s: %w", step.Name, err)
		}
		logger.Info("step completed", "step", step.Name)
	}

	logger.Info("run completed")
	return nil
}
