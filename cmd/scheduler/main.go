// Command scheduler runs the full pipeline on a cron cadence until
// interrupted.
//
// Each tick executes generate -> transform -> load with per-step retries;
// overlapping ticks are skipped so runs never race over the staging area or
// the database.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rickgao/stock-etl/internal/config"
	"github.com/rickgao/stock-etl/internal/database"
	"github.com/rickgao/stock-etl/internal/generator"
	"github.com/rickgao/stock-etl/internal/loader"
	"github.com/rickgao/stock-etl/internal/pipeline"
	"github.com/rickgao/stock-etl/internal/scheduler"
	"github.com/rickgao/stock-etl/internal/staging"
	"github.com/rickgao/stock-etl/internal/transform"
	"github.com/rickgao/stock-etl/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting scheduler",
		"version", version.Version,
		"config", *configPath,
	)

	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.ValidateDatabase(); err != nil {
		logger.Error("failed to validate database config", "error", err)
		os.Exit(1)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to database
	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Wire the pipeline
	store := staging.NewStore(cfg.Staging.RawDir)
	gen := generator.New(cfg.Generator, store, logger)
	tr := transform.New(store, cfg.Staging.TransformedDir, logger)
	ld := loader.New(pool, tr.OutputPath(), logger)

	runner := pipeline.NewRunner([]pipeline.Step{
		{Name: "generate", Run: gen.Generate},
		{Name: "transform", Run: tr.Transform},
		{Name: "load", Run: ld.Load},
	}, logger)

	sched := scheduler.New(cfg.Scheduler, runner, logger)
	if err := sched.Start(ctx); err != nil {
		logger.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}

	// Wait for shutdown
	<-ctx.Done()

	logger.Info("shutting down...")
	sched.Stop()
	logger.Info("scheduler stopped")
}
