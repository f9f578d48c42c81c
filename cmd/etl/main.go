// Command etl runs one pipeline step (or one full run) and exits.
//
// Usage:
//
//	etl [-config path] generate|transform|load|run
//
// The three steps are independently callable so an external orchestrator
// can sequence and retry them; `run` executes generate -> transform -> load
// once for local use.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/rickgao/stock-etl/internal/config"
	"github.com/rickgao/stock-etl/internal/database"
	"github.com/rickgao/stock-etl/internal/generator"
	"github.com/rickgao/stock-etl/internal/loader"
	"github.com/rickgao/stock-etl/internal/pipeline"
	"github.com/rickgao/stock-etl/internal/staging"
	"github.com/rickgao/stock-etl/internal/transform"
	"github.com/rickgao/stock-etl/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [-config path] generate|transform|load|run\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	op := flag.Arg(0)
	if op == "" {
		flag.Usage()
		os.Exit(2)
	}

	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("starting etl",
		"version", version.Version,
		"op", op,
	)

	ctx := context.Background()

	if err := run(ctx, op, cfg, logger); err != nil {
		logger.Error("run failed", "op", op, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, op string, cfg *config.Config, logger *slog.Logger) error {
	store := staging.NewStore(cfg.Staging.RawDir)
	gen := generator.New(cfg.Generator, store, logger)
	tr := transform.New(store, cfg.Staging.TransformedDir, logger)

	switch op {
	case "generate":
		return gen.Generate(ctx)

	case "transform":
		return tr.Transform(ctx)

	case "load":
		ld, closePool, err := connectLoader(ctx, cfg, tr.OutputPath(), logger)
		if err != nil {
			return err
		}
		defer closePool()
		return ld.Load(ctx)

	case "run":
		ld, closePool, err := connectLoader(ctx, cfg, tr.OutputPath(), logger)
		if err != nil {
			return err
		}
		defer closePool()

		runner := pipeline.NewRunner([]pipeline.Step{
			{Name: "generate", Run: gen.Generate},
			{Name: "transform", Run: tr.Transform},
			{Name: "load", Run: ld.Load},
		}, logger)
		return runner.Run(ctx)

	default:
		return fmt.Errorf("unknown operation %q", op)
	}
}

// connectLoader validates database config, connects, and returns the loader
// plus a release func for the pool.
func connectLoader(ctx context.Context, cfg *config.Config, artifactPath string, logger *slog.Logger) (*loader.Loader, func(), error) {
	if err := cfg.ValidateDatabase(); err != nil {
		return nil, nil, err
	}

	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	return loader.New(pool, artifactPath, logger), pool.Close, nil
}
