package generator

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/rickgao/stock-etl/internal/config"
	"github.com/rickgao/stock-etl/internal/model"
	"github.com/rickgao/stock-etl/internal/staging"
)

// Generator writes synthetic tick batches to the staging area.
type Generator struct {
	cfg    config.GeneratorConfig
	store  *staging.Store
	logger *slog.Logger

	rng *rand.Rand
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// New creates a Generator.
func New(cfg config.GeneratorConfig, store *staging.Store, logger *slog.Logger, opts ...Option) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Generator{
		cfg:    cfg,
		store:  store,
		logger: logger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// WithRand sets the random source. Used by tests for determinism.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithClock sets the time source. Used by tests for determinism.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// Generate produces one batch and writes it as a single staging artifact.
// Storage failures propagate; there are no other error conditions.
func (g *Generator) Generate(ctx context.Context) error {
	now := g.now().UTC()
	batch := g.batch(now)

	path, err := g.store.WriteBatch(batch, now)
	if err != nil {
		return err
	}

	g.logger.Info("generated batch",
		"file", path,
		"records", len(batch),
	)
	return nil
}

// batch draws cfg.BatchSize records stamped with now.
func (g *Generator) batch(now time.Time) []model.TickRecord {
	records := make([]model.TickRecord, g.cfg.BatchSize)
	for i := range records {
		records[i] = model.TickRecord{
			Ticker:    g.cfg.Tickers[g.rng.Intn(len(g.cfg.Tickers))],
			Price:     g.price(),
			Volume:    g.cfg.VolumeMin + g.rng.Int63n(g.cfg.VolumeMax-g.cfg.VolumeMin+1),
			Timestamp: now,
		}
	}
	return records
}

// price draws a uniform price rounded to 2 decimal places, forced to 0 with
// probability cfg.InvalidRate.
func (g *Generator) price() float64 {
	if g.rng.Float64() < g.cfg.InvalidRate {
		return 0
	}
	p := g.cfg.PriceMin + g.rng.Float64()*(g.cfg.PriceMax-g.cfg.PriceMin)
	return math.Round(p*100) / 100
}
