package loader

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rickgao/stock-etl/internal/model"
	"github.com/rickgao/stock-etl/internal/transform"
)

const (
	createSchemaSQL = `CREATE SCHEMA IF NOT EXISTS stock_schema`

	createTableSQL = `
		CREATE TABLE IF NOT EXISTS stock_schema.stock_data (
			id SERIAL PRIMARY KEY,
			ticker VARCHAR(10),
			price NUMERIC,
			volume INT,
			pct_change NUMERIC,
			ts TIMESTAMPTZ,
			CONSTRAINT unique_stock_row UNIQUE (ticker, ts)
		)`

	upsertSQL = `
		INSERT INTO stock_schema.stock_data (ticker, price, volume, pct_change, ts)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (ticker, ts)
		DO UPDATE SET
			price = EXCLUDED.price,
			volume = EXCLUDED.volume,
			pct_change = EXCLUDED.pct_change`
)

// DB is the slice of the pgx pool the loader needs. Each Exec is its own
// implicit transaction; there is no multi-row grouping.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Loader reads the consolidated artifact and upserts every row.
type Loader struct {
	db           DB
	artifactPath string
	logger       *slog.Logger
}

// New creates a Loader reading from artifactPath.
func New(db DB, artifactPath string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		db:           db,
		artifactPath: artifactPath,
		logger:       logger,
	}
}

// EnsureSchema creates the schema and table if absent.
func (l *Loader) EnsureSchema(ctx context.Context) error {
	if _, err := l.db.Exec(ctx, createSchemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := l.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	return nil
}

// Load ensures the schema exists, reads the artifact in full, and upserts
// each row in order. The first failing row aborts the run; rows already
// written stay committed.
func (l *Loader) Load(ctx context.Context) error {
	if err := l.EnsureSchema(ctx); err != nil {
		return err
	}

	rows, err := transform.ReadArtifact(l.artifactPath)
	if err != nil {
		return err
	}

	for i, row := range rows {
		if err := l.upsert(ctx, row); err != nil {
			return fmt.Errorf("upsert row %d (%s @ %s): %w",
				i, row.Ticker, row.Timestamp, err)
		}
	}

	l.logger.Info("loaded artifact",
		"file", l.artifactPath,
		"rows", len(rows),
	)
	return nil
}

func (l *Loader) upsert(ctx context.Context, row model.CleanRow) error {
	_, err := l.db.Exec(ctx, upsertSQL,
		row.Ticker,
		row.Price,
		row.Volume,
		row.PctChange,
		row.Timestamp,
	)
	return err
}
