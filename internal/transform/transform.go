package transform

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/rickgao/stock-etl/internal/model"
	"github.com/rickgao/stock-etl/internal/staging"
)

// OutputFile is the fixed name of the consolidated artifact.
const OutputFile = "transformed_stock_data.csv"

// Transformer consolidates the staging area into one cleaned CSV.
type Transformer struct {
	store  *staging.Store
	outDir string
	logger *slog.Logger
}

// New creates a Transformer writing to outDir/OutputFile.
func New(store *staging.Store, outDir string, logger *slog.Logger) *Transformer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transformer{
		store:  store,
		outDir: outDir,
		logger: logger,
	}
}

// OutputPath returns the full path of the consolidated artifact.
func (t *Transformer) OutputPath() string {
	return filepath.Join(t.outDir, OutputFile)
}

// Transform reads every staged batch, cleans the combined working set, and
// overwrites the consolidated artifact. An empty staging area is a logged
// no-op: nothing is written and no error is returned.
func (t *Transformer) Transform(ctx context.Context) error {
	files, err := t.store.Files()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		t.logger.Info("no staged batches, skipping transform")
		return nil
	}

	records, err := t.store.ReadAll()
	if err != nil {
		return err
	}

	rows := Clean(records)

	if err := WriteArtifact(t.OutputPath(), rows); err != nil {
		return err
	}

	t.logger.Info("wrote consolidated artifact",
		"file", t.OutputPath(),
		"staged_files", len(files),
		"raw_records", len(records),
		"clean_rows", len(rows),
	)
	return nil
}

// Clean drops invalid records and enriches the survivors with pct_change.
//
// pct_change[i] = (price[i] - price[i-1]) / price[i-1] over surviving
// records in input order; the first survivor gets 0. Timestamps are
// normalized to UTC.
func Clean(records []model.TickRecord) []model.CleanRow {
	rows := make([]model.CleanRow, 0, len(records))

	var prev decimal.Decimal
	for _, rec := range records {
		if !rec.Valid() {
			continue
		}

		price := decimal.NewFromFloat(rec.Price)

		pct := decimal.Zero
		if len(rows) > 0 {
			pct = price.Sub(prev).Div(prev)
		}

		rows = append(rows, model.CleanRow{
			Ticker:    rec.Ticker,
			Price:     price,
			Volume:    rec.Volume,
			Timestamp: rec.Timestamp.UTC(),
			PctChange: pct,
		})
		prev = price
	}

	return rows
}
