package transform

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rickgao/stock-etl/internal/model"
)

// Columns of the consolidated artifact, in order.
var columns = []string{"ticker", "price", "volume", "timestamp", "pct_change"}

// WriteArtifact writes rows as CSV to path, replacing any prior version.
func WriteArtifact(path string, rows []model.CleanRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("write artifact header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Ticker,
			row.Price.String(),
			strconv.FormatInt(row.Volume, 10),
			row.Timestamp.UTC().Format(time.RFC3339Nano),
			row.PctChange.String(),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write artifact row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush artifact: %w", err)
	}
	return f.Close()
}

// ReadArtifact reads a consolidated artifact back into rows.
func ReadArtifact(path string) ([]model.CleanRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("artifact %s has no header", path)
	}

	rows := make([]model.CleanRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		row, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("artifact row %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(rec []string) (model.CleanRow, error) {
	if len(rec) != len(columns) {
		return model.CleanRow{}, fmt.Errorf("got %d columns, want %d", len(rec), len(columns))
	}

	price, err := decimal.NewFromString(rec[1])
	if err != nil {
		return model.CleanRow{}, fmt.Errorf("parse price: %w", err)
	}
	volume, err := strconv.ParseInt(rec[2], 10, 64)
	if err != nil {
		return model.CleanRow{}, fmt.Errorf("parse volume: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, rec[3])
	if err != nil {
		return model.CleanRow{}, fmt.Errorf("parse timestamp: %w", err)
	}
	pct, err := decimal.NewFromString(rec[4])
	if err != nil {
		return model.CleanRow{}, fmt.Errorf("parse pct_change: %w", err)
	}

	return model.CleanRow{
		Ticker:    rec[0],
		Price:     price,
		Volume:    volume,
		Timestamp: ts.UTC(),
		PctChange: pct,
	}, nil
}
