package transform

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rickgao/stock-etl/internal/model"
	"github.com/rickgao/stock-etl/internal/staging"
)

func tick(ticker string, price float64, ts time.Time) model.TickRecord {
	return model.TickRecord{Ticker: ticker, Price: price, Volume: 1000, Timestamp: ts}
}

func TestCleanFiltersInvalid(t *testing.T) {
	ts := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	records := []model.TickRecord{
		tick("AAPL", 100, ts),
		tick("MSFT", 0, ts),
		tick("TSLA", -5, ts),
		tick("AMZN", 200, ts),
	}

	rows := Clean(records)

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	for i, row := range rows {
		if !row.Price.IsPositive() {
			t.Errorf("rows[%d].Price = %v, want > 0", i, row.Price)
		}
	}
}

func TestCleanPctChange(t *testing.T) {
	ts := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	records := []model.TickRecord{
		tick("AAPL", 100, ts),
		tick("MSFT", 150, ts),
		tick("GOOGL", 0, ts), // dropped before pct_change is computed
		tick("AMZN", 200, ts),
	}

	rows := Clean(records)

	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	want := []decimal.Decimal{
		decimal.Zero,
		decimal.RequireFromString("0.5"),
		// (200-150)/150 at default division precision
		decimal.NewFromInt(50).Div(decimal.NewFromInt(150)),
	}
	for i, w := range want {
		if !rows[i].PctChange.Equal(w) {
			t.Errorf("rows[%d].PctChange = %v, want %v", i, rows[i].PctChange, w)
		}
	}
}

func TestCleanNormalizesUTC(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	records := []model.TickRecord{
		tick("AAPL", 100, time.Date(2026, 1, 15, 7, 0, 0, 0, est)),
	}

	rows := Clean(records)

	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if rows[0].Timestamp.Location() != time.UTC {
		t.Errorf("Timestamp location = %v, want UTC", rows[0].Timestamp.Location())
	}
	if rows[0].Timestamp.Hour() != 12 {
		t.Errorf("Timestamp hour = %d, want 12", rows[0].Timestamp.Hour())
	}
}

func TestCleanEmptyInput(t *testing.T) {
	if rows := Clean(nil); len(rows) != 0 {
		t.Errorf("Clean(nil) = %v, want empty", rows)
	}
}

func TestTransformEmptyStagingNoop(t *testing.T) {
	dir := t.TempDir()
	store := staging.NewStore(filepath.Join(dir, "raw"))
	tr := New(store, filepath.Join(dir, "transformed"), nil)

	if err := tr.Transform(context.Background()); err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	if _, err := os.Stat(tr.OutputPath()); !os.IsNotExist(err) {
		t.Errorf("output artifact exists, want no write on empty staging")
	}
}

func TestTransformOverwritesArtifact(t *testing.T) {
	dir := t.TempDir()
	store := staging.NewStore(filepath.Join(dir, "raw"))
	tr := New(store, filepath.Join(dir, "transformed"), nil)

	t1 := time.Date(2026, 1, 15, 12, 0, 1, 0, time.UTC)
	if _, err := store.WriteBatch([]model.TickRecord{tick("AAPL", 100, t1)}, t1); err != nil {
		t.Fatalf("WriteBatch failed: %v", err)
	}
	if err := tr.Transform(context.Background()); err != nil {
		t.Fatalf("first Transform failed: %v", err)
	}

	first, err := ReadArtifact(tr.OutputPath())
	if err != nil {
		t.Fatalf("ReadArtifact failed: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("len(first) = %d, want 1", len(first))
	}

	// A second staged batch accumulates; the artifact is recomputed from
	// the full set, not appended to.
	t2 := time.Date(2026, 1, 15, 12, 0, 2, 0, time.UTC)
	if _, err := store.WriteBatch([]model.TickRecord{tick("MSFT", 150, t2)}, t2); err != nil {
		t.Fatalf("WriteBatch failed: %v", err)
	}
	if err := tr.Transform(context.Background()); err != nil {
		t.Fatalf("second Transform failed: %v", err)
	}

	second, err := ReadArtifact(tr.OutputPath())
	if err != nil {
		t.Fatalf("ReadArtifact failed: %v", err)
	}
	if len(second) != 2 {
		t.Fatalf("len(second) = %d, want 2", len(second))
	}
	if second[0].Ticker != "AAPL" || second[1].Ticker != "MSFT" {
		t.Errorf("tickers = %q, %q; want AAPL, MSFT", second[0].Ticker, second[1].Ticker)
	}
	if !second[1].PctChange.Equal(decimal.RequireFromString("0.5")) {
		t.Errorf("second[1].PctChange = %v, want 0.5", second[1].PctChange)
	}
}

func TestArtifactRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), OutputFile)
	ts := time.Date(2026, 1, 15, 12, 0, 0, 123456789, time.UTC)

	rows := []model.CleanRow{
		{
			Ticker:    "AAPL",
			Price:     decimal.RequireFromString("187.25"),
			Volume:    4200,
			Timestamp: ts,
			PctChange: decimal.Zero,
		},
		{
			Ticker:    "MSFT",
			Price:     decimal.RequireFromString("280.9"),
			Volume:    999,
			Timestamp: ts.Add(time.Second),
			PctChange: decimal.RequireFromString("0.5002136181575434"),
		},
	}

	if err := WriteArtifact(path, rows); err != nil {
		t.Fatalf("WriteArtifact failed: %v", err)
	}

	got, err := ReadArtifact(path)
	if err != nil {
		t.Fatalf("ReadArtifact failed: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(rows))
	}
	for i := range rows {
		if got[i].Ticker != rows[i].Ticker {
			t.Errorf("got[%d].Ticker = %q, want %q", i, got[i].Ticker, rows[i].Ticker)
		}
		if !got[i].Price.Equal(rows[i].Price) {
			t.Errorf("got[%d].Price = %v, want %v", i, got[i].Price, rows[i].Price)
		}
		if got[i].Volume != rows[i].Volume {
			t.Errorf("got[%d].Volume = %d, want %d", i, got[i].Volume, rows[i].Volume)
		}
		if !got[i].Timestamp.Equal(rows[i].Timestamp) {
			t.Errorf("got[%d].Timestamp = %v, want %v", i, got[i].Timestamp, rows[i].Timestamp)
		}
		if !got[i].PctChange.Equal(rows[i].PctChange) {
			t.Errorf("got[%d].PctChange = %v, want %v", i, got[i].PctChange, rows[i].PctChange)
		}
	}
}

func TestReadArtifactMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), OutputFile)
	csv := "ticker,price,volume,timestamp,pct_change\nAAPL,not-a-price,100,2026-01-15T12:00:00Z,0\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	if _, err := ReadArtifact(path); err == nil {
		t.Fatal("ReadArtifact succeeded, want parse error")
	}
}
