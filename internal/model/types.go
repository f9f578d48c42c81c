package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TickRecord is a single synthetic market tick as written to the staging
// area by the generator.
type TickRecord struct {
	Ticker    string    `json:"ticker"`    // Symbol (e.g., "AAPL")
	Price     float64   `json:"price"`     // Price in dollars, 2 decimal places; 0 = invalid
	Volume    int64     `json:"volume"`    // Traded volume
	Timestamp time.Time `json:"timestamp"` // Generation time (UTC)
}

// Valid reports whether the record passes the data-quality filter.
// Records with a non-positive price are injected bad data.
func (r TickRecord) Valid() bool {
	return r.Price > 0
}

// CleanRow is a filtered, enriched record as written to the consolidated
// artifact and upserted into the database.
//
// Invariant: Price is strictly positive.
type CleanRow struct {
	Ticker    string          // Symbol
	Price     decimal.Decimal // Price in dollars
	Volume    int64           // Traded volume
	Timestamp time.Time       // Tick time (UTC); part of the (ticker, ts) key
	PctChange decimal.Decimal // Relative change vs. the previous surviving row
}

// Key returns the natural key identifying the row in the database.
// At most one persisted row exists per key regardless of how many times the
// same artifact is loaded.
func (r CleanRow) Key() RowKey {
	return RowKey{Ticker: r.Ticker, Timestamp: r.Timestamp.UTC()}
}

// RowKey is the (ticker, ts) uniqueness key of a persisted row.
type RowKey struct {
	Ticker    string
	Timestamp time.Time
}
