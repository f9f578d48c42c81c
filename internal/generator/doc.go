// Package generator produces bounded batches of synthetic market ticks.
//
// Each run draws a fixed number of records with uniform ticker, price, and
// volume, then independently forces the price of each record to 0 with a
// configured probability. The zero price models bad upstream data and is a
// deliberate test fixture for the downstream filter, not a bug.
package generator
