// Package transform cleans accumulated raw batches into one consolidated
// CSV artifact.
//
// Every run re-reads the full staging area, drops records with a
// non-positive price, and computes pct_change against the previous
// surviving record in working order. Working order is staging enumeration
// order then in-file order, not event time; downstream consumers inherit
// that ordering.
package transform
