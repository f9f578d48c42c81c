// Package pipeline wires the generate, transform, and load steps into one
// sequential run.
//
// Steps run strictly in order and a run aborts on the first failing step.
// Runs are safe to repeat from scratch: the transformer recomputes its
// output from the full staging area and the loader's (ticker, ts) upsert
// key makes re-insertion idempotent.
package pipeline
