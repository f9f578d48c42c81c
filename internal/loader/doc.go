// Package loader upserts the consolidated artifact into Postgres.
//
// Rows are keyed on (ticker, ts); on conflict the non-key fields are
// overwritten in place, so re-loading the same artifact is idempotent.
// Each row is committed independently: a failure partway through leaves
// earlier rows durable and aborts the run on the failing row. Surfacing
// that partial state to the orchestrator is the intended behavior.
package loader
