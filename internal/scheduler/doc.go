// Package scheduler triggers full pipeline runs on a cron cadence.
//
// Runs are serialized: a tick that fires while the previous run is still in
// flight is skipped and logged. Each step of a run gets a bounded retry
// count with a fixed delay; a step that exhausts its retries fails the run.
// Recovery by re-running is safe because the pipeline is idempotent.
package scheduler
