// Package batch converts sets of dataset files concurrently.
//
// This package implements:
// - A fixed-size worker pool that runs file conversions in parallel
// - Per-job results with duration, worker id and error
// - Panic isolation so one bad file cannot take down a run
// - The shared load/write path the CLI uses for single conversions too
package batch
