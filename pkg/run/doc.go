// Package run orchestrates one collection run end to end: output directory
// layout, sequential per-category collection with fault isolation,
// statistics aggregation, and the final summary report.
//
// The pipeline is strictly sequential across categories. There are no
// concurrent collectors and no shared mutable state beyond the single
// statistics aggregator, which is only ever touched by the currently
// running collector. Cancellation is process-level: an interrupt produces
// a clean log line and an immediate exit, leaving partially written
// category files in place.
package run
