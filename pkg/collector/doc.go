// Package collector retrieves a category's events across the full
// collection window without ever holding more than one batch in memory.
//
// Three retrieval strategies exist, selected by the category descriptor:
//
//   - Paginated: walks the window newest-to-oldest in fixed-size batches,
//     advancing an exclusive upper cursor to the oldest timestamp of each
//     processed batch. The strict-less-than cursor rule guarantees no
//     duplicate emission at batch boundaries.
//   - Fixed-ID: issues one bounded query per enumerated event identifier.
//     Used for categories keyed by a short identifier list (hardware
//     faults, reliability records).
//   - Minidump: scans a directory for crash-dump files whose modification
//     time falls inside the window.
//
// Every emitted event has already been normalized by the category's
// strategy. Write failures on individual records are logged and skipped; a
// query failure aborts only the category being collected.
package collector
