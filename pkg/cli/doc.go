// Package cli implements the command-line interface for the eventscope
// diagnostic collection tool.
//
// # Overview
//
// The eventscope CLI collects operating-system diagnostic events - system
// and application errors, unexpected-shutdown and crash signatures,
// hardware faults, reliability records, and crash-dump file metadata -
// over a bounded time window, and produces one export file per category
// plus an aggregate summary report.
//
// # Commands
//
// collect - Run a collection:
//
//	eventscope collect [--hours N] [--output DIR] [--format csv|html|txt]
//
// Collects every category (or the subset named with repeated --category
// flags) over the last N hours into a timestamped run directory. Events
// can be further restricted with repeated --event-id flags or a --filter
// expression over {EventID, Severity, Provider, LogName, Message}.
// With --simulate nothing is written; counts and would-be paths are still
// reported. With --source PATH events come from a recorded YAML fixture
// instead of the host journal.
//
// categories - List categories:
//
//	eventscope categories
//
// Prints each category with its retrieval strategy, backing log, and
// fixed event IDs where applicable.
//
// version - Print build version information.
//
// # Output Layout
//
//	<output-dir>/EventLogs_<timestamp>/
//	  Collection_Log.txt      run log (also mirrored to stderr)
//	  Raw_Logs/               reserved for raw exports
//	  <Category>.csv|html|txt one export per category and format
//	  Summary_Report.html     aggregate counts and recommendations
//
// # Environment Variables
//
//	LOG_LEVEL             Set logging verbosity (debug, info, warn, error)
//	EVENTSCOPE_OUTPUT     Default output directory
//	EVENTSCOPE_DUMP_DIR   Default crash-dump directory
//	EVENTSCOPE_SOURCE     Default event source
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, startup failure, failed categories)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/sysvitals/eventscope/pkg/version.Version=1.0.0'"
package cli
