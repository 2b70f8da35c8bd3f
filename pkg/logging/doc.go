// Package logging provides structured logging utilities for eventscope components.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Per-run collection log files (text format) fanned out alongside stderr
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("eventscope", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("collecting category", "category", "SystemErrors")
//	    slog.Error("query failed", "error", err)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("eventscope", "v1.0.0", "warn")
//
// Attaching a collection log file for the duration of a run:
//
//	closeFn, err := logging.AttachRunLog(filepath.Join(runDir, "Collection_Log.txt"))
//	if err != nil { ... }
//	defer closeFn()
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug eventscope collect
//
// If LOG_LEVEL is not set, defaults to INFO level.
package logging
