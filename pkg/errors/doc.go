// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeQueryFailure,
//	    "failed to query event source",
//	    cause,
//	    map[string]interface{}{
//	        "category": "HardwareErrors",
//	        "log":      "System",
//	    },
//	)
package errors
