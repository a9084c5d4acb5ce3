// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "failed to load preset",
//	    err,
//	    map[string]any{
//	        "source": path,
//	        "entry":  index,
//	    },
//	)
//
// Callers branch on the code with IsCode or CodeOf rather than on message
// text.
package errors
