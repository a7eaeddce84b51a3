package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Code extracts the ErrorCode from an error chain.
// Returns ErrCodeInternal for unclassified errors and "" for nil.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// --- Common Error Constructors ---

// ChannelFault creates an AppError for an unexpected failure inside the
// pipeline. Side names the execution unit that observed it ("producer"
// or "consumer").
func ChannelFault(side string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeChannelFault,
		Message: fmt.Sprintf("unexpected fault in %s", side),
		Details: map[string]any{"side": side},
		Cause:   cause,
	}
}

// ValidationFailure creates an AppError for a destination that does not
// match the source after a completed run.
func ValidationFailure(mismatches int) *AppError {
	return &AppError{
		Code:    ErrCodeValidationFailure,
		Message: fmt.Sprintf("destination does not match source (%d mismatched slots)", mismatches),
		Details: map[string]any{"mismatches": mismatches},
	}
}

// InvalidInput creates an AppError for invalid configuration or flags.
func InvalidInput(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// DataLoad creates an AppError for a dataset that could not be read.
func DataLoad(path string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeDataLoad,
		Message: fmt.Sprintf("failed to load data from %s", path),
		Details: map[string]any{"path": path},
		Cause:   cause,
	}
}
