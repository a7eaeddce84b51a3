package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeChannelFault indicates an unexpected internal failure in the
	// bounded channel or in the goroutine driving it.
	ErrCodeChannelFault ErrorCode = "CHANNEL_FAULT"
	// ErrCodeValidationFailure indicates the destination did not match the
	// source after a completed run.
	ErrCodeValidationFailure ErrorCode = "VALIDATION_FAILURE"
	// ErrCodeInvalidInput indicates invalid configuration or flags.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeDataLoad indicates a dataset could not be read or parsed.
	ErrCodeDataLoad ErrorCode = "DATA_LOAD_FAILED"
	// ErrCodeInternal indicates an unclassified internal error.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// Process exit codes reported by the CLI.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps an error to the process exit code the CLI should use.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if Code(err) == ErrCodeInvalidInput {
		return ExitUsage
	}
	return ExitFailure
}
