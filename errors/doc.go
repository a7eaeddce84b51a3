// Package errors provides coded application errors for dataferry.
//
// Every failure the tool can report carries a machine-readable
// ErrorCode alongside the human-readable message, and maps to a
// process exit code via ExitCode. Errors wrap their cause and
// participate in errors.Is / errors.As chains.
package errors
