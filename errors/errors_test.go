package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := New(ErrCodeValidationFailure, "mismatch")
	if got := err.Error(); got != "VALIDATION_FAILURE: mismatch" {
		t.Errorf("Error() = %q", got)
	}

	withCause := New(ErrCodeChannelFault, "boom").WithCause(stderrors.New("inner"))
	if !strings.Contains(withCause.Error(), "cause: inner") {
		t.Errorf("Error() = %q, expected cause", withCause.Error())
	}
}

func TestUnwrap(t *testing.T) {
	inner := stderrors.New("inner")
	err := ChannelFault("producer", inner)
	if !stderrors.Is(err, inner) {
		t.Error("errors.Is failed to find the cause")
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"app error", ValidationFailure(2), ErrCodeValidationFailure},
		{"wrapped app error", ChannelFault("consumer", stderrors.New("x")), ErrCodeChannelFault},
		{"plain error", stderrors.New("plain"), ErrCodeInternal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Code(tc.err); got != tc.want {
				t.Errorf("Code() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"invalid input", InvalidInput("size must be >= 0"), ExitUsage},
		{"validation failure", ValidationFailure(1), ExitFailure},
		{"plain error", stderrors.New("x"), ExitFailure},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCode(tc.err); got != tc.want {
				t.Errorf("ExitCode() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestWithDetail(t *testing.T) {
	err := New(ErrCodeDataLoad, "bad csv").WithDetail("row", 7)
	if err.Details["row"] != 7 {
		t.Errorf("Details = %v", err.Details)
	}
}
