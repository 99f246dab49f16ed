package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/quaywork/warehousectl/internal/workflow"
)

// Exit codes for CLI commands.
const (
	ExitSuccess     = 0 // Successful run, including Cancelled and NoMatches
	ExitFailure     = 1 // Failed mutation, not-found, status mismatch, transport failure
	ExitConfigError = 2 // Missing credentials or required upstream tag
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitConfigError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// exitCodeFor maps a terminal workflow outcome to a process exit code.
func exitCodeFor(o workflow.Outcome) int {
	if !o.Failed() {
		return ExitSuccess
	}
	if o == workflow.OutcomeConfigError {
		return ExitConfigError
	}
	return ExitFailure
}

// finishRun reports a router result: a successful termination prints its
// one-line message; a failed one becomes an ExitError so the message goes
// to stderr with the right exit code.
func finishRun(out io.Writer, res workflow.Result) error {
	if !res.Outcome.Failed() {
		fmt.Fprintln(out, res.Message)
		return nil
	}
	return NewExitError(exitCodeFor(res.Outcome), res.Message)
}

// writeJSON emits data as indented JSON, for commands run with
// --format json.
func writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
