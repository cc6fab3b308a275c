package errors

import (
	"errors"
	"fmt"
)

// Exit codes. The tool deliberately exposes only two: anything fatal is 1,
// whether it came from config parsing, validation, a write failure, or a
// deploy subprocess. The user inspects the message, fixes, and reruns.
const (
	// ExitSuccess indicates a clean exit (full deploy success, or the user
	// declined the bootstrap prompt).
	ExitSuccess = 0

	// ExitFailure indicates any fatal error. A completed bootstrap also
	// exits with this code so the run that created the configuration never
	// silently continues into a deployment.
	ExitFailure = 1
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidConfig indicates the configuration document failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoFolders indicates the configured folder list is empty.
	ErrNoFolders = errors.New("no function folders configured")

	// ErrNoFlags indicates the configured flag list is empty.
	ErrNoFlags = errors.New("no deploy flags configured")

	// ErrEditorLaunch indicates the editor subprocess could not be started.
	ErrEditorLaunch = errors.New("launching editor failed")
)

// ExitError wraps an error with an exit code and optional suggestion.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error. May be nil when only the exit code
	// carries meaning (e.g. the forced rerun after bootstrap).
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable hint printed for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewFatal creates an ExitError with ExitFailure and a suggestion.
func NewFatal(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitFailure, Suggestion: suggestion}
}

// Error returns the message of the underlying error, or a generic message
// naming the exit code when no underlying error is present.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error so errors.Is and errors.As can
// examine the chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
