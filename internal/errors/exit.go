package errors

import "fmt"

// Process exit codes.
const (
	// ExitSuccess means the command completed.
	ExitSuccess = 0

	// ExitUser means the user gave ddx something it could not work
	// with: bad input, bad flags, bad configuration.
	ExitUser = 1

	// ExitSystem means the environment failed ddx: I/O, permissions,
	// missing directories.
	ExitSystem = 2
)

// ExitError carries the process exit code a failure should produce and
// an optional suggestion printed under the error message. main
// recovers it from the error chain with As.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

// NewExitError pairs err with an exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError marks err as the user's to fix, with a suggestion
// saying how.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError marks err as an environment failure, with a
// suggestion saying where to look.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// NewConfigError marks err as a configuration problem and points the
// user at ddx debug.
func NewConfigError(err error) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: "Run: ddx debug"}
}

// Error returns the underlying message, or the exit code when no
// underlying error exists.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap exposes the underlying error to Is and As.
func (e *ExitError) Unwrap() error { return e.Err }
