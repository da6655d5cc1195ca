// Package errors is the single error vocabulary of the ddx CLI.
//
// It re-exports the cockroachdb/errors constructors and inspection
// helpers ([New], [Newf], [Wrap], [Wrapf], [Is], [As]) so the rest of
// the codebase never imports two error packages, and layers on the
// pieces ddx itself needs: sentinels for the failure conditions
// commands branch on, and [ExitError] for mapping failures to process
// exit codes.
//
// # Sentinels
//
// [ErrNotFound] (a block reference resolved to nothing), [ErrNoProject]
// (no ddx_project.yml in the project directory), [ErrInvalidFormat]
// (an unknown export format), and [ErrInvalidConfig] (user settings
// failed validation) are compared with [Is] after any amount of
// wrapping:
//
//	if errors.Is(err, errors.ErrNoProject) {
//	    // tell the user where ddx looked
//	}
//
// # Exit codes
//
// ExitSuccess (0), ExitUser (1) for mistakes the user can correct, and
// ExitSystem (2) for environmental failures (I/O, permissions). main
// recovers the code and the optional suggestion from an [ExitError]:
//
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
//
// [NewUserError], [NewSystemError], and [NewConfigError] build the
// common shapes.
package errors
