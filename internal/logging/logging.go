package logging

import (
	"io"
	"log/slog"
	"testing"
)

// Format names a log output format as it appears in configuration and
// on the --log-format flag.
type Format string

const (
	// FormatText produces human-readable console output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// LevelTrace is a custom level below slog.LevelDebug for very chatty
// diagnostics (per-file scan detail).
const LevelTrace = slog.LevelDebug - 4

// LevelFromVerbosity maps a -v flag count to a log level.
// Zero (the default) logs warnings and errors only; each extra -v
// lowers the threshold: Info, Debug, then Trace.
func LevelFromVerbosity(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelWarn
	case verbosity == 1:
		return slog.LevelInfo
	case verbosity == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// NewDiscard creates a logger that drops everything, for callers that
// want a real *slog.Logger but no output.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ForTest creates a logger whose output lands in the test log, so it
// surfaces only on failure or under -v. The trace level is enabled to
// capture everything.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(NewHandler(
		&testWriter{t: t},
		&slog.HandlerOptions{Level: LevelTrace},
	))
}

// testWriter adapts testing.T to io.Writer for slog handlers.
type testWriter struct {
	t *testing.T
}

// Write logs p to the test, trimming the trailing newline t.Log would
// double up.
func (w *testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	msg := string(p)
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	w.t.Log(msg)
	return len(p), nil
}
