package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}

	for _, tt := range tests {
		got := LevelFromVerbosity(tt.verbosity)
		if got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestLevelTrace(t *testing.T) {
	if LevelTrace >= slog.LevelDebug {
		t.Error("LevelTrace should be lower than LevelDebug")
	}
}

func TestFormatConstants(t *testing.T) {
	if FormatText != "text" {
		t.Errorf("FormatText = %q, want %q", FormatText, "text")
	}
	if FormatJSON != "json" {
		t.Errorf("FormatJSON = %q, want %q", FormatJSON, "json")
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	if logger == nil {
		t.Fatal("NewDiscard returned nil")
	}

	// Every level must be accepted without output or panic.
	logger.Debug("dropped", "file", "docs/overview.md")
	logger.Info("dropped", "count", 42)
	logger.Warn("dropped")
	logger.Error("dropped", "err", "nothing")
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	if logger == nil {
		t.Fatal("ForTest returned nil")
	}

	// Everything down to trace should be enabled so failures carry the
	// full scan detail.
	ctx := context.Background()
	if !logger.Enabled(ctx, LevelTrace) {
		t.Error("ForTest logger should accept trace records")
	}

	logger.Log(ctx, LevelTrace, "trace from test logger")
	logger.Debug("debug from test logger")
	logger.Info("info from test logger", "test", t.Name())
	logger.Warn("warn from test logger")
	logger.Error("error from test logger")
}

func TestTestWriter(t *testing.T) {
	tw := &testWriter{t: t}

	tests := []struct {
		name  string
		input string
	}{
		{"with trailing newline", "scan complete\n"},
		{"without trailing newline", "no newline"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tw.Write([]byte(tt.input))
			if err != nil {
				t.Fatalf("Write(%q) error = %v", tt.input, err)
			}
			// The full length must be reported even though the trailing
			// newline is trimmed before t.Log.
			if n != len(tt.input) {
				t.Errorf("Write(%q) = %d, want %d", tt.input, n, len(tt.input))
			}
		})
	}
}

func TestContextCarriage(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		logger := NewDiscard()
		ctx := NewContext(context.Background(), logger)
		if got := FromContext(ctx); got != logger {
			t.Error("FromContext should return the logger stored by NewContext")
		}
	})

	t.Run("missing logger falls back to default", func(t *testing.T) {
		if got := FromContext(context.Background()); got == nil {
			t.Fatal("FromContext should never return nil")
		}
	})

	t.Run("nil context falls back to default", func(t *testing.T) {
		if got := FromContext(nil); got == nil {
			t.Fatal("FromContext should never return nil")
		}
	})
}
