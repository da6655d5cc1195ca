package logging

import (
	"context"
	"io"
	"log/slog"
)

// Tee returns a handler that forwards records to every given handler.
// It is used to mirror console logs into a file when --log-file is set.
// A single handler is returned unwrapped; no handlers yields a handler
// that discards everything.
func Tee(handlers ...slog.Handler) slog.Handler {
	switch len(handlers) {
	case 0:
		return slog.NewTextHandler(io.Discard, nil)
	case 1:
		return handlers[0]
	}
	return teeHandler(handlers)
}

type teeHandler []slog.Handler

// Enabled reports whether any underlying handler accepts the level.
func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle forwards the record to every enabled handler and returns the
// first error encountered, after all handlers have run.
func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range t {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithGroup(name)
	}
	return out
}
