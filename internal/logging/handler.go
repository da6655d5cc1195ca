package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/thoreinstein/ddx/internal/doctor"
)

// Handler renders records as single console lines: kitchen-clock time,
// a level column, the message, then key=value attribute pairs. Output
// is colorized when the writer is a color-capable terminal. Attribute
// values that look like credentials are masked before they reach the
// writer.
type Handler struct {
	level  slog.Leveler
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
	colors *palette
}

// palette holds the color per line element. A nil palette means plain
// text.
type palette struct {
	stamp *color.Color
	trace *color.Color
	debug *color.Color
	info  *color.Color
	warn  *color.Color
	fail  *color.Color
	key   *color.Color
}

func (p *palette) forLevel(l slog.Level) *color.Color {
	switch {
	case l >= slog.LevelError:
		return p.fail
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// NewHandler creates a console text handler. Only opts.Level is
// honored; ReplaceAttr and AddSource are not supported.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{
		out: out,
		mu:  &sync.Mutex{},
	}
	if opts != nil {
		h.level = opts.Level
	}

	if SupportsColor(out) {
		h.colors = &palette{
			stamp: color.New(color.FgHiBlack),
			trace: color.New(color.FgHiBlack),
			debug: color.New(color.FgMagenta),
			info:  color.New(color.FgGreen),
			warn:  color.New(color.FgYellow),
			fail:  color.New(color.FgRed, color.Bold),
			key:   color.New(color.FgCyan),
		}
	}

	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.level != nil {
		min = h.level.Level()
	}
	return level >= min
}

// Handle formats the record. The line is assembled off-lock and
// written in one call so concurrent loggers cannot interleave fields.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var line strings.Builder

	if !r.Time.IsZero() {
		stamp := r.Time.Format(time.Kitchen)
		if h.colors != nil {
			stamp = h.colors.stamp.Sprint(stamp)
		}
		line.WriteString(stamp)
		line.WriteByte(' ')
	}

	// Pad before coloring; escape codes would defeat the width.
	label := fmt.Sprintf("%-5s", levelLabel(r.Level))
	if h.colors != nil {
		label = h.colors.forLevel(r.Level).Sprint(label)
	}
	line.WriteString(label)
	line.WriteByte(' ')
	line.WriteString(r.Message)

	for _, a := range h.attrs {
		h.writeAttr(&line, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&line, a)
		return true
	})
	line.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, line.String())
	return err
}

// levelLabel names the level, giving the custom trace level a proper
// name instead of slog's "DEBUG-4".
func levelLabel(l slog.Level) string {
	if l <= LevelTrace {
		return "TRACE"
	}
	return l.String()
}

func (h *Handler) writeAttr(line *strings.Builder, a slog.Attr) {
	key := a.Key
	if len(h.groups) > 0 {
		key = strings.Join(h.groups, ".") + "." + key
	}

	val := fmt.Sprint(a.Value.Any())
	if doctor.Sensitive(a.Key, val) {
		val = doctor.Mask(val)
	}

	if h.colors != nil {
		key = h.colors.key.Sprint(key)
	}
	fmt.Fprintf(line, " %s=%s", key, val)
}

// WithAttrs returns a Handler that prepends the given attributes to
// every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)
	return &c
}

// WithGroup returns a Handler scoped to the group. Groups are
// rendered by dot-prefixing attribute keys.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.groups = append(h.groups[:len(h.groups):len(h.groups)], name)
	return &c
}

// IsTTY reports whether the writer is a terminal. It recognizes os.File
// and any wrapper exposing an Fd() method. Progress bars and interactive
// prompts should be suppressed when this returns false.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor reports whether the writer accepts ANSI color codes.
// Color is disabled for non-TTY writers, when NO_COLOR is set
// (https://no-color.org), or when TERM is "dumb".
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}
