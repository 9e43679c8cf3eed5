package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"
)

// levelStyle marks and colors one record level in pretty output.
type levelStyle struct {
	prefix string
	color  string
}

var levelStyles = map[slog.Level]levelStyle{
	slog.LevelInfo:  {color: "#667085"},
	slog.LevelWarn:  {prefix: "! ", color: "#F59E0B"},
	slog.LevelError: {prefix: "✗ ", color: "#D93025"},
}

// PrettyHandler is a slog.Handler that writes each record as colored text.
// Attributes follow the message as key=value pairs; groups are not rendered.
type PrettyHandler struct {
	out   *termenv.Output
	min   slog.Level
	attrs []slog.Attr
}

// NewPrettyHandler creates a new PrettyHandler writing to w, or stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	h := &PrettyHandler{out: newOutput(w), min: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.min = opts.Level.Level()
	}
	return h
}

// newOutput honours NO_COLOR and otherwise detects the terminal's color support.
func newOutput(w io.Writer) *termenv.Output {
	profile := termenv.EnvColorProfile()
	if os.Getenv("NO_COLOR") != "" {
		profile = termenv.Ascii
	}
	return termenv.NewOutput(w, termenv.WithProfile(profile), termenv.WithTTY(true))
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.min
}

// Handle writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	style, ok := levelStyles[r.Level]
	if !ok {
		style = levelStyles[slog.LevelInfo]
	}

	var line strings.Builder
	line.WriteString(style.prefix)
	line.WriteString(r.Message)

	appendAttr := func(attr slog.Attr) bool {
		_, _ = fmt.Fprintf(&line, " %s=%s", attr.Key, attr.Value)
		return true
	}
	for _, attr := range h.attrs {
		appendAttr(attr)
	}
	r.Attrs(appendAttr)

	styled := h.out.String(line.String()).Foreground(termenv.RGBColor(style.color))
	_, err := fmt.Fprintln(h.out, styled)
	return err
}

// WithAttrs returns a new Handler that appends attrs to every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		min:   h.min,
		attrs: append(slices.Clip(h.attrs), attrs...),
	}
}

// WithGroup returns h unchanged.
func (h *PrettyHandler) WithGroup(_ string) slog.Handler {
	return h
}
