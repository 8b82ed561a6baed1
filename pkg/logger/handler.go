package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// timeLayout renders wall-clock timestamps with millisecond precision,
// e.g. "2025-08-25 13:45:01,123".
const timeLayout = "2006-01-02 15:04:05,000"

// LineHandler is a [slog.Handler] that renders each record as a single text line:
//
//	<timestamp> - <LEVELNAME> - <message>
//
// The three fields are joined with " - " and the message is written verbatim,
// with no sanitization, escaping, or truncation. Attributes, if any, follow the
// message as space-separated key=value pairs; open group names qualify keys
// with a dot. Every record is written with a single Write call under a mutex
// shared by all clones of the handler, so concurrent lines never interleave.
type LineHandler struct {
	level slog.Leveler

	mu  *sync.Mutex
	out io.Writer

	attrs  string
	groups string
}

// LineHandlerOptions configures a LineHandler.
type LineHandlerOptions struct {
	// Level is the minimum severity the handler writes. Records below it are
	// dropped before being rendered. Defaults to [DefaultLevel].
	Level slog.Leveler
}

// NewLineHandler creates a new LineHandler instance writing to out.
func NewLineHandler(out io.Writer, opts *LineHandlerOptions) *LineHandler {
	handler := &LineHandler{
		level: DefaultLevel,
		mu:    &sync.Mutex{},
		out:   out,
	}

	if opts != nil && opts.Level != nil {
		handler.level = opts.Level
	}

	return handler
}

// Enabled reports whether records at the given level are written.
func (h *LineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle renders the record and writes it to the sink as one line.
// A record with a zero time is stamped at write time.
func (h *LineHandler) Handle(_ context.Context, r slog.Record) error {
	t := r.Time
	if t.IsZero() {
		t = time.Now()
	}

	buf := make([]byte, 0, len(timeLayout)+len(r.Message)+len(h.attrs)+16)
	buf = t.AppendFormat(buf, timeLayout)
	buf = append(buf, " - "...)
	buf = append(buf, r.Level.String()...)
	buf = append(buf, " - "...)
	buf = append(buf, r.Message...)
	buf = append(buf, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.groups, a)
		return true
	})
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf)
	return err
}

// WithAttrs returns a handler whose lines carry the given attributes after the message.
func (h *LineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	buf := []byte(h.attrs)
	for _, a := range attrs {
		buf = appendAttr(buf, h.groups, a)
	}

	h2 := *h
	h2.attrs = string(buf)
	return &h2
}

// WithGroup returns a handler that qualifies subsequent attribute keys with name.
func (h *LineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	h2 := *h
	h2.groups = h.groups + name + "."
	return &h2
}

func appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, groupPrefix, ga)
		}
		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, prefix...)
	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	return fmt.Appendf(buf, "%v", a.Value.Any())
}
