package web

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with the fields cinedex attaches to server logs.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a logger writing to w (stderr if nil) at the level
// given. format is "text" or "json"; the empty string means "text".
func NewLogger(w io.Writer, level, format string) (*Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	var lvl slog.Level
	if len(level) > 0 {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, ef("Invalid log level '%s': %s", level, err)
		}
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, ef("Invalid log format '%s'. Use 'text' or 'json'.", format)
	}
	return &Logger{slog.New(h)}, nil
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithRequest tags every message with a request identifier.
func (l *Logger) WithRequest(id string) *Logger {
	return &Logger{l.Logger.With("request_id", id)}
}
