// Package log provides helpers for creating a configured slog.Logger.
//
// Without a log file, records below error go to stdout and errors go to
// stderr. With a log file, console output moves to stderr so stdout stays
// free for command output.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace sits below Debug for per-pin codec tracing.
const LevelTrace slog.Level = -8

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout sends each record to every handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// below passes only records under max to h.
type below struct {
	max slog.Level
	h   slog.Handler
}

func (b below) Enabled(ctx context.Context, level slog.Level) bool {
	return level < b.max && b.h.Enabled(ctx, level)
}

func (b below) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= b.max {
		return nil
	}
	return b.h.Handle(ctx, r)
}

func (b below) WithAttrs(attrs []slog.Attr) slog.Handler {
	return below{max: b.max, h: b.h.WithAttrs(attrs)}
}

func (b below) WithGroup(name string) slog.Handler {
	return below{max: b.max, h: b.h.WithGroup(name)}
}

func newHandler(w io.Writer, format string, level slog.Level) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.NewTextHandler(w, opts), nil
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// SetupLogger builds a logger writing to the console and, optionally, a file.
// The returned closers must be closed on exit.
func SetupLogger(logLevel, logFormat, logFile string) (*slog.Logger, []io.Closer, error) {
	return setup(os.Stdout, os.Stderr, logLevel, logFormat, logFile)
}

func setup(stdout, stderr io.Writer, logLevel, logFormat, logFile string) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(logLevel)
	var handlers fanout

	if logFile == "" {
		out, err := newHandler(stdout, logFormat, level)
		if err != nil {
			return nil, nil, err
		}
		errOut, _ := newHandler(stderr, logFormat, slog.LevelError)
		handlers = append(handlers, below{max: slog.LevelError, h: out}, errOut)
		return slog.New(handlers), nil, nil
	}

	console, err := newHandler(stderr, logFormat, level)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	file, _ := newHandler(f, logFormat, level)
	handlers = append(handlers, console, file)
	return slog.New(handlers), []io.Closer{f}, nil
}
