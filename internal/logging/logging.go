// SPDX-License-Identifier: MIT

// Package logging builds the process logger and carries it through
// context.Context.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// New returns a slog.Logger writing to w.
//
// level is one of debug, info, warn, error (anything else means info);
// format "json" selects the JSON handler, anything else the text handler.
func New(level, format string, w io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var handler slog.Handler

	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// key is an unexported type to prevent collisions with other context keys.
type key struct{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// Lookup extracts the logger stored by WithLogger.
func Lookup(ctx context.Context) (*slog.Logger, bool) {
	if ctx == nil {
		return nil, false
	}
	logger, ok := ctx.Value(key{}).(*slog.Logger)

	return logger, ok && logger != nil
}

// FromContext extracts the logger stored by WithLogger, or slog.Default()
// when there is none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := Lookup(ctx); ok {
		return logger
	}

	return slog.Default()
}
