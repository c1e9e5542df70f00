// Package logging defines a minimal structured-logging interface used across
// the project, with adapters for log/slog and zap.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "request finished", "path", "/auth/login", "status", 200)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Config selects and tunes a Logger implementation.
type Config struct {
	// Backend is "zap" (default) or "slog".
	Backend string
	// Level is one of debug, info, warn, error.
	Level string
	// Encoding is "json" or "console" ("text" for slog).
	Encoding string
}

// New builds a Logger writing to w according to cfg.
func New(cfg Config, w io.Writer) (Logger, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", "zap":
		return NewZapLogger(cfg, w), nil
	case "slog":
		var h slog.Handler
		opts := &slog.HandlerOptions{Level: slogLevel(cfg.Level)}
		if strings.ToLower(cfg.Encoding) == "json" {
			h = slog.NewJSONHandler(w, opts)
		} else {
			h = slog.NewTextHandler(w, opts)
		}
		return NewSlogLogger(slog.New(h)), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", cfg.Backend)
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
