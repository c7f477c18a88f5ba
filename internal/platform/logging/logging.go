// Package logging builds the service's slog loggers and carries them through
// context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).InfoContext(ctx, "todos loaded", slog.Int("count", n))
//
// Error logs name the operation and the entity, and attach the full chain:
//
//	logger.ErrorContext(ctx, "save failed",
//	    slog.String("operation", "todos/saveNewTodo"),
//	    slog.String("text", text),
//	    slog.Any("error", err),
//	)
//
// Request middleware stores a logger that already carries request_id and
// correlation_id, so FromContext is preferred inside request scope.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/config"
)

// Output formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type contextKey struct{}

// New returns a logger writing to w.
//
// level is one of debug, info, warn or error (case-insensitive); anything
// else means info. Debug level also records the source location. format
// "text" selects slog's text handler; every other value produces JSON.
// Values are passed through the masq redactor before they are written.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if strings.EqualFold(format, FormatText) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// FromConfig is New driven by the log section of the configuration.
func FromConfig(cfg config.LogConfig, w io.Writer) *slog.Logger {
	return New(cfg.Level, cfg.Format, w)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	switch l := strings.ToLower(strings.TrimSpace(level)); l {
	case "debug", "info", "warn", "error":
		_ = lvl.UnmarshalText([]byte(l))
		return lvl
	default:
		return slog.LevelInfo
	}
}
