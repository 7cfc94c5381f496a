package birel

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with birel-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithName adds a name field to the logger (useful for telling several
// relations apart in one process).
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("relation", name),
	}
}

// LogCascade logs a removal that cascaded into the opposite index.
func (l *Logger) LogCascade(side Side, key any, removed int) {
	if removed == 0 {
		return
	}
	l.Debug("cascading remove completed",
		"side", side.String(),
		"key", key,
		"removed", removed,
	)
}

// LogConflict logs a rejected bijection write.
func (l *Logger) LogConflict(err error) {
	l.Debug("bijection write rejected",
		"error", err,
	)
}

// LogClear logs a clear operation.
func (l *Logger) LogClear(removed int) {
	l.Debug("relation cleared",
		"removed", removed,
	)
}

// LogInvert logs an inversion.
func (l *Logger) LogInvert(pairs int) {
	l.Debug("relation inverted",
		"pairs", pairs,
	)
}
