// Package log is the process-wide structured logger for go-arfocus, a
// thin veneer over slog. Init picks the handler once; the package-level
// helpers write through it.
package log

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	logger *slog.Logger
	once   sync.Once
)

// Init configures the global logger. Output is JSON when
// GO_ENV=production, human-readable text otherwise. Only the first
// call takes effect; later calls (and L before any Init) see the
// already-configured logger.
func Init(level string) {
	once.Do(func() {
		opts := &slog.HandlerOptions{Level: parseLevel(level)}

		if os.Getenv("GO_ENV") == "production" {
			logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
		} else {
			logger = slog.New(slog.NewTextHandler(os.Stdout, opts))
		}
		slog.SetDefault(logger)
	})
}

// parseLevel maps a level name to slog's levels. Unknown names mean
// info rather than an error; logging config should never stop startup.
func parseLevel(level string) slog.Level {
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

// L returns the global logger, initializing it at info level if Init
// was never called.
func L() *slog.Logger {
	if logger == nil {
		Init("info")
	}
	return logger
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	L().Debug(msg, args...)
}

// Info logs at info level.
func Info(msg string, args ...any) {
	L().Info(msg, args...)
}

// Warn logs at warn level.
func Warn(msg string, args ...any) {
	L().Warn(msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	L().Error(msg, args...)
}

// With returns a child logger carrying the given attributes.
func With(args ...any) *slog.Logger {
	return L().With(args...)
}
