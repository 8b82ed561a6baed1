// Package logger provides a minimal logging convenience layer: timestamped,
// severity-filtered text lines written synchronously to a single sink. A
// process-wide Logger is configured at package load and backs the package-level
// functions; explicit handles can be constructed with New for callers that
// prefer dependency injection.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// DefaultLevel is the minimum severity written when no level is configured.
// Records below it are dropped without being rendered.
const DefaultLevel = slog.LevelInfo

// Logger writes leveled, timestamped text lines to a single sink.
// It is immutable after construction and safe for concurrent use.
type Logger struct {
	output io.Writer
	level  slog.Leveler

	sl *slog.Logger
}

// New creates a new Logger instance.
// Without options it writes to standard error and drops records below [DefaultLevel].
func New(opts ...Opt) *Logger {
	logger := &Logger{
		output: os.Stderr,
		level:  DefaultLevel,
	}

	for _, opt := range opts {
		opt(logger)
	}

	logger.sl = slog.New(NewLineHandler(logger.output, &LineHandlerOptions{Level: logger.level}))

	return logger
}

// Opt represents an option that can be passed to New.
type Opt func(*Logger)

// WithOutput sets the sink the logger writes to.
func WithOutput(w io.Writer) Opt {
	return func(l *Logger) {
		l.output = w
	}
}

// WithLevel sets the minimum severity the logger writes.
func WithLevel(level slog.Leveler) Opt {
	return func(l *Logger) {
		l.level = level
	}
}

// Info logs the provided message at [slog.LevelInfo].
func (l *Logger) Info(msg string) {
	l.sl.Info(msg)
}

// Debug logs the provided message at [slog.LevelDebug].
func (l *Logger) Debug(msg string) {
	l.sl.Debug(msg)
}

// Error logs the provided message at [slog.LevelError].
func (l *Logger) Error(msg string) {
	l.sl.Error(msg)
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// Default returns the process-wide Logger used by the package-level functions.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide Logger used by the package-level
// functions. It is safe to call concurrently with logging.
func SetDefault(l *Logger) {
	defaultLogger.Store(l)
}

// Info logs the provided message at [slog.LevelInfo] using the process-wide Logger.
func Info(msg string) {
	Default().Info(msg)
}

// Debug logs the provided message at [slog.LevelDebug] using the process-wide Logger.
func Debug(msg string) {
	Default().Debug(msg)
}

// Error logs the provided message at [slog.LevelError] using the process-wide Logger.
func Error(msg string) {
	Default().Error(msg)
}
