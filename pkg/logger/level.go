package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrInvalidLevel is returned when a severity name cannot be parsed.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel maps a severity name to its [slog.Level]. Names are matched
// case-insensitively and "warning" is accepted as an alias for "warn".
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}
