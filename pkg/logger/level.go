package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrInvalidLevel is returned by ParseLevel for unknown level names.
var ErrInvalidLevel = errors.New("invalid log level")

// LevelCritical sits above slog.LevelError for "CRITICAL"/"FATAL" names.
const LevelCritical = slog.Level(12)

// ParseLevel converts a level name such as "INFO" or "warning" into a
// slog.Level. Matching is case-insensitive and surrounding space is ignored.
// An empty name yields INFO.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "", "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "CRITICAL", "FATAL":
		return LevelCritical, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}
}

// WithLevelName is WithLevel for a textual level; unknown names fall back to INFO.
func WithLevelName(name string) Option {
	l, _ := ParseLevel(name)
	return WithLevel(l)
}
