// Package logging provides centralized logging functionality for the application.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel represents the logging level.
type LogLevel string

const (
	// LevelDebug for detailed troubleshooting information.
	LevelDebug LogLevel = "debug"
	// LevelInfo for general operational information.
	LevelInfo LogLevel = "info"
	// LevelWarn for potentially harmful situations.
	LevelWarn LogLevel = "warn"
	// LevelError for error events that might still allow the application to continue.
	LevelError LogLevel = "error"
)

var (
	// defaultLogger is the default logger instance.
	defaultLogger *slog.Logger
)

// init initializes the default logger. Logs go to stderr; stdout carries the report.
func init() {
	SetupLogger(os.Stderr, LevelFromEnv())
}

// LevelFromEnv reads LOG_LEVEL, defaulting to info.
func LevelFromEnv() LogLevel {
	level := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if level == "" {
		return LevelInfo
	}
	return LogLevel(level)
}

// ParseLevel maps a LogLevel onto a slog.Level. Unknown values map to info.
func ParseLevel(level LogLevel) slog.Level {
	switch LogLevel(strings.ToLower(string(level))) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger configures the logger with the specified output and level.
func SetupLogger(w io.Writer, level LogLevel) {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	handler := slog.NewTextHandler(w, opts)
	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// Debug logs a message at debug level.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs a message at info level.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs a message at warn level.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs a message at error level.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// GetLogger returns the default logger.
func GetLogger() *slog.Logger {
	return defaultLogger
}

// MaskSensitive masks sensitive data such as API keys for logging.
func MaskSensitive(value string) string {
	if value == "" {
		return "<not set>"
	}
	if len(value) <= 4 {
		return "<set>"
	}
	return value[:4] + "..." + strings.Repeat("*", 3)
}
