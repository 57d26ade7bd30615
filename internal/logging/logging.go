// Package logging routes application logs to a file so they never
// interfere with the terminal UI.
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// EnvLogLevel selects the minimum level (debug, info, warn, error)
const EnvLogLevel = "CHARLA_LOG_LEVEL"

// Logger is the global slog instance for the application
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// DefaultPath returns ~/.charla/logs/charla.log
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".charla", "logs", "charla.log"), nil
}

// Init initializes the logging system, writing logs to ~/.charla/logs/charla.log
// Uses text format for human readability.
func Init() (io.Closer, error) {
	logPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return InitFile(logPath)
}

// InitFile installs a text handler appending to path as the default logger.
// The returned closer closes the log file.
func InitFile(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv(EnvLogLevel)),
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// Discard installs a logger that drops everything
func Discard() {
	Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	slog.SetDefault(Logger)
	log.SetOutput(io.Discard)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
