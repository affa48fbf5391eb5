// Package bootstrap wires up process-level dependencies: logging and the
// embedded database.
package bootstrap

import (
	"fmt"
	"log/slog"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewLogger creates a new slog.Logger instance with the specified log level.
// The handler writes to stderr: on the stdio transport stdout carries MCP
// protocol frames and must stay clean.
func NewLogger(level string) *slog.Logger {
	logLevel := toLevel(level)
	loggerOpts := &slog.HandlerOptions{
		AddSource: logLevel == slog.LevelDebug,
		Level:     logLevel,
	}
	logHandler := slog.NewJSONHandler(os.Stderr, loggerOpts)
	return slog.New(logHandler)
}

// NewSqliteDB opens the embedded SQLite database at the given DSN. The gorm
// logger is discarded for the same stdout-cleanliness reason as above; store
// errors surface through the application logger instead.
func NewSqliteDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database at %q: %w", dsn, err)
	}
	return db, nil
}

// toLevel converts a string representation of a log level to slog.Level.
func toLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
