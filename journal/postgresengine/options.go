package postgresengine

import (
	"github.com/mwolters/before-advice-go/journal"
)

// Option defines a functional option for configuring JournalStore.
type Option func(*JournalStore) error

// WithTableName sets the table name for the JournalStore.
func WithTableName(tableName string) Option {
	return func(js *JournalStore) error {
		if tableName == "" {
			return journal.ErrEmptyTableNameSupplied
		}

		js.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the JournalStore.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Info level: Entry counts and durations (production-safe)
// Warn level: Non-critical issues like failures to close database rows
// Error level: Critical failures that cause operation failures.
func WithLogger(logger journal.Logger) Option {
	return func(js *JournalStore) error {
		js.logger = logger
		return nil
	}
}
