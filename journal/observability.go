package journal

// Logger interface for SQL query logging, operational information, warnings, and error reporting.
//
// It is shaped after log/slog so a *slog.Logger satisfies it directly, while
// keeping this package free of a logging dependency. Journal stores treat a
// nil Logger as "logging disabled".
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
