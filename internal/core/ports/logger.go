package ports

import "io"

// Logger is the application-wide diagnostic logger. Progress goes through
// the Renderer; the logger carries warnings, errors and summary lines.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning.
	Warn(msg string)

	// Error logs an error, unwrapping wrapped causes and key-value context.
	Error(err error)

	// SetOutput redirects log output, mainly for tests.
	SetOutput(w io.Writer)
}
