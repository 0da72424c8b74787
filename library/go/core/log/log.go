package log

// Logger is the logger every connector component receives from its owner.
type Logger interface {
	Structured

	// WithName returns a logger that prefixes entries with the given name.
	WithName(name string) Logger
}

// Structured provides interface for logging using fields.
type Structured interface {
	// Trace logs at Trace log level using fields
	Trace(msg string, fields ...Field)
	// Debug logs at Debug log level using fields
	Debug(msg string, fields ...Field)
	// Info logs at Info log level using fields
	Info(msg string, fields ...Field)
	// Warn logs at Warn log level using fields
	Warn(msg string, fields ...Field)
	// Error logs at Error log level using fields
	Error(msg string, fields ...Field)
	// Fatal logs at Fatal log level using fields
	Fatal(msg string, fields ...Field)
}

// LoggerWith provides interface for logger modifications.
type LoggerWith interface {
	With(fields ...Field) Logger
}

// With for loggers that implement LoggerWith interface, returns logger that
// always adds provided key/value to every log entry. Otherwise returns same logger.
func With(l Logger, fields ...Field) Logger {
	e, ok := l.(LoggerWith)
	if !ok {
		return l
	}

	return e.With(fields...)
}
