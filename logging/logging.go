// Package logging provides the structured-logging facade used across this
// module. Every package accepts a Logger rather than reaching for a global,
// but a process-global default is available for callers that don't need to
// inject one.
package logging

import "context"

// ANSI color codes for terminal output.
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
	ColorBold   = "\033[1m"
)

// Level represents log levels.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Fields represents structured logging fields.
type Fields map[string]any

// Logger defines the interface the module expects for logging.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)
	Fatal(err error, msg string, fields ...Fields)

	// WithFields returns a logger with preset fields.
	WithFields(fields Fields) Logger

	// WithContext returns a logger that can extract fields from context.
	WithContext(ctx context.Context) Logger

	// SetLevel sets the minimum log level.
	SetLevel(level Level)
}

var globalLogger Logger = NewDefaultLogger()

// SetGlobalLogger sets the global logger instance.
func SetGlobalLogger(logger Logger) {
	if logger == nil {
		globalLogger = &NoOpLogger{}
	} else {
		globalLogger = logger
	}
}

// GetGlobalLogger returns the current global logger.
func GetGlobalLogger() Logger {
	return globalLogger
}

// Package-level logging functions that use the global logger.

func Debug(msg string, fields ...Fields) { globalLogger.Debug(msg, fields...) }

func Info(msg string, fields ...Fields) { globalLogger.Info(msg, fields...) }

func Warn(msg string, fields ...Fields) { globalLogger.Warn(msg, fields...) }

func Error(err error, msg string, fields ...Fields) { globalLogger.Error(err, msg, fields...) }

func Fatal(err error, msg string, fields ...Fields) { globalLogger.Fatal(err, msg, fields...) }

func WithFields(fields Fields) Logger { return globalLogger.WithFields(fields) }

func WithContext(ctx context.Context) Logger { return globalLogger.WithContext(ctx) }

func SetLevel(level Level) { globalLogger.SetLevel(level) }

// DisableColors globally disables color output for the default logger.
func DisableColors() {
	if defaultLogger, ok := globalLogger.(*DefaultLogger); ok {
		defaultLogger.useColors = false
	}
}

// EnableColors globally enables color output for the default logger.
func EnableColors() {
	if defaultLogger, ok := globalLogger.(*DefaultLogger); ok {
		defaultLogger.useColors = true
	}
}
