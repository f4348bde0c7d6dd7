// ABOUTME: Plain-text logger implementation using Go's standard log package
// ABOUTME: Default logger for local development output

package standard

import (
	"encoding/json"
	"io"
	"log"
	"os"
)

// Logger implements the Logger interface using the standard library
type Logger struct {
	out *log.Logger
	err *log.Logger
}

// NewLogger creates a logger writing to stdout and stderr
func NewLogger() *Logger {
	return NewLoggerTo(os.Stdout, os.Stderr)
}

// NewLoggerTo creates a logger with explicit output streams
func NewLoggerTo(out, errOut io.Writer) *Logger {
	return &Logger{
		out: log.New(out, "", log.LstdFlags),
		err: log.New(errOut, "", log.LstdFlags),
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.write(l.out, "DEBUG", msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.write(l.out, "INFO", msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.write(l.out, "WARN", msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.write(l.err, "ERROR", msg, fields)
}

// write emits a leveled line with the fields rendered as JSON
func (l *Logger) write(logger *log.Logger, level, msg string, fields map[string]interface{}) {
	if len(fields) == 0 {
		logger.Printf("[%s] %s", level, msg)
		return
	}

	encoded, err := json.Marshal(fields)
	if err != nil {
		logger.Printf("[%s] %s (failed to marshal fields: %v)", level, msg, err)
		return
	}

	logger.Printf("[%s] %s %s", level, msg, encoded)
}
