// Package logx is the leveled logger used by the CLI adapter. It is adapted
// from the teacher project's pkg/common logger: the core engine never
// imports logx directly (it returns Diagnostics and *errx.BuildError
// instead, per spec §9's "no process-wide state" design note), and neither
// do the collaborator packages; only cmd/attackgraph logs.
package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level represents the severity of a log message.
type Level int

const (
	// DebugLevel is for debug messages.
	DebugLevel Level = iota
	// InfoLevel is for informational messages.
	InfoLevel
	// WarnLevel is for warning messages.
	WarnLevel
	// ErrorLevel is for error messages.
	ErrorLevel
)

// String returns the string representation of the level.
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
	default:
		return "UNKNOWN"
	}
}

// Logger is a minimal leveled logger wrapping the standard library's log.Logger.
type Logger struct {
	mu     sync.Mutex
	level  Level
	logger *log.Logger
}

// New creates a Logger writing to out, with messages below level discarded.
func New(out io.Writer, prefix string, level Level) *Logger {
	return &Logger{level: level, logger: log.New(out, prefix, log.LstdFlags)}
}

// SetLevel updates the minimum level that will be emitted.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) log(level Level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	l.logger.Printf("[%s] %s", level, fmt.Sprintf(format, v...))
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, v ...interface{}) { l.log(DebugLevel, format, v...) }

// Info logs an informational message.
func (l *Logger) Info(format string, v ...interface{}) { l.log(InfoLevel, format, v...) }

// Warn logs a warning message.
func (l *Logger) Warn(format string, v ...interface{}) { l.log(WarnLevel, format, v...) }

// Error logs an error message.
func (l *Logger) Error(format string, v ...interface{}) { l.log(ErrorLevel, format, v...) }

// Default is the package-level logger used by the CLI adapter.
var Default = New(os.Stderr, "", InfoLevel)
