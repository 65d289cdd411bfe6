package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level represents logging severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger is a leveled printf-style logger writing to a file and stdout.
type Logger struct {
	level Level
	std   *log.Logger
	file  *os.File
}

// New creates a logger appending to the given file path.
// An empty path logs to stdout only.
func New(filePath string, level string) (*Logger, error) {
	l := &Logger{level: parseLevel(level)}

	var out io.Writer = os.Stdout
	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %s: %w", filePath, err)
		}
		l.file = f
		out = io.MultiWriter(os.Stdout, f)
	}

	l.std = log.New(out, "", log.LstdFlags)
	return l, nil
}

// Close releases the underlying log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Debug logs a message at DEBUG level.
func (l *Logger) Debug(format string, v ...interface{}) {
	l.output(LevelDebug, "DEBUG", format, v...)
}

// Info logs a message at INFO level.
func (l *Logger) Info(format string, v ...interface{}) {
	l.output(LevelInfo, "INFO", format, v...)
}

// Warn logs a message at WARN level.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.output(LevelWarn, "WARN", format, v...)
}

// Error logs a message at ERROR level.
func (l *Logger) Error(format string, v ...interface{}) {
	l.output(LevelError, "ERROR", format, v...)
}

// Fatal logs a message at ERROR level and exits the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.output(LevelError, "FATAL", format, v...)
	os.Exit(1)
}

func (l *Logger) output(level Level, tag string, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	l.std.Printf("[%s] %s", tag, fmt.Sprintf(format, v...))
}

func parseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}
