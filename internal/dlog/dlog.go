// Package dlog provides the leveled diagnostic logger used by the
// NJStream command line tools. It writes to stderr so that record
// output on stdout stays clean for piping.
package dlog

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Level is a log verbosity level.
type Level int

const (
	// LevelError logs only errors.
	LevelError Level = iota
	// LevelWarn logs warnings and errors.
	LevelWarn
	// LevelInfo logs informational messages too. The default.
	LevelInfo
	// LevelDebug logs everything.
	LevelDebug
)

var (
	current = LevelInfo
	logger  = log.New(os.Stderr, "", 0)
)

// SetLevel sets the verbosity by name (error, warn, info, debug).
func SetLevel(name string) error {
	switch strings.ToLower(name) {
	case "error":
		current = LevelError
	case "warn":
		current = LevelWarn
	case "info":
		current = LevelInfo
	case "debug":
		current = LevelDebug
	default:
		return fmt.Errorf("unknown log level %q", name)
	}
	return nil
}

// Error logs an error message.
func Error(args ...interface{}) {
	write(LevelError, "ERROR", args)
}

// Warn logs a warning message.
func Warn(args ...interface{}) {
	write(LevelWarn, "WARN", args)
}

// Info logs an informational message.
func Info(args ...interface{}) {
	write(LevelInfo, "INFO", args)
}

// Debug logs a debug message.
func Debug(args ...interface{}) {
	write(LevelDebug, "DEBUG", args)
}

func write(level Level, tag string, args []interface{}) {
	if level > current {
		return
	}
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, tag)
	for _, arg := range args {
		parts = append(parts, fmt.Sprintf("%v", arg))
	}
	logger.Println(strings.Join(parts, "|"))
}
