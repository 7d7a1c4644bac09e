// Package logger provides leveled logging for the fixture generator. Log lines
// go to the console writer, normally stderr, and optionally to an append-mode
// log file, so that stdout stays reserved for the list of created paths.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// DEBUG level for per-template and per-directory detail (verbose mode only)
	DEBUG LogLevel = iota
	// INFO level for run progress
	INFO
	// WARNING level for conditions that do not stop generation
	WARNING
	// ERROR level for failures that abort the run
	ERROR
)

var levelNames = [...]string{DEBUG: "DEBUG", INFO: "INFO", WARNING: "WARNING", ERROR: "ERROR"}

func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

const timestampLayout = "2006-01-02 15:04:05"

// Logger drops messages below level and writes the rest to out.
type Logger struct {
	level LogLevel
	file  *os.File
	out   *log.Logger
}

var globalLogger *Logger

// SetupLogging installs the global logger. DEBUG lines are emitted only when
// verbose is set. A non-empty logFile receives a copy of every line and is
// opened in append mode, so consecutive runs accumulate in one file.
func SetupLogging(console io.Writer, verbose bool, logFile string) error {
	l := &Logger{level: INFO}
	if verbose {
		l.level = DEBUG
	}

	output := console
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", logFile, err)
		}
		l.file = f
		output = io.MultiWriter(console, f)
	}

	l.out = log.New(output, "", 0)
	globalLogger = l
	return nil
}

// Close closes the log file if one was opened. It is safe to call more than once.
func Close() error {
	if globalLogger == nil || globalLogger.file == nil {
		return nil
	}
	err := globalLogger.file.Close()
	globalLogger.file = nil
	return err
}

// Debug logs a debug-level message (only shown in verbose mode).
func Debug(format string, args ...any) {
	logMessage(DEBUG, format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logMessage(INFO, format, args...)
}

// Warning logs a warning message.
func Warning(format string, args ...any) {
	logMessage(WARNING, format, args...)
}

// Error logs an error message.
func Error(format string, args ...any) {
	logMessage(ERROR, format, args...)
}

// LogFileError records a filesystem operation that failed on a single path.
//
//	2026-01-14 10:23:45 [ERROR] Failed to create file
//	  Path: tests/series_0/Extras/whitelisted_file.txt
//	  Reason: open ...: permission denied
func LogFileError(op string, path string, err error) {
	logMessage(ERROR, "Failed to %s\n  Path: %s\n  Reason: %v", op, path, err)
}

// LogFileWarning records a path that was left untouched.
func LogFileWarning(path string, reason string) {
	logMessage(WARNING, "Skipped path\n  Path: %s\n  Reason: %s", path, reason)
}

// logMessage falls back to the standard logger until SetupLogging is called.
func logMessage(level LogLevel, format string, args ...any) {
	if globalLogger == nil {
		log.Printf(format, args...)
		return
	}
	if level < globalLogger.level {
		return
	}

	globalLogger.out.Printf("%s [%s] %s", time.Now().Format(timestampLayout), level, fmt.Sprintf(format, args...))
}
