// Package logging provides leveled, optionally colored console logging
// with an optional plain file sink.
package logging

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/framefold/instancer/internal/config"
	"github.com/framefold/instancer/internal/term"
)

// SuccessLevel sits between info and warn so success lines survive any
// level filter that keeps warnings.
const SuccessLevel = log.InfoLevel + 1

const timeFormat = "2006-01-02 15:04:05"

func newStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[SuccessLevel] = lipgloss.NewStyle().
		SetString("SUCCESS").
		Bold(true).
		Foreground(lipgloss.Color("42"))
	return styles
}

// Logger writes to the console (stderr) and, when configured, appends the
// same lines uncolored to a log file. Safe for concurrent use.
type Logger struct {
	console *log.Logger
	sink    *log.Logger
	file    *os.File
}

// NewLogger builds a logger from cfg. Call Close when done if LogFile was
// set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	console := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
	})
	console.SetStyles(newStyles())
	console.SetColorProfile(term.Profile(cfg.ColorMode))
	console.SetLevel(log.DebugLevel)

	l := &Logger{console: console}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		sink := log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			TimeFormat:      timeFormat,
		})
		sink.SetStyles(newStyles())
		sink.SetColorProfile(termenv.Ascii)
		sink.SetLevel(log.DebugLevel)
		l.sink = sink
		l.file = f
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.sink = nil
		return err
	}
	return nil
}

func (l *Logger) logf(level log.Level, format string, args ...interface{}) {
	l.console.Logf(level, format, args...)
	if l.sink != nil {
		l.sink.Logf(level, format, args...)
	}
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(log.InfoLevel, format, args...)
}

// Success logs at SUCCESS level.
func (l *Logger) Success(format string, args ...interface{}) {
	l.logf(SuccessLevel, format, args...)
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(log.WarnLevel, format, args...)
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(log.ErrorLevel, format, args...)
}

// Debug logs at DEBUG level only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.logf(log.DebugLevel, format, args...)
}
