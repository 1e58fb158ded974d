// Package logging provides levelled stderr logging for uncpath.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	debugTag = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Render("[DEBUG]")
	warnTag  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render("[WARN]")
	errorTag = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("[ERROR]")
)

// Logger handles levelled logging
type Logger struct {
	out   io.Writer
	quiet bool
	debug bool
}

// New creates a new logger writing to stderr
func New(quiet, debug bool) *Logger {
	return NewWithWriter(os.Stderr, quiet, debug)
}

// NewWithWriter creates a logger writing to w
func NewWithWriter(w io.Writer, quiet, debug bool) *Logger {
	return &Logger{out: w, quiet: quiet, debug: debug}
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return NewWithWriter(io.Discard, true, false)
}

// Debug logs a debug message (only when debug mode is enabled)
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.debug {
		fmt.Fprintf(l.out, "%s %s\n", debugTag, fmt.Sprintf(format, args...))
	}
}

// Info logs an info message (hidden in quiet mode)
func (l *Logger) Info(format string, args ...interface{}) {
	if !l.quiet {
		fmt.Fprintf(l.out, "%s\n", fmt.Sprintf(format, args...))
	}
}

// Warn logs a warning message (hidden in quiet mode)
func (l *Logger) Warn(format string, args ...interface{}) {
	if !l.quiet {
		fmt.Fprintf(l.out, "%s %s\n", warnTag, fmt.Sprintf(format, args...))
	}
}

// Error logs an error message (always shown)
func (l *Logger) Error(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "%s %s\n", errorTag, fmt.Sprintf(format, args...))
}
