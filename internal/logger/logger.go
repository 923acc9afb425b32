// Package logger provides leveled logging for doctext.
// Debug, Info and Warn are printed only in verbose mode (--verbose or
// log.verbose); Error is always printed. Output goes to stderr so stdout
// stays free for extracted text and the MCP stdio transport.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func write(always bool, level, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !always && !verbose {
		return
	}
	fmt.Fprintf(output, "["+level+"] "+prefix+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write(false, "DEBUG", "", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write(false, "INFO", "", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	write(false, "WARN", "", format, args...)
}

// Error prints a message regardless of verbose mode.
func Error(format string, args ...any) {
	write(true, "ERROR", "", format, args...)
}

// Scoped tags every message with a request or job identifier.
type Scoped struct {
	prefix string
}

// With returns a Scoped logger whose messages start with "id: ".
func With(id string) Scoped {
	if id == "" {
		return Scoped{}
	}
	return Scoped{prefix: id + ": "}
}

// Debug prints a tagged message if verbose mode is enabled.
func (s Scoped) Debug(format string, args ...any) {
	write(false, "DEBUG", s.prefix, format, args...)
}

// Info prints a tagged message if verbose mode is enabled.
func (s Scoped) Info(format string, args ...any) {
	write(false, "INFO", s.prefix, format, args...)
}

// Warn prints a tagged message if verbose mode is enabled.
func (s Scoped) Warn(format string, args ...any) {
	write(false, "WARN", s.prefix, format, args...)
}

// Error prints a tagged message regardless of verbose mode.
func (s Scoped) Error(format string, args ...any) {
	write(true, "ERROR", s.prefix, format, args...)
}
