// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	warnLabel  = color.New(color.FgYellow, color.Bold)
	okLabel    = color.New(color.FgGreen)
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// PrintError writes "Error: <err>" on its own line. The label is colored
// unless color output is disabled (NO_COLOR, or not a terminal).
func PrintError(w io.Writer, err error) {
	Writef(w, "%s %v\n", errorLabel.Sprint("Error:"), err)
}

// Warnf writes a "Warning: " prefixed message.
func Warnf(w io.Writer, format string, args ...any) {
	Writef(w, "%s %s", warnLabel.Sprint("Warning:"), fmt.Sprintf(format, args...))
}

// Successf writes a message prefixed with a check mark.
func Successf(w io.Writer, format string, args ...any) {
	Writef(w, "%s %s", okLabel.Sprint("✓"), fmt.Sprintf(format, args...))
}
