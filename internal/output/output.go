// Package output provides styled terminal output for the pyhatch CLI.
//
// Functions use lipgloss for styling but abstract away the details from
// callers, so every command reports progress the same way.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool

	// stdout/stderr are variables so tests can capture output.
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// SetWriters redirects output streams (useful for testing).
func SetWriters(out, err io.Writer) {
	stdout = out
	stderr = err
}

// Success prints a success message with 🐣 emoji and green color.
// Use this for completed operations.
//
// Example:
//
//	output.Success("Created project: myapp")
func Success(msg string) {
	fmt.Fprintln(stdout, successStyle.Render("🐣 "+msg))
}

// Error prints an error message with ❌ emoji and red color to stderr.
// Use this for failures that need user attention.
func Error(msg string) {
	fmt.Fprintln(stderr, errorStyle.Render("❌ "+msg))
}

// Info prints an informational message in cyan.
// Use this for status updates or explanations.
func Info(msg string) {
	fmt.Fprintln(stdout, infoStyle.Render("ℹ️  "+msg))
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	output.Step("cd myapp")
//	output.Step("source venv/bin/activate")
func Step(msg string) {
	fmt.Fprintln(stdout, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(stdout, stepStyle.Render("🔍 "+msg))
	}
}
