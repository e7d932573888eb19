// Package input provides interactive terminal input for pyhatch's
// --interactive mode.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Reader prompts for values on a terminal. The zero value is not usable;
// construct with New.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Reader. Pass nil for in/out to use stdin/stdout.
func New(in io.Reader, out io.Writer) *Reader {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Reader{in: bufio.NewReader(in), out: out}
}

// Prompt asks the user for text input with an optional default value.
// If the user presses Enter without typing anything, the default is returned.
//
// Example:
//
//	author := r.Prompt("Author", "Your Name")
//	// Displays: Author (Your Name): _
func (r *Reader) Prompt(message, defaultValue string) string {
	if defaultValue != "" {
		fmt.Fprint(r.out, promptStyle.Render(message)+" "+
			hintStyle.Render(fmt.Sprintf("(%s)", defaultValue))+": ")
	} else {
		fmt.Fprint(r.out, promptStyle.Render(message)+": ")
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		return defaultValue
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue
	}

	return line
}

// Confirm asks the user a yes/no question.
// Returns true if the user answers yes (y/Y/yes/YES), false otherwise.
// If defaultYes is true, pressing Enter returns true.
func (r *Reader) Confirm(message string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Fprint(r.out, promptStyle.Render(message)+" "+hintStyle.Render(hint)+": ")

	line, err := r.in.ReadString('\n')
	if err != nil {
		return defaultYes
	}

	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" {
		return defaultYes
	}

	return line == "y" || line == "yes"
}
