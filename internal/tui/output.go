// Package tui provides terminal output and prompts for seal.
package tui

import (
	"io"

	"github.com/mrz1836/seal/internal/constants"
)

// Output provides methods for structured output to a terminal.
type Output interface {
	// Success prints a success message.
	Success(msg string)
	// Error prints an error message.
	Error(err error)
	// Warning prints a warning message.
	Warning(msg string)
	// Info prints an informational message.
	Info(msg string)
	// JSON outputs a value as formatted JSON.
	JSON(v any) error
}

// NewOutput creates the appropriate output based on format.
// "json" selects JSONOutput; anything else is styled text.
func NewOutput(w io.Writer, format string) Output {
	if format == constants.OutputFormatJSON {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}
