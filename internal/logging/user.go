package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Console writes user-facing messages with status indicators.
// Every message is also recorded in the log file.
type Console struct {
	out io.Writer
	err io.Writer
	log *Logger

	info    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

// NewConsole creates a Console. Nil writers default to stdout and stderr,
// a nil logger to NewNop.
func NewConsole(out, errw io.Writer, log *Logger) *Console {
	if out == nil {
		out = os.Stdout
	}
	if errw == nil {
		errw = os.Stderr
	}
	if log == nil {
		log = NewNop()
	}

	outRenderer := lipgloss.NewRenderer(out)
	errRenderer := lipgloss.NewRenderer(errw)

	return &Console{
		out:     out,
		err:     errw,
		log:     log,
		info:    outRenderer.NewStyle().Foreground(lipgloss.Color("39")),
		success: outRenderer.NewStyle().Foreground(lipgloss.Color("42")),
		warning: errRenderer.NewStyle().Foreground(lipgloss.Color("214")),
		failure: errRenderer.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Out returns the writer for regular output.
func (c *Console) Out() io.Writer {
	return c.out
}

// Err returns the writer for diagnostics and prompts.
func (c *Console) Err() io.Writer {
	return c.err
}

// Info prints an info message to stdout.
func (c *Console) Info(format string, args ...interface{}) {
	c.write(c.out, c.info.Render("ℹ"), format, args...)
}

// Success prints a success message to stdout.
func (c *Console) Success(format string, args ...interface{}) {
	c.write(c.out, c.success.Render("✓"), format, args...)
}

// Warning prints a warning message to stderr.
func (c *Console) Warning(format string, args ...interface{}) {
	c.write(c.err, c.warning.Render("⚠"), format, args...)
}

// Error prints an error message to stderr.
func (c *Console) Error(format string, args ...interface{}) {
	c.write(c.err, c.failure.Render("✗"), format, args...)
}

// Print prints a line to stdout without an indicator.
func (c *Console) Print(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, msg)
	c.log.Record(msg)
}

func (c *Console) write(w io.Writer, indicator, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(w, "%s %s\n", indicator, msg)
	c.log.Record(msg)
}
