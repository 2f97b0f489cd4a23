// Package ui styles the lines qrkeys writes for humans.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("#00D4AA")
	errorColor   = lipgloss.Color("#FF5555")
	successColor = lipgloss.Color("#00FF00")
)

// Printer writes styled lines to w. Colors are only emitted when w is a
// terminal.
type Printer struct {
	w       io.Writer
	success lipgloss.Style
	err     lipgloss.Style
	path    lipgloss.Style
}

// New returns a Printer whose color profile is detected from w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		success: r.NewStyle().Foreground(successColor).Bold(true),
		err:     r.NewStyle().Foreground(errorColor).Bold(true),
		path:    r.NewStyle().Foreground(primaryColor),
	}
}

// Written reports one saved output: "✓ <key> → <path>".
func (p *Printer) Written(key, path string) {
	fmt.Fprintf(p.w, "%s %s → %s\n", p.success.Render("✓"), key, p.path.Render(path))
}

// Error prints "Error: <err>".
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.w, "%s %v\n", p.err.Render("Error:"), err)
}
