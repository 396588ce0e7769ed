package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Printer writes status lines. Styling is applied only when styled is set,
// so piped output stays plain.
type Printer struct {
	w      io.Writer
	styled bool
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, styled bool) *Printer {
	return &Printer{w: w, styled: styled}
}

// StderrPrinter returns a Printer on stderr, styled when stderr is a terminal.
func StderrPrinter() *Printer {
	return NewPrinter(os.Stderr, IsTerminal(os.Stderr))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(f.Fd())
}

func (p *Printer) Success(msg string) {
	p.print(successStyle, "✓ ", msg)
}

func (p *Printer) Warning(msg string) {
	p.print(warningStyle, "! ", msg)
}

func (p *Printer) Error(msg string) {
	p.print(errorStyle, "✗ ", msg)
}

func (p *Printer) print(style lipgloss.Style, marker, msg string) {
	if p.styled {
		_, _ = fmt.Fprintln(p.w, style.Render(marker+msg))
		return
	}
	_, _ = fmt.Fprintln(p.w, msg)
}
