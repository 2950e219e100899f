// Package ui renders the user-facing console output of the dotfiles
// commands: progress messages, skip warnings, verbose detail and errors.
// Diagnostic logging goes through pkg/logging instead.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style names defined in styles.yaml
const (
	StyleMessage = "Message"
	StyleWarning = "Warning"
	StyleError   = "Error"
	StyleVerbose = "Verbose"
)

// Printer writes styled lines to an output stream
type Printer struct {
	out     io.Writer
	verbose bool
	styles  map[string]lipgloss.Style
}

// NewPrinter creates a printer for out. Verbose lines are dropped unless
// verbose is set. Colour follows the terminal capabilities of out and is
// disabled by NO_COLOR.
func NewPrinter(out io.Writer, verbose bool) *Printer {
	renderer := lipgloss.NewRenderer(out)
	if termenv.EnvNoColor() {
		renderer.SetColorProfile(termenv.Ascii)
	}

	cfg, err := ParseStyles(embeddedStyles)
	if err != nil {
		cfg = StylesConfig{}
	}

	return &Printer{
		out:     out,
		verbose: verbose,
		styles:  buildStyles(renderer, cfg),
	}
}

// Verbose reports whether verbose lines are printed
func (p *Printer) Verbose() bool {
	return p.verbose
}

// Message prints a progress message
func (p *Printer) Message(format string, args ...interface{}) {
	p.print(StyleMessage, format, args...)
}

// Warning prints a warning, used for skipped items
func (p *Printer) Warning(format string, args ...interface{}) {
	p.print(StyleWarning, format, args...)
}

// Error prints an error
func (p *Printer) Error(format string, args ...interface{}) {
	p.print(StyleError, format, args...)
}

// Detail prints a line only in verbose mode
func (p *Printer) Detail(format string, args ...interface{}) {
	if !p.verbose {
		return
	}
	p.print(StyleVerbose, format, args...)
}

func (p *Printer) print(styleName, format string, args ...interface{}) {
	text := fmt.Sprintf(format, args...)
	if style, ok := p.styles[styleName]; ok {
		text = style.Render(text)
	}
	fmt.Fprintln(p.out, text)
}
