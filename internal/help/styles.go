// Package help styling definitions.
// This file defines the lipgloss styles behind each named decoration.

package help

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Decoration names a text decoration applied to help and diagnostic output.
type Decoration string

// Decoration values.
const (
	Alert     Decoration = "alert"
	Highlight Decoration = "highlight"
)

// Styles holds all the lipgloss styles used for decorated output.
type Styles struct {
	// Alert is the style for error lines (red).
	Alert lipgloss.Style

	// Highlight is the style for the banner (light yellow).
	Highlight lipgloss.Style
}

// DefaultStyles returns the standard styles bound to renderer r.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return Styles{
		Alert:     base.Foreground(lipgloss.Color("1")),  // Red
		Highlight: base.Foreground(lipgloss.Color("11")), // Light yellow
	}
}

// Decorator applies named decorations. A plain decorator returns text
// unchanged, so its output equals a coloured decorator's output with the
// escape sequences stripped.
type Decorator struct {
	styles Styles
	plain  bool
}

// NewDecorator returns a decorator emitting ANSI colour when color is true.
func NewDecorator(color bool) *Decorator {
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Decorator{styles: DefaultStyles(r), plain: !color}
}

// Decorate wraps every non-empty line of text in the named decoration.
// Unknown names leave text untouched.
func (d *Decorator) Decorate(text string, name Decoration) string {
	style, ok := d.style(name)
	if !ok || d.plain {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

func (d *Decorator) style(name Decoration) (lipgloss.Style, bool) {
	switch name {
	case Alert:
		return d.styles.Alert, true
	case Highlight:
		return d.styles.Highlight, true
	default:
		return lipgloss.Style{}, false
	}
}
