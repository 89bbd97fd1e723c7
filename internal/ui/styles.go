package ui

import (
	"github.com/charmbracelet/lipgloss"

	"termdeck/internal/frame"
)

// Styles maps frame style intents to terminal styles.
type Styles struct {
	Dim     lipgloss.Style
	DimBold lipgloss.Style
	Bold    lipgloss.Style
	Inverse lipgloss.Style
}

// DefaultStyles returns the presenter's styles.
func DefaultStyles() Styles {
	return Styles{
		Dim:     lipgloss.NewStyle().Faint(true),
		DimBold: lipgloss.NewStyle().Faint(true).Bold(true),
		Bold:    lipgloss.NewStyle().Bold(true),
		Inverse: lipgloss.NewStyle().Reverse(true),
	}
}

// Render styles one frame line. Plain lines are returned untouched.
func (s Styles) Render(l frame.Line) string {
	switch l.Style {
	case frame.Dim:
		return s.Dim.Render(l.Text)
	case frame.DimBold:
		return s.DimBold.Render(l.Text)
	case frame.Bold:
		return s.Bold.Render(l.Text)
	case frame.Inverse:
		return s.Inverse.Render(l.Text)
	default:
		return l.Text
	}
}
