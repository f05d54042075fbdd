package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles bundles the row styles for one output destination.
type Styles struct {
	Header      lipgloss.Style
	Regression  lipgloss.Style
	Improvement lipgloss.Style
	Plain       lipgloss.Style
}

// NewStyles builds the style set for w. Mode "always" forces ANSI colors,
// "never" strips them, and "auto" leaves termenv's terminal detection in
// charge.
func NewStyles(w io.Writer, mode string) Styles {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Header:      r.NewStyle().Bold(true),
		Regression:  r.NewStyle().Foreground(lipgloss.Color("196")), // red
		Improvement: r.NewStyle().Foreground(lipgloss.Color("46")),  // green
		Plain:       r.NewStyle(),
	}
}
