// Package ui renders index snapshots for the terminal: entry lines, the
// sideways tree view, the bucket table, and walk summaries. Output is
// styled only when stdout is a TTY.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - single lime accent over grays.
const (
	ColorLime     = "154" // Primary accent
	ColorWhite    = "255" // Headers
	ColorGray     = "245" // Secondary text, labels
	ColorDarkGray = "238" // Separators
	ColorRed      = "196" // Errors
)

// Styles holds the styles used for rendering.
type Styles struct {
	Header lipgloss.Style
	Name   lipgloss.Style
	Label  lipgloss.Style
	Dim    lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns styled components for TTY output.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		Name:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLime)),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
	}
}

// PlainStyles returns unstyled components for non-TTY output.
func PlainStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle(),
		Name:   lipgloss.NewStyle(),
		Label:  lipgloss.NewStyle(),
		Dim:    lipgloss.NewStyle(),
		Error:  lipgloss.NewStyle(),
	}
}
