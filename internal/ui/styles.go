// Package ui provides consistent styling and the live pointer watcher
// for the xmouse CLI
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette - consistent across the application
var (
	ColorPrimary = lipgloss.Color("39")  // Bright blue
	ColorAccent  = lipgloss.Color("205") // Pink/magenta
	ColorSuccess = lipgloss.Color("82")  // Green
	ColorError   = lipgloss.Color("196") // Red

	ColorText   = lipgloss.Color("252") // Light gray
	ColorSubtle = lipgloss.Color("241") // Medium gray
)

var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// Coordinate readout in the watch view
	CoordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSubtle).
			Padding(0, 2)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	ControlKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// FormatControl renders a "key - description" help line fragment.
func FormatControl(key, desc string) string {
	return ControlKeyStyle.Render(key) + " - " + TextStyle.Render(desc)
}
