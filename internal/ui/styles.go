package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the player
const (
	ColorAccent    = "86"  // Cyan/green - titles, focused panel border
	ColorHighlight = "205" // Magenta - default highlight, control panel border
	ColorDanger    = "196" // Red - reload and watch errors
	ColorMuted     = "241" // Gray - hints, unfocused borders
	ColorText      = "252" // Light gray - normal text
)

// Styles contains shared style definitions used across the player.
var Styles = struct {
	Title  lipgloss.Style // Bold accent - header title
	Status lipgloss.Style // Accent - slide counter
	Hint   lipgloss.Style // Muted - key hints
	Error  lipgloss.Style // Danger - status line errors
	Empty  lipgloss.Style // Muted italic - empty panels

	Panel        lipgloss.Style // Element panel border
	PanelFocused lipgloss.Style // Element panel border when focused
	PanelTitle   lipgloss.Style

	Box      lipgloss.Style // Modal box (jump prompt)
	Floating lipgloss.Style // Control panel box
	Key      lipgloss.Style // Key names inside the control panel
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	PanelFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	PanelTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Floating: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Key: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
}

// HighlightStyle returns the style for highlighted list items.
// presentation is the colour the source file asked for; only #hex values are
// understood by the terminal, so CSS colour names fall back to fallback.
func HighlightStyle(presentation, fallback string) lipgloss.Style {
	color := fallback
	if strings.HasPrefix(presentation, "#") {
		color = presentation
	}
	if color == "" {
		color = ColorHighlight
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
}
