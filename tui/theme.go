package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the viewer chrome.
const (
	colorAccent = lipgloss.Color("#06B6D4") // Cyan
	colorMuted  = lipgloss.Color("#6B7280") // Gray
	colorDanger = lipgloss.Color("#EF4444") // Red
)

// Styles used by the viewer chrome. Table content is styled by the rendering
// engine itself, never by these.
var (
	styleTitle  lipgloss.Style
	styleError  lipgloss.Style
	styleFooter lipgloss.Style
)

func init() {
	styleTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent)

	styleError = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorDanger)

	styleFooter = lipgloss.NewStyle().
		Foreground(colorMuted).
		MarginTop(1)
}
