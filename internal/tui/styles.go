package tui

import "github.com/charmbracelet/lipgloss"

// Color palette, matching the ui package's fatih/color choices.
const (
	colorCyan   = lipgloss.Color("#00BCD4")
	colorRed    = lipgloss.Color("#F44336")
	colorDim    = lipgloss.Color("#666666")
	colorBorder = lipgloss.Color("#333355")
)

// Styles holds all lipgloss styles for the screens.
type Styles struct {
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	ErrorText  lipgloss.Style
	LegendKey  lipgloss.Style
	LegendDesc lipgloss.Style
	DimText    lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan),
		ErrorText: lipgloss.NewStyle().
			Foreground(colorRed),
		LegendKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan),
		LegendDesc: lipgloss.NewStyle().
			Foreground(colorDim),
		DimText: lipgloss.NewStyle().
			Foreground(colorDim),
	}
}
