package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// View renders the active screen. Rendering is a pure function of the
// model; no state changes here.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.screen {
	case ScreenList:
		return m.renderReport("Tracked Activities", m.listText)
	case ScreenStats:
		return m.renderReport("Statistics", m.statsText)
	default:
		return m.renderMain()
	}
}

// renderMain shows the status panel above the key legend, with the last
// mutating-command error in between when there is one.
func (m Model) renderMain() string {
	legend := m.renderLegend(m.keys.MainHelp())

	footerHeight := lipgloss.Height(legend)
	var message string
	if m.message != "" {
		message = m.styles.ErrorText.Width(m.width).Render(m.message)
		footerHeight += lipgloss.Height(message)
	}

	panel := m.renderPanel("Zeit Tracker", m.status, m.height-footerHeight)

	parts := []string{panel}
	if message != "" {
		parts = append(parts, message)
	}
	parts = append(parts, legend)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderReport shows a single full-height panel with a back legend below
// it. The reference layout painted the legend over the panel; the split
// keeps both readable.
func (m Model) renderReport(title, content string) string {
	legend := m.renderLegend(m.keys.ReportHelp())
	panel := m.renderPanel(title, content, m.height-lipgloss.Height(legend))
	return lipgloss.JoinVertical(lipgloss.Left, panel, legend)
}

// renderPanel draws a bordered, titled panel. Content wraps at the panel
// width; height is the total rows the panel may occupy.
func (m Model) renderPanel(title, content string, height int) string {
	s := m.styles
	inner := s.PanelTitle.Render(title) + "\n" + content

	// Keep at least one content row visible on tiny terminals.
	innerHeight := max(height-2, 2)

	return s.Panel.
		Width(max(m.width-2, 1)).
		Height(innerHeight).
		Render(inner)
}

// renderLegend joins key bindings into a "q: quit • s: start" style line.
func (m Model) renderLegend(bindings []key.Binding) string {
	s := m.styles
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, s.LegendKey.Render(h.Key)+s.LegendDesc.Render(": "+h.Desc))
	}
	return strings.Join(parts, s.DimText.Render(" • "))
}
