package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zeittui/zeittui/internal/tracker"
)

// Run starts the interactive session and blocks until the user quits.
// The bubbletea runtime owns the terminal for the whole session: it
// enters raw mode, the alternate screen, and mouse capture up front, and
// restores all three on every exit path, including errors and panics.
func Run(client tracker.Client, pollInterval time.Duration) error {
	model := NewModel(client, pollInterval)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal session failed: %w", err)
	}
	return nil
}
