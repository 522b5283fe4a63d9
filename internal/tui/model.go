// Package tui implements the full-screen terminal session: a bubbletea
// model that polls the tracker, dispatches keys, and renders one of three
// screens. The model is the single owner of all application state; every
// event source (tick, keyboard, subprocess result) is serialized through
// Update.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zeittui/zeittui/internal/tracker"
)

// Screen identifies which of the three layouts is active.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenList
	ScreenStats
)

// Messages for the bubbletea event loop.
type (
	tickMsg   struct{}
	statusMsg struct{ text string }
	listMsg   struct{ text string }
	statsMsg  struct{ text string }
	// trackDoneMsg reports the outcome of a start or finish flow after
	// the terminal session has been resumed.
	trackDoneMsg struct{ err error }
)

// Model is the bubbletea model for the tracker front-end.
type Model struct {
	client tracker.Client

	screen    Screen
	status    string
	listText  string
	statsText string
	// message is the last mutating-command error, shown on the Main
	// screen until the next successful start/finish.
	message string

	keys          KeyMap
	styles        Styles
	width, height int
	refreshing    bool // guards against overlapping status queries
	pollInterval  time.Duration
}

// NewModel creates the model. The client is injected so tests can use a
// fake instead of spawning zeit.
func NewModel(client tracker.Client, pollInterval time.Duration) Model {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return Model{
		client:       client,
		keys:         DefaultKeyMap(),
		styles:       DefaultStyles(),
		pollInterval: pollInterval,
	}
}

// Screen returns the active screen.
func (m Model) Screen() Screen {
	return m.screen
}

// Init queries the status once and starts the poll timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(statusCmd(m.client), tickCmd(m.pollInterval))
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Re-query only on the Main screen, and only if the previous
		// query has come back.
		if m.screen != ScreenMain || m.refreshing {
			return m, tickCmd(m.pollInterval)
		}
		m.refreshing = true
		return m, tea.Batch(statusCmd(m.client), tickCmd(m.pollInterval))

	case statusMsg:
		m.status = msg.text
		m.refreshing = false
		return m, nil

	case listMsg:
		m.listText = msg.text
		return m, nil

	case statsMsg:
		m.statsText = msg.text
		return m, nil

	case trackDoneMsg:
		if msg.err != nil {
			m.message = msg.err.Error()
		} else {
			m.message = ""
		}
		// Show the effect of the command right away instead of waiting
		// for the next tick.
		m.refreshing = true
		return m, statusCmd(m.client)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey dispatches keyboard input for the active screen. Keys bound
// on another screen are ignored.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case ScreenMain:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Start):
			return m, startFlow(m.client)

		case key.Matches(msg, m.keys.Finish):
			return m, finishFlow(m.client)

		case key.Matches(msg, m.keys.List):
			m.screen = ScreenList
			return m, listCmd(m.client)

		case key.Matches(msg, m.keys.Stats):
			m.screen = ScreenStats
			return m, statsCmd(m.client)
		}

	case ScreenList, ScreenStats:
		if key.Matches(msg, m.keys.Back) {
			m.screen = ScreenMain
		}
	}

	return m, nil
}

// Commands

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func statusCmd(client tracker.Client) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: client.Status()}
	}
}

func listCmd(client tracker.Client) tea.Cmd {
	return func() tea.Msg {
		return listMsg{text: client.List()}
	}
}

func statsCmd(client tracker.Client) tea.Cmd {
	return func() tea.Msg {
		return statsMsg{text: client.Stats()}
	}
}
