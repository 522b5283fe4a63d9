package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zeittui/zeittui/internal/tracker"
)

// fakeClient counts gateway calls and plays back canned text.
type fakeClient struct {
	status string
	list   string
	stats  string

	statusCalls int
	listCalls   int
	statsCalls  int

	started  []tracker.StartOptions
	finished []tracker.FinishOptions
	startErr error
}

func (f *fakeClient) Status() string {
	f.statusCalls++
	return f.status
}

func (f *fakeClient) Start(opts tracker.StartOptions) error {
	f.started = append(f.started, opts)
	return f.startErr
}

func (f *fakeClient) Finish(opts tracker.FinishOptions) error {
	f.finished = append(f.finished, opts)
	return nil
}

func (f *fakeClient) List() string {
	f.listCalls++
	return f.list
}

func (f *fakeClient) Stats() string {
	f.statsCalls++
	return f.stats
}

func newTestModel(client tracker.Client) Model {
	m := NewModel(client, time.Millisecond)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func keyMsg(k string) tea.KeyMsg {
	if k == "ctrl+c" {
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// runCmd executes a command (flattening batches one level) and returns
// the produced messages.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			if c != nil {
				msgs = append(msgs, c())
			}
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func TestScreenTransitions(t *testing.T) {
	tests := []struct {
		name   string
		events []string // key names, or "tick"
		want   Screen
	}{
		{"starts on main", nil, ScreenMain},
		{"l goes to list", []string{"l"}, ScreenList},
		{"d goes to stats", []string{"d"}, ScreenStats},
		{"b returns from list", []string{"l", "b"}, ScreenMain},
		{"b returns from stats", []string{"d", "b"}, ScreenMain},
		{"b ignored on main", []string{"b"}, ScreenMain},
		{"l ignored on list", []string{"l", "l"}, ScreenList},
		{"d ignored on stats", []string{"d", "d"}, ScreenStats},
		{"main keys ignored on list", []string{"l", "s", "f", "d"}, ScreenList},
		{"main keys ignored on stats", []string{"d", "s", "f", "l"}, ScreenStats},
		{"s stays on main", []string{"s"}, ScreenMain},
		{"f stays on main", []string{"f"}, ScreenMain},
		{"ticks do not change screens", []string{"tick", "l", "tick", "b", "tick"}, ScreenMain},
		{"round trip", []string{"l", "b", "d", "b", "l"}, ScreenList},
		{"unbound keys ignored", []string{"x", "l", "z", "b"}, ScreenMain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(&fakeClient{})
			for _, ev := range tt.events {
				var updated tea.Model
				if ev == "tick" {
					updated, _ = m.Update(tickMsg{})
				} else {
					updated, _ = m.Update(keyMsg(ev))
				}
				m = updated.(Model)
			}
			if m.Screen() != tt.want {
				t.Errorf("after %v screen = %d, want %d", tt.events, m.Screen(), tt.want)
			}
		})
	}
}

func TestQuitKeysOnMain(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newTestModel(&fakeClient{})
		_, cmd := m.Update(keyMsg(k))
		if cmd == nil {
			t.Fatalf("Update(%q) cmd = nil, want tea.Quit", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("Update(%q) did not produce tea.QuitMsg", k)
		}
	}
}

func TestQuitIgnoredOffMain(t *testing.T) {
	m := newTestModel(&fakeClient{})
	updated, _ := m.Update(keyMsg("l"))
	m = updated.(Model)

	_, cmd := m.Update(keyMsg("q"))
	if cmd != nil {
		t.Error("q on List screen should be ignored")
	}
}

func TestTickRefreshesStatusOnMain(t *testing.T) {
	client := &fakeClient{status: "tracking Website"}
	m := newTestModel(client)

	updated, cmd := m.Update(tickMsg{})
	m = updated.(Model)

	for _, msg := range runCmd(t, cmd) {
		if s, ok := msg.(statusMsg); ok {
			updated, _ = m.Update(s)
			m = updated.(Model)
		}
	}

	if client.statusCalls != 1 {
		t.Errorf("statusCalls = %d, want 1", client.statusCalls)
	}
	if m.status != "tracking Website" {
		t.Errorf("status = %q, want %q", m.status, "tracking Website")
	}
}

func TestTickDoesNotRefreshOffMain(t *testing.T) {
	client := &fakeClient{}
	m := newTestModel(client)
	updated, _ := m.Update(keyMsg("l"))
	m = updated.(Model)

	_, cmd := m.Update(tickMsg{})
	for _, msg := range runCmd(t, cmd) {
		if _, ok := msg.(statusMsg); ok {
			t.Error("tick on List screen queried the status")
		}
	}
	if client.statusCalls != 0 {
		t.Errorf("statusCalls = %d, want 0", client.statusCalls)
	}
}

func TestTickSkippedWhileRefreshInFlight(t *testing.T) {
	client := &fakeClient{}
	m := newTestModel(client)

	// First tick starts a refresh; the result has not come back yet.
	updated, _ := m.Update(tickMsg{})
	m = updated.(Model)

	_, cmd := m.Update(tickMsg{})
	for _, msg := range runCmd(t, cmd) {
		if _, ok := msg.(statusMsg); ok {
			t.Error("second tick started an overlapping refresh")
		}
	}
}

func TestListFlow(t *testing.T) {
	client := &fakeClient{list: "ProjectA: 2h\nProjectB: 1h"}
	m := newTestModel(client)

	updated, cmd := m.Update(keyMsg("l"))
	m = updated.(Model)
	if m.Screen() != ScreenList {
		t.Fatalf("screen = %d, want ScreenList", m.Screen())
	}

	for _, msg := range runCmd(t, cmd) {
		updated, _ = m.Update(msg)
		m = updated.(Model)
	}

	view := m.View()
	if !strings.Contains(view, "ProjectA: 2h") || !strings.Contains(view, "ProjectB: 1h") {
		t.Errorf("List view should contain the list output, got:\n%s", view)
	}

	// Going back must not re-query the tracking status.
	updated, cmd = m.Update(keyMsg("b"))
	m = updated.(Model)
	if m.Screen() != ScreenMain {
		t.Errorf("screen after b = %d, want ScreenMain", m.Screen())
	}
	if cmd != nil {
		t.Error("b should not trigger any command")
	}
	if client.statusCalls != 0 {
		t.Errorf("statusCalls after back = %d, want 0", client.statusCalls)
	}
	if client.listCalls != 1 {
		t.Errorf("listCalls = %d, want 1", client.listCalls)
	}
}

func TestStatsFlow(t *testing.T) {
	client := &fakeClient{stats: "total: 3h"}
	m := newTestModel(client)

	updated, cmd := m.Update(keyMsg("d"))
	m = updated.(Model)
	for _, msg := range runCmd(t, cmd) {
		updated, _ = m.Update(msg)
		m = updated.(Model)
	}

	if !strings.Contains(m.View(), "total: 3h") {
		t.Error("Stats view should contain the stats output")
	}
	if client.statsCalls != 1 {
		t.Errorf("statsCalls = %d, want 1", client.statsCalls)
	}
}

func TestTrackDoneErrorIsDisplayedAndStatusRefreshed(t *testing.T) {
	client := &fakeClient{status: "idle"}
	m := newTestModel(client)

	updated, cmd := m.Update(trackDoneMsg{err: errors.New("failed to start tracking: boom")})
	m = updated.(Model)

	if !strings.Contains(m.View(), "failed to start tracking: boom") {
		t.Error("mutating-command error should render inside the TUI")
	}

	// The loop keeps going: the done message triggers a status refresh.
	for _, msg := range runCmd(t, cmd) {
		updated, _ = m.Update(msg)
		m = updated.(Model)
	}
	if client.statusCalls != 1 {
		t.Errorf("statusCalls = %d, want 1", client.statusCalls)
	}
}

func TestTrackDoneSuccessClearsMessage(t *testing.T) {
	m := newTestModel(&fakeClient{})

	updated, _ := m.Update(trackDoneMsg{err: errors.New("old error")})
	m = updated.(Model)
	updated, _ = m.Update(trackDoneMsg{})
	m = updated.(Model)

	if strings.Contains(m.View(), "old error") {
		t.Error("message should be cleared after a successful command")
	}
}

func TestPromptFailureNeverReachesGateway(t *testing.T) {
	// A failed prompt body surfaces as trackDoneMsg with an error; the
	// gateway must not have been called and the loop must continue.
	client := &fakeClient{}
	m := newTestModel(client)

	updated, cmd := m.Update(trackDoneMsg{err: errors.New("project name cannot be empty")})
	m = updated.(Model)

	if len(client.started) != 0 {
		t.Errorf("Start called %d times, want 0", len(client.started))
	}
	if cmd == nil {
		t.Error("loop should continue with a status refresh")
	}
	if m.Screen() != ScreenMain {
		t.Errorf("screen = %d, want ScreenMain", m.Screen())
	}
}
