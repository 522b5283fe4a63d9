package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard bindings. Main-screen bindings are ignored
// on the report screens and vice versa; dispatch happens in handleKey.
type KeyMap struct {
	Quit   key.Binding
	Start  key.Binding
	Finish key.Binding
	List   key.Binding
	Stats  key.Binding
	Back   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Finish: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "finish"),
		),
		List: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "list"),
		),
		Stats: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "stats"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "back"),
		),
	}
}

// MainHelp returns the bindings shown in the Main screen legend.
func (k KeyMap) MainHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Start, k.Finish, k.List, k.Stats}
}

// ReportHelp returns the bindings shown on the List and Stats screens.
func (k KeyMap) ReportHelp() []key.Binding {
	return []key.Binding{k.Back}
}
