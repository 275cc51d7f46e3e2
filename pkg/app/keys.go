package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the widget's key bindings. It satisfies help.KeyMap so the
// bubbles help bar can render it directly.
type KeyMap struct {
	Toggle  key.Binding
	PlayNow key.Binding
	Expand  key.Binding
	Shrink  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/stop"),
		),
		PlayNow: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play now"),
		),
		Expand: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "widen window"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "narrow window"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings for the one-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.PlayNow, k.Expand, k.Shrink, k.Quit}
}

// FullHelp returns the bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.PlayNow},
		{k.Expand, k.Shrink},
		{k.Help, k.Quit},
	}
}
