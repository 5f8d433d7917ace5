package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab       key.Binding
	ShiftTab  key.Binding
	Quit      key.Binding
	Help      key.Binding
	Refresh   key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	Favorite  key.Binding
	UseFav    key.Binding
	Logout    key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Quit, k.Help},
		{k.Refresh, k.PrevDay, k.NextDay, k.PrevMonth, k.NextMonth},
		{k.Favorite, k.UseFav, k.Logout},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next day"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "save favorite"),
		),
		UseFav: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "use favorite"),
		),
		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "log out"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("left", "p"),
			key.WithHelp("←/p", "previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("right", "n"),
			key.WithHelp("→/n", "next month"),
		),
	}
}
