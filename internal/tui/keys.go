package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Back     key.Binding
	Bookings key.Binding
	Settings key.Binding
	Edit     key.Binding
	Cancel   key.Binding
	Language key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Bookings: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bookings")),
		Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Cancel:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cancel booking")),
		Language: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "language")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) homeHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Bookings, k.Settings, k.Quit}
}

func (k keyMap) bookingsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Cancel, k.Back, k.Quit}
}

func (k keyMap) wizardHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Back, k.Up, k.Down}
}
