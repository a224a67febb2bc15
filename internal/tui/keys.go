// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings shown in the help footer.
type KeyMap struct {
	Notifications key.Binding
	Settings      key.Binding
	NextView      key.Binding
	ClearAll      key.Binding
	Edit          key.Binding
	Up            key.Binding
	Down          key.Binding
	Retry         key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Notifications: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "notifications")),
		Settings:      key.NewBinding(key.WithKeys("2", "s"), key.WithHelp("s", "settings")),
		NextView:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		ClearAll:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear all")),
		Edit:          key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Retry:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Settings, k.ClearAll, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Notifications, k.Settings, k.NextView},
		{k.Up, k.Down, k.ClearAll, k.Edit},
		{k.Retry, k.Quit},
	}
}
