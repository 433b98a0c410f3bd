package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Panel  key.Binding
	Style  key.Binding
	Colors key.Binding
	Preset key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Edit   key.Binding
	Close  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Panel:  key.NewBinding(key.WithKeys("tab", "s"), key.WithHelp("tab", "settings")),
		Style:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "animation")),
		Colors: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color mode")),
		Preset: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preset")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous field")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next field")),
		Left:   key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/h", "decrease")),
		Right:  key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/l", "increase")),
		Edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit pattern")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Panel, k.Style, k.Colors, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Panel, k.Style, k.Colors, k.Preset},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Edit, k.Close, k.Help, k.Quit},
	}
}

// isForceQuit reports keys that quit even while text is being edited.
func isForceQuit(msg tea.KeyMsg) bool {
	return msg.String() == "ctrl+c"
}
