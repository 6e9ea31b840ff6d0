package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/wordgame/internal/widget"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Confirm   key.Binding
	Quit      key.Binding
	// Type is shown in help only. Printable runes are handled in toEvent.
	Type key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑", "prev")),
		Down:      key.NewBinding(key.WithKeys("down", "tab"), key.WithHelp("↓", "next")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "change")),
		Right:     key.NewBinding(key.WithKeys("right")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
		Type:      key.NewBinding(key.WithKeys("a-z"), key.WithHelp("a-z", "type")),
	}
}

type settingsHelp struct{ keyMap }

func (k settingsHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Confirm, k.Quit}
}

func (k settingsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type playHelp struct{ keyMap }

func (k playHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Type, k.Confirm, k.Quit}
}

func (k playHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// toEvent translates a terminal key message into a widget event.
func (k keyMap) toEvent(msg tea.KeyMsg) (widget.Event, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return widget.KeyEvent(widget.EventQuit), true
	case key.Matches(msg, k.Confirm):
		return widget.KeyEvent(widget.EventEnter), true
	case key.Matches(msg, k.Up):
		return widget.KeyEvent(widget.EventUp), true
	case key.Matches(msg, k.Down):
		return widget.KeyEvent(widget.EventDown), true
	case key.Matches(msg, k.Left):
		return widget.KeyEvent(widget.EventLeft), true
	case key.Matches(msg, k.Right):
		return widget.KeyEvent(widget.EventRight), true
	case key.Matches(msg, k.Backspace):
		return widget.KeyEvent(widget.EventBackspace), true
	case key.Matches(msg, k.Delete):
		return widget.KeyEvent(widget.EventDelete), true
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		return widget.RuneEvent(msg.Runes[0]), true
	}
	return widget.Event{}, false
}
