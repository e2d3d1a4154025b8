package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"flist/internal/selection"
)

// KeyMap defines the key bindings for the interactive view
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Home          key.Binding
	End           key.Binding
	Delete        key.Binding
	Open          key.Binding
	OpenPreferred key.Binding
	Archive       key.Binding
	Drag          key.Binding
	Restore       key.Binding
	Paste         key.Binding
	Escape        key.Binding
	Quit          key.Binding
}

var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "select above entry"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "select below entry"),
	),
	Home: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "select first entry"),
	),
	End: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "select last entry"),
	),
	Delete: key.NewBinding(
		key.WithKeys("delete"),
		key.WithHelp("del", "archive entry"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open entry"),
	),
	OpenPreferred: key.NewBinding(
		key.WithKeys("alt+enter"),
		key.WithHelp("alt+enter", "open preferred file"),
	),
	Archive: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "go to archive"),
	),
	Drag: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "drag entry"),
	),
	Restore: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restore entry"),
	),
	Paste: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("^v", "paste clipboard"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel drag"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// translateKey maps a terminal key event to the abstract selection key
func translateKey(msg tea.KeyMsg) selection.Key {
	switch {
	case key.Matches(msg, Keys.Quit):
		return selection.KeyQuit
	case key.Matches(msg, Keys.Up):
		return selection.KeyUp
	case key.Matches(msg, Keys.Down):
		return selection.KeyDown
	case key.Matches(msg, Keys.Home):
		return selection.KeyHome
	case key.Matches(msg, Keys.End):
		return selection.KeyEnd
	case key.Matches(msg, Keys.Delete):
		return selection.KeyDelete
	case key.Matches(msg, Keys.OpenPreferred):
		return selection.KeyOpenPreferred
	case key.Matches(msg, Keys.Open):
		return selection.KeyOpen
	case key.Matches(msg, Keys.Archive):
		return selection.KeyToggleArchive
	case key.Matches(msg, Keys.Drag):
		return selection.KeyDrag
	case key.Matches(msg, Keys.Restore):
		return selection.KeyRestore
	case key.Matches(msg, Keys.Paste):
		return selection.KeyPaste
	case key.Matches(msg, Keys.Escape):
		return selection.KeyEscape
	default:
		return selection.KeyNone
	}
}
