package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-farm/internal/core"
)

// KeyMap defines the key bindings for the farm.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Interact  key.Binding
	Inventory key.Binding
	Pause     key.Binding
	Escape    key.Binding
	Enter     key.Binding
	Click     key.Binding
	Save      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Interact, k.Inventory, k.Pause, k.Save, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Interact, k.Inventory, k.Pause, k.Escape},
		{k.Enter, k.Click, k.Save},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/down", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/left", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/right", "move right"),
		),
		Interact: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "interact"),
		),
		Inventory: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "inventory"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		Click: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space/click", "continue"),
		),
		Save: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "save now"),
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

// MapKey translates a key message to a game key.
// Returns KeyNone for keys the game does not use.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Up):
		return core.KeyUp
	case key.Matches(msg, k.Down):
		return core.KeyDown
	case key.Matches(msg, k.Left):
		return core.KeyLeft
	case key.Matches(msg, k.Right):
		return core.KeyRight
	case key.Matches(msg, k.Interact):
		return core.KeyInteract
	case key.Matches(msg, k.Inventory):
		return core.KeyInventory
	case key.Matches(msg, k.Pause):
		return core.KeyPause
	case key.Matches(msg, k.Escape):
		return core.KeyEscape
	case key.Matches(msg, k.Enter):
		return core.KeyEnter
	case key.Matches(msg, k.Save):
		return core.KeyAction
	}
	return core.KeyNone
}

// PromptAction is a prompt-specific action derived from input.
type PromptAction int

const (
	PromptActionNone PromptAction = iota
	PromptActionUp
	PromptActionDown
	PromptActionYes
	PromptActionNo
	PromptActionToggle
	PromptActionSelect
	PromptActionCancel
)

// MapPromptKey translates a key to a prompt action.
func (k KeyMap) MapPromptKey(msg tea.KeyMsg) PromptAction {
	switch msg.String() {
	case "up", "w", "k":
		return PromptActionUp
	case "down", "s", "j":
		return PromptActionDown
	case "left", "right", "a", "d", "tab":
		return PromptActionToggle
	case "y":
		return PromptActionYes
	case "n":
		return PromptActionNo
	case "enter", " ":
		return PromptActionSelect
	case "esc":
		return PromptActionCancel
	}
	return PromptActionNone
}
