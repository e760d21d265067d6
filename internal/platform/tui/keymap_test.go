package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-farm/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg      tea.KeyMsg
		expected core.Key
	}{
		{runes("w"), core.KeyUp},
		{tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{runes("s"), core.KeyDown},
		{tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown},
		{runes("a"), core.KeyLeft},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{runes("d"), core.KeyRight},
		{tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight},
		{runes("e"), core.KeyInteract},
		{runes("i"), core.KeyInventory},
		{runes("p"), core.KeyPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter},
		{runes("t"), core.KeyAction},
		{runes("x"), core.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.expected {
				t.Errorf("MapKey(%q) = %s, expected %s", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestMapPromptKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg      tea.KeyMsg
		expected PromptAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, PromptActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, PromptActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, PromptActionToggle},
		{runes("y"), PromptActionYes},
		{runes("n"), PromptActionNo},
		{tea.KeyMsg{Type: tea.KeyEnter}, PromptActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, PromptActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, PromptActionCancel},
		{runes("z"), PromptActionNone},
	}

	for _, tt := range tests {
		if got := keys.MapPromptKey(tt.msg); got != tt.expected {
			t.Errorf("MapPromptKey(%q) = %d, expected %d", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("short help should not be empty")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 13 {
		t.Errorf("full help lists %d bindings, expected 13", total)
	}
}
