package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapCommand(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Command
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.CmdMoveUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.CmdMoveDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.CmdMoveLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.CmdMoveRight},
		{"w", runeKey('w'), core.CmdMoveUp},
		{"a", runeKey('a'), core.CmdMoveLeft},
		{"s", runeKey('s'), core.CmdMoveDown},
		{"d", runeKey('d'), core.CmdMoveRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.CmdTogglePause},
		{"p", runeKey('p'), core.CmdTogglePause},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.CmdRestart},
		{"r", runeKey('r'), core.CmdRestart},
		{"q", runeKey('q'), core.CmdQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.CmdQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.CmdQuit},
		{"unbound letter", runeKey('x'), core.CmdNone},
		{"help", runeKey('?'), core.CmdNone},
		{"screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, core.CmdNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Command(tt.msg); got != tt.want {
				t.Errorf("Command(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp is empty")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 9 {
		t.Errorf("FullHelp lists %d bindings, want 9", total)
	}
}
