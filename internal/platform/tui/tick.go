// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, board rendering and the
// SSH server that serves the same UI to remote players.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after period.
// The model re-arms it on every tick, giving a fixed-period scheduler that
// keeps running while the game is paused or over.
func tickCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
