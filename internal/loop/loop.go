// Package loop drives a snake engine from a fixed-period ticker and a
// command channel, outside of any UI framework.
package loop

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is the part of the engine the loop drives.
type Game interface {
	Step()
	Dispatch(cmd core.Command)
}

// Run steps g every period and applies commands from cmds between ticks.
// Ticks and commands are handled on the calling goroutine, so g never sees
// concurrent calls. The ticker keeps firing while the game is paused or over.
//
// Run returns ctx.Err() when ctx is cancelled, and nil when cmds is closed
// or a CmdQuit arrives.
func Run(ctx context.Context, g Game, period time.Duration, cmds <-chan core.Command) error {
	if period <= 0 {
		period = core.DefaultConfig().TickPeriod
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			g.Step()

		case cmd, ok := <-cmds:
			if !ok || cmd == core.CmdQuit {
				return nil
			}
			g.Dispatch(cmd)
		}
	}
}
