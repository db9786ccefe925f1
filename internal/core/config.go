package core

import "time"

// RuntimeConfig contains the fixed constants a game is started with.
// The grid is square; its side in tiles is BoardPx / CellPx.
type RuntimeConfig struct {
	BoardPx    int           // Board side in pixels
	CellPx     int           // Cell side in pixels
	TickPeriod time.Duration // Time between simulation steps
	Seed       int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a 20x20 grid (400px board, 20px cells) stepping every 120ms.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		BoardPx:    400,
		CellPx:     20,
		TickPeriod: 120 * time.Millisecond,
		Seed:       0, // 0 means use current time in platform layer
	}
}

// Tiles returns the grid side length in cells.
func (c RuntimeConfig) Tiles() int {
	if c.CellPx <= 0 {
		return 0
	}
	return c.BoardPx / c.CellPx
}

// Status is the lifecycle state of a game.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}
