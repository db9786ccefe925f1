package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the complete game state for tests, replay and score recording.
type Snapshot struct {
	Tick    uint64
	Snake   []core.Point // Head first
	Current core.Direction
	Pending core.Direction
	Food    core.Point
	HasFood bool
	Score   int
	Best    int
	Status  core.Status
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:    e.tick,
		Snake:   e.Segments(),
		Current: e.current,
		Pending: e.pending,
		Food:    e.food,
		HasFood: e.food != noFood,
		Score:   e.score,
		Best:    e.best,
		Status:  e.status,
	}
}

// Head returns the first segment, or the zero point for an empty snake.
func (s Snapshot) Head() core.Point {
	if len(s.Snake) == 0 {
		return core.Point{}
	}
	return s.Snake[0]
}

// Len returns the number of segments.
func (s Snapshot) Len() int {
	return len(s.Snake)
}

// String returns a one-line debug representation of the snapshot.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tick=%d status=%s score=%d best=%d ", s.Tick, s.Status, s.Score, s.Best)
	fmt.Fprintf(&b, "len=%d head=%v dir=%s", s.Len(), s.Head(), s.Current)
	if s.HasFood {
		fmt.Fprintf(&b, " food=%v", s.Food)
	}
	return b.String()
}
