package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Renderer paints a frame of the board. It gives no feedback to the engine.
type Renderer interface {
	Render(snake []core.Point, food core.Point, cellPx, tiles int)
}

// ScoreDisplay receives the text shown next to the board.
type ScoreDisplay interface {
	SetScore(score int)
	SetBest(best int)
	SetStatus(text string)
}

// PersistentStore keeps the best score across process restarts.
// GetBest returns 0 when nothing has been stored yet.
type PersistentStore interface {
	GetBest() (int, error)
	SetBest(best int) error
}

type nopRenderer struct{}

func (nopRenderer) Render([]core.Point, core.Point, int, int) {}

type nopDisplay struct{}

func (nopDisplay) SetScore(int)     {}
func (nopDisplay) SetBest(int)      {}
func (nopDisplay) SetStatus(string) {}

// memoryStore keeps the best score for the lifetime of the process only.
type memoryStore struct {
	best int
}

func (m *memoryStore) GetBest() (int, error) {
	return m.best, nil
}

func (m *memoryStore) SetBest(best int) error {
	m.best = best
	return nil
}
