package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return NewModel(cfg, Options{Store: store, BestKey: storage.DefaultBestKey})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

// runIntoWall ticks until the snake, heading right from the start, hits the wall.
func runIntoWall(t *testing.T, m Model) Model {
	t.Helper()
	for n, limit := 0, m.Engine().Tiles()*2; n < limit; n++ {
		m, _ = update(t, m, TickMsg{})
		if m.Engine().Status() == core.StatusOver {
			return m
		}
	}
	t.Fatal("game never ended")
	return m
}

func TestModelInitDrawsFirstFrame(t *testing.T) {
	m := newTestModel(t, nil)
	if cmd := m.Init(); cmd == nil {
		t.Error("Init() returned nil, want tick command")
	}
	if m.Board().Frames() == 0 {
		t.Error("Init() did not draw a frame")
	}
}

func TestModelTickSteps(t *testing.T) {
	m := newTestModel(t, nil)
	before := m.Engine().Snapshot()

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick did not re-arm the timer")
	}

	after := m.Engine().Snapshot()
	if after.Tick != before.Tick+1 {
		t.Errorf("Tick = %d, want %d", after.Tick, before.Tick+1)
	}
	want := before.Head().Add(core.Right)
	if after.Head() != want {
		t.Errorf("head = %v, want %v", after.Head(), want)
	}
}

func TestModelKeySteers(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, TickMsg{})

	if got := m.Engine().Snapshot().Current; got != core.Down {
		t.Errorf("direction = %v, want %v", got, core.Down)
	}
}

func TestModelPauseKey(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, runeKey('p'))
	if m.Engine().Status() != core.StatusPaused {
		t.Fatalf("status = %v, want paused", m.Engine().Status())
	}

	before := m.Engine().Snapshot()
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("paused tick did not re-arm the timer")
	}
	if got := m.Engine().Snapshot().Head(); got != before.Head() {
		t.Errorf("head moved while paused: %v -> %v", before.Head(), got)
	}
	if !strings.Contains(m.View(), "Paused") {
		t.Error("View() does not show the paused status")
	}

	m, _ = update(t, m, runeKey('p'))
	if m.Engine().Status() != core.StatusRunning {
		t.Errorf("status = %v, want running", m.Engine().Status())
	}
}

func TestModelRecordsFinishedGameOnce(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store)

	m = runIntoWall(t, m)
	score := m.Engine().Score()

	for n := 0; n < 5; n++ {
		m, _ = update(t, m, TickMsg{})
	}

	stats, err := store.GetGameStats(GameID)
	if err != nil {
		t.Fatalf("GetGameStats() error: %v", err)
	}
	want := 0
	if score > 0 {
		want = 1
	}
	if stats.GamesCount != want {
		t.Errorf("recorded %d games, want %d (score %d)", stats.GamesCount, want, score)
	}
	if !strings.Contains(m.View(), "Game over") {
		t.Error("View() does not show the game-over status")
	}
}

func TestModelRestartKey(t *testing.T) {
	m := newTestModel(t, nil)
	m = runIntoWall(t, m)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	snap := m.Engine().Snapshot()
	if snap.Status != core.StatusRunning {
		t.Errorf("status = %v, want running", snap.Status)
	}
	if snap.Score != 0 || snap.Len() != 3 {
		t.Errorf("score=%d len=%d, want 0 and 3", snap.Score, snap.Len())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key did not return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() not empty after quitting")
	}
}

func TestModelUnknownKeyIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	before := m.Engine().Snapshot()

	m, cmd := update(t, m, runeKey('x'))
	if cmd != nil {
		t.Error("unknown key returned a command")
	}
	after := m.Engine().Snapshot()
	if after.Pending != before.Pending || after.Status != before.Status {
		t.Error("unknown key changed the game")
	}
}

func TestModelViewTooSmall(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})

	if !strings.Contains(m.View(), "Terminal too small") {
		t.Errorf("View() = %q, want size warning", m.View())
	}
}

func TestModelBestLoadedFromStore(t *testing.T) {
	store := openStore(t)
	if err := store.SetBest(storage.DefaultBestKey, 17); err != nil {
		t.Fatalf("SetBest() error: %v", err)
	}

	m := newTestModel(t, store)
	if m.Engine().Best() != 17 || m.Board().Best() != 17 {
		t.Errorf("best = %d/%d, want 17", m.Engine().Best(), m.Board().Best())
	}
}
