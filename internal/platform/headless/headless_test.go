package headless

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestPrinterRender(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 12)
	p.SetScore(2)
	p.SetBest(5)

	p.Render([]core.Point{{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}}, core.Point{X: 4, Y: 0}, 20, 12)

	out := buf.String()
	lines := strings.Split(out, "\n")
	if lines[0] != "frame 1  score 2  best 5" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "....*......." {
		t.Errorf("row 0 = %q", lines[1])
	}
	if lines[2] != "ooO........." {
		t.Errorf("row 1 = %q", lines[2])
	}
	if p.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", p.Frames())
	}
}

func TestPrinterStatusLine(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 12)

	p.SetStatus(snake.StatusTextGameOver)
	p.SetStatus(snake.StatusTextGameOver)

	if got := strings.Count(buf.String(), "status: "); got != 1 {
		t.Errorf("status written %d times, want 1", got)
	}
	p.Render(nil, core.Point{X: -1, Y: -1}, 20, 12)
	if !strings.Contains(p.Frame(), snake.StatusTextGameOver) {
		t.Error("frame header lacks status text")
	}
}

type failingWriter struct{ calls int }

func (w *failingWriter) Write([]byte) (int, error) {
	w.calls++
	return 0, errors.New("broken pipe")
}

func TestPrinterStopsAfterWriteError(t *testing.T) {
	w := &failingWriter{}
	p := NewPrinter(w, 12)

	p.Render(nil, core.Point{}, 20, 12)
	p.Render(nil, core.Point{}, 20, 12)

	if p.Err() == nil {
		t.Fatal("Err() = nil, want write error")
	}
	if w.calls != 1 {
		t.Errorf("writer called %d times, want 1", w.calls)
	}
}

func TestPrinterWithEngine(t *testing.T) {
	var buf bytes.Buffer
	cfg := core.DefaultConfig()
	cfg.Seed = 3
	p := NewPrinter(&buf, cfg.Tiles())
	eng := snake.New(cfg, snake.WithRenderer(p), snake.WithScoreDisplay(p))

	eng.Redraw()
	eng.Step()

	if p.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", p.Frames())
	}
	if got := strings.Count(buf.String(), string(GlyphHead)); got != 2 {
		t.Errorf("head drawn %d times over two frames, want 2", got)
	}
}

func TestReadCommands(t *testing.T) {
	input := "up\n  LEFT  jump d\n\npause\nr q\n"

	var got []core.Command
	for cmd := range ReadCommands(context.Background(), strings.NewReader(input)) {
		got = append(got, cmd)
	}

	want := []core.Command{
		core.CmdMoveUp,
		core.CmdMoveLeft,
		core.CmdMoveRight,
		core.CmdTogglePause,
		core.CmdRestart,
		core.CmdQuit,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadCommandsStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cmds := ReadCommands(ctx, strings.NewReader(strings.Repeat("up\n", 100)))

	if cmd := <-cmds; cmd != core.CmdMoveUp {
		t.Fatalf("first command = %v, want %v", cmd, core.CmdMoveUp)
	}
	cancel()

	timeout := time.After(time.Second)
	for {
		select {
		case _, ok := <-cmds:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("channel not closed after cancel")
		}
	}
}
