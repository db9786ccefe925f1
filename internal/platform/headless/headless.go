// Package headless runs the snake game without a terminal UI: frames are
// written as plain text and commands are read line by line.
package headless

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs used in text frames.
const (
	GlyphEmpty = '.'
	GlyphHead  = 'O'
	GlyphBody  = 'o'
	GlyphFood  = '*'
)

// Printer writes every rendered frame to an io.Writer. It implements both
// snake.Renderer and snake.ScoreDisplay.
type Printer struct {
	w      io.Writer
	screen *core.Screen
	frames uint64
	err    error

	score  int
	best   int
	status string
}

// NewPrinter creates a printer for a grid of the given side length.
func NewPrinter(w io.Writer, tiles int) *Printer {
	return &Printer{
		w:      w,
		screen: core.NewScreen(tiles, tiles),
	}
}

// Render draws the frame into the buffer and writes it out, preceded by a
// header line with the frame number, score, best score and status text.
func (p *Printer) Render(snake []core.Point, food core.Point, _ int, tiles int) {
	if p.screen.Width() != tiles {
		p.screen.Resize(tiles, tiles)
	}
	p.frames++

	p.screen.Fill(GlyphEmpty)
	if food.In(tiles) {
		p.screen.Set(food.X, food.Y, GlyphFood)
	}
	for i := len(snake) - 1; i >= 1; i-- {
		p.screen.Set(snake[i].X, snake[i].Y, GlyphBody)
	}
	if len(snake) > 0 {
		p.screen.Set(snake[0].X, snake[0].Y, GlyphHead)
	}

	p.write(p.Frame())
}

// Frame returns the last frame as text without writing it.
func (p *Printer) Frame() string {
	var b strings.Builder
	fmt.Fprintf(&b, "frame %d  score %d  best %d", p.frames, p.score, p.best)
	if p.status != "" {
		fmt.Fprintf(&b, "  %s", p.status)
	}
	b.WriteByte('\n')
	b.WriteString(p.screen.String())
	b.WriteString("\n\n")
	return b.String()
}

// write stops writing after the first error; Err reports it.
func (p *Printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

// SetScore implements snake.ScoreDisplay.
func (p *Printer) SetScore(score int) { p.score = score }

// SetBest implements snake.ScoreDisplay.
func (p *Printer) SetBest(best int) { p.best = best }

// SetStatus implements snake.ScoreDisplay. A new status is also written as
// its own line, since the game-over tick draws no frame.
func (p *Printer) SetStatus(text string) {
	if text != "" && text != p.status {
		p.write(fmt.Sprintf("status: %s\n", text))
	}
	p.status = text
}

// Frames returns how many frames have been written.
func (p *Printer) Frames() uint64 { return p.frames }

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

// ReadCommands parses commands from r in a background goroutine. Each line
// may hold several whitespace-separated words; unknown words are skipped.
// The channel is closed when r is exhausted or fails, or once ctx is done.
func ReadCommands(ctx context.Context, r io.Reader) <-chan core.Command {
	out := make(chan core.Command)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			for _, word := range strings.Fields(scanner.Text()) {
				cmd := core.ParseCommand(word)
				if cmd == core.CmdNone {
					continue
				}
				select {
				case out <- cmd:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
