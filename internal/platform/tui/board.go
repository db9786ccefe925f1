package tui

import (
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Each grid tile is drawn two terminal columns wide so the board looks square.
const tileCols = 2

// Glyphs for board contents. Colors carry most of the distinction; the head
// also uses a different glyph for monochrome terminals.
const (
	glyphEmpty = ' '
	glyphHead  = '▓'
	glyphBody  = '█'
	glyphFood  = '●'
)

// Board is the terminal renderer and score display for one engine.
// The engine pushes frames and texts into it; the model reads them in View.
type Board struct {
	screen *core.Screen
	tiles  int
	frames uint64

	score  int
	best   int
	status string
}

// NewBoard creates a board for a grid of the given side length.
func NewBoard(tiles int) *Board {
	w, h := boardSize(tiles)
	return &Board{
		screen: core.NewScreen(w, h),
		tiles:  tiles,
	}
}

// boardSize returns the screen size of a framed grid.
func boardSize(tiles int) (w, h int) {
	return tiles*tileCols + 2, tiles + 2
}

// Render paints the grid, food and snake, and the current status text across
// the middle row. The terminal has no pixels, so the cell size only matters to
// pixel renderers and is ignored here.
func (b *Board) Render(snake []core.Point, food core.Point, _ int, tiles int) {
	if tiles != b.tiles {
		b.tiles = tiles
		b.screen.Resize(boardSize(tiles))
	}
	b.frames++

	s := b.screen
	s.Clear()
	s.DrawBox(core.NewRect(0, 0, s.Width(), s.Height()), core.ColorFrame)
	grid := core.NewRect(1, 1, tiles*tileCols, tiles)
	s.DrawRect(grid, glyphEmpty, core.ColorBoard)

	if food.In(tiles) {
		b.paintTile(food, glyphFood, core.ColorFood)
	}

	// Paint the body first so the head is always on top.
	for i := len(snake) - 1; i >= 1; i-- {
		b.paintTile(snake[i], glyphBody, core.ColorBody)
	}
	if len(snake) > 0 {
		b.paintTile(snake[0], glyphHead, core.ColorHead)
	}

	if b.status != "" {
		s.DrawTextCentered(grid, grid.Y+tiles/2, banner(b.status, grid.W), core.ColorAlert)
	}
}

// banner shortens a status text to fit width columns, keeping its first
// sentence when the whole text is too long.
func banner(text string, width int) string {
	text = " " + text + " "
	if len([]rune(text)) <= width {
		return text
	}
	if i := strings.IndexAny(text, ".!"); i > 0 {
		text = text[:i+1] + " "
	}
	return text
}

// paintTile fills one grid tile.
func (b *Board) paintTile(p core.Point, r rune, c core.Color) {
	x := 1 + p.X*tileCols
	y := 1 + p.Y
	for i := 0; i < tileCols; i++ {
		b.screen.SetColored(x+i, y, r, c)
	}
}

// SetScore implements snake.ScoreDisplay.
func (b *Board) SetScore(score int) { b.score = score }

// SetBest implements snake.ScoreDisplay.
func (b *Board) SetBest(best int) { b.best = best }

// SetStatus implements snake.ScoreDisplay.
func (b *Board) SetStatus(text string) { b.status = text }

// Screen returns the painted board buffer.
func (b *Board) Screen() *core.Screen { return b.screen }

// Score returns the last score pushed by the engine.
func (b *Board) Score() int { return b.score }

// Best returns the last best score pushed by the engine.
func (b *Board) Best() int { return b.best }

// Status returns the last status text pushed by the engine.
func (b *Board) Status() string { return b.status }

// Frames returns how many frames have been rendered.
func (b *Board) Frames() uint64 { return b.frames }
