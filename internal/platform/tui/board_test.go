package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestBoardSize(t *testing.T) {
	b := NewBoard(20)
	if b.Screen().Width() != 42 || b.Screen().Height() != 22 {
		t.Errorf("screen = %dx%d, want 42x22", b.Screen().Width(), b.Screen().Height())
	}
}

func TestBoardRender(t *testing.T) {
	b := NewBoard(20)
	snake := []core.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	food := core.Point{X: 3, Y: 4}

	b.Render(snake, food, 20, 20)

	s := b.Screen()
	tests := []struct {
		name  string
		p     core.Point
		glyph rune
		color core.Color
	}{
		{"head", snake[0], glyphHead, core.ColorHead},
		{"body", snake[1], glyphBody, core.ColorBody},
		{"tail", snake[2], glyphBody, core.ColorBody},
		{"food", food, glyphFood, core.ColorFood},
		{"empty", core.Point{X: 0, Y: 0}, glyphEmpty, core.ColorBoard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := 1+tt.p.X*tileCols, 1+tt.p.Y
			for i := 0; i < tileCols; i++ {
				cell := s.GetCell(x+i, y)
				if cell.Rune != tt.glyph || cell.Color != tt.color {
					t.Errorf("cell (%d,%d) = %q/%v, want %q/%v", x+i, y, cell.Rune, cell.Color, tt.glyph, tt.color)
				}
			}
		})
	}

	if got := s.GetCell(0, 0).Rune; got != '┌' {
		t.Errorf("frame corner = %q, want '┌'", got)
	}
	if b.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", b.Frames())
	}
}

func TestBoardRenderSkipsMissingFood(t *testing.T) {
	b := NewBoard(12)
	b.Render([]core.Point{{X: 5, Y: 5}}, core.Point{X: -1, Y: -1}, 20, 12)

	if strings.ContainsRune(b.Screen().String(), glyphFood) {
		t.Error("food drawn although it is off the grid")
	}
}

func TestBoardRenderResizes(t *testing.T) {
	b := NewBoard(20)
	b.Render(nil, core.Point{X: 1, Y: 1}, 20, 15)

	if b.Screen().Width() != 32 || b.Screen().Height() != 17 {
		t.Errorf("screen = %dx%d, want 32x17", b.Screen().Width(), b.Screen().Height())
	}
}

func TestBoardScoreDisplay(t *testing.T) {
	b := NewBoard(20)
	b.SetScore(4)
	b.SetBest(9)
	b.SetStatus("Paused")

	if b.Score() != 4 || b.Best() != 9 || b.Status() != "Paused" {
		t.Errorf("got score=%d best=%d status=%q", b.Score(), b.Best(), b.Status())
	}
}

func TestBoardStatusBanner(t *testing.T) {
	tests := []struct {
		name   string
		tiles  int
		status string
		want   string
	}{
		{"paused", 20, "Paused", " Paused "},
		{"game over fits", 20, "Game over! Press Enter to play again.", " Game over! Press Enter to play again. "},
		{"game over cut to first sentence", 15, "Game over! Press Enter to play again.", " Game over! "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(tt.tiles)
			b.SetStatus(tt.status)
			b.Render([]core.Point{{X: 1, Y: 1}}, core.Point{X: 3, Y: 3}, 20, tt.tiles)

			row := rowText(b.Screen(), 1+tt.tiles/2)
			if !strings.Contains(row, tt.want) {
				t.Errorf("middle row = %q, want it to contain %q", row, tt.want)
			}
		})
	}
}

func TestBoardNoBannerWhileRunning(t *testing.T) {
	b := NewBoard(20)
	b.SetStatus("Paused")
	b.SetStatus("")
	b.Render(nil, core.Point{X: 3, Y: 3}, 20, 20)

	if strings.Contains(b.Screen().String(), "Paused") {
		t.Error("banner drawn with an empty status")
	}
}

func rowText(s *core.Screen, y int) string {
	var b strings.Builder
	for x := 0; x < s.Width(); x++ {
		b.WriteRune(s.GetCell(x, y).Rune)
	}
	return b.String()
}
