package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board colors, taken from the canvas version of the game.
const (
	hexBoard = "#1a2433"
	hexFood  = "#ef476f"
	hexHead  = "#06d6a0"
	hexBody  = "#34c89a"
)

// Palette maps core.Color roles to lipgloss styles for one renderer.
// SSH sessions get their own renderer so colors match the remote terminal.
type Palette struct {
	styles map[core.Color]lipgloss.Style

	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Status lipgloss.Style
	Alert  lipgloss.Style
}

// NewPalette builds the styles for the given renderer.
// A nil renderer uses lipgloss's default one.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	bg := lipgloss.Color(hexBoard)

	return Palette{
		styles: map[core.Color]lipgloss.Style{
			core.ColorDefault: r.NewStyle(),
			core.ColorBoard:   r.NewStyle().Background(bg),
			core.ColorFood:    r.NewStyle().Foreground(lipgloss.Color(hexFood)).Background(bg),
			core.ColorHead:    r.NewStyle().Foreground(lipgloss.Color(hexHead)).Background(bg),
			core.ColorBody:    r.NewStyle().Foreground(lipgloss.Color(hexBody)).Background(bg),
			core.ColorFrame:   r.NewStyle().Foreground(lipgloss.Color("245")),
			core.ColorText:    r.NewStyle().Foreground(lipgloss.Color("15")),
			core.ColorDim:     r.NewStyle().Foreground(lipgloss.Color("241")),
			core.ColorAlert:   r.NewStyle().Foreground(lipgloss.Color(hexFood)).Bold(true),
		},
		Title:  r.NewStyle().Foreground(lipgloss.Color(hexHead)).Bold(true),
		Label:  r.NewStyle().Foreground(lipgloss.Color("241")),
		Value:  r.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		Status: r.NewStyle().Foreground(lipgloss.Color("11")),
		Alert:  r.NewStyle().Foreground(lipgloss.Color(hexFood)).Bold(true),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p.styles[startColor]
			if !ok {
				style = p.styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
