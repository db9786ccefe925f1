package core

// Color identifies the role of a screen cell. Platforms map roles to real
// terminal colors, so games never deal with escape codes.
type Color uint8

// Palette roles used by the snake renderers.
const (
	ColorDefault Color = iota
	ColorBoard
	ColorFood
	ColorHead
	ColorBody
	ColorFrame
	ColorText
	ColorDim
	ColorAlert
)
