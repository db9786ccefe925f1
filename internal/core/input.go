package core

import "strings"

// Command is a semantic player intent, abstracted from physical key presses.
// Platforms translate keys or text into commands; the engine only sees these.
type Command int

const (
	CmdNone        Command = iota
	CmdMoveUp              // W, Up arrow
	CmdMoveDown            // S, Down arrow
	CmdMoveLeft            // A, Left arrow
	CmdMoveRight           // D, Right arrow
	CmdTogglePause         // Space, P
	CmdRestart             // Enter, R
	CmdQuit                // Q, Ctrl+C, Esc - leaves the session, never reaches the engine
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "None"
	case CmdMoveUp:
		return "MoveUp"
	case CmdMoveDown:
		return "MoveDown"
	case CmdMoveLeft:
		return "MoveLeft"
	case CmdMoveRight:
		return "MoveRight"
	case CmdTogglePause:
		return "TogglePause"
	case CmdRestart:
		return "Restart"
	case CmdQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the grid direction of a movement command.
// The second result is false for non-movement commands.
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CmdMoveUp:
		return Up, true
	case CmdMoveDown:
		return Down, true
	case CmdMoveLeft:
		return Left, true
	case CmdMoveRight:
		return Right, true
	default:
		return Direction{}, false
	}
}

// commandWords maps textual input to commands. Keys mirror the keyboard
// bindings so scripted sessions read like key presses.
var commandWords = map[string]Command{
	"up":      CmdMoveUp,
	"w":       CmdMoveUp,
	"down":    CmdMoveDown,
	"s":       CmdMoveDown,
	"left":    CmdMoveLeft,
	"a":       CmdMoveLeft,
	"right":   CmdMoveRight,
	"d":       CmdMoveRight,
	"pause":   CmdTogglePause,
	"p":       CmdTogglePause,
	"space":   CmdTogglePause,
	"restart": CmdRestart,
	"r":       CmdRestart,
	"enter":   CmdRestart,
	"quit":    CmdQuit,
	"q":       CmdQuit,
}

// ParseCommand converts a word such as "up" or "W" into a command.
// Unrecognized input yields CmdNone.
func ParseCommand(word string) Command {
	if c, ok := commandWords[strings.ToLower(strings.TrimSpace(word))]; ok {
		return c
	}
	return CmdNone
}
