package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the built-in configuration: a 20x20 grid of 20px cells
// stepping every 120ms.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			SizePx: 400,
			CellPx: 20,
		},
		Timing: TimingConfig{
			TickMs: 120,
		},
		Storage: StorageConfig{
			DBPath:  "~/.snake/scores.db",
			BestKey: "snake-best",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.snake/snake.log",
		},
		SSH: SSHConfig{
			Address:        ":23234",
			HostKey:        "",
			IdleTimeoutMin: 30,
		},
	}
}
