// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Config contains all configuration for the game and its platforms.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// BoardConfig defines the grid geometry. Tiles = SizePx / CellPx.
type BoardConfig struct {
	SizePx int `yaml:"size_px"`
	CellPx int `yaml:"cell_px"`
}

// TimingConfig defines the fixed simulation rate.
type TimingConfig struct {
	TickMs int `yaml:"tick_ms"`
}

// StorageConfig defines where scores are persisted.
type StorageConfig struct {
	DBPath  string `yaml:"db_path"`
	BestKey string `yaml:"best_key"`
}

// LogConfig defines logging level and destination for TUI mode.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// SSHConfig defines the SSH server parameters.
type SSHConfig struct {
	Address        string `yaml:"address"`
	HostKey        string `yaml:"host_key"`
	IdleTimeoutMin int    `yaml:"idle_timeout_min"`
}

// Tiles returns the grid side length in cells.
func (c Config) Tiles() int {
	if c.Board.CellPx <= 0 {
		return 0
	}
	return c.Board.SizePx / c.Board.CellPx
}

// TickPeriod returns the simulation step interval.
func (c Config) TickPeriod() time.Duration {
	return time.Duration(c.Timing.TickMs) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.SSH.IdleTimeoutMin) * time.Minute
}

// Runtime converts the config into the engine's runtime constants.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		BoardPx:    c.Board.SizePx,
		CellPx:     c.Board.CellPx,
		TickPeriod: c.TickPeriod(),
		Seed:       seed,
	}
}

// Validate checks that the board geometry and timing are usable.
func (c Config) Validate() error {
	var errs []error
	if c.Board.SizePx <= 0 {
		errs = append(errs, fmt.Errorf("board.size_px must be positive, got %d", c.Board.SizePx))
	}
	if c.Board.CellPx <= 0 {
		errs = append(errs, fmt.Errorf("board.cell_px must be positive, got %d", c.Board.CellPx))
	}
	if c.Board.SizePx > 0 && c.Board.CellPx > 0 {
		if c.Board.SizePx%c.Board.CellPx != 0 {
			errs = append(errs, fmt.Errorf("board.size_px %d is not a multiple of board.cell_px %d", c.Board.SizePx, c.Board.CellPx))
		}
		if c.Tiles() < snake.MinTiles {
			errs = append(errs, fmt.Errorf("board must be at least %d tiles across, got %d", snake.MinTiles, c.Tiles()))
		}
	}
	if c.Timing.TickMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMs))
	}
	if c.SSH.IdleTimeoutMin < 0 {
		errs = append(errs, fmt.Errorf("ssh.idle_timeout_min must not be negative, got %d", c.SSH.IdleTimeoutMin))
	}
	return errors.Join(errs...)
}
