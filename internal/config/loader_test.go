package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return home, work
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default %+v differs from DefaultConfig %+v", cfg, DefaultConfig())
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Tiles() != 20 || cfg.TickPeriod() != 120*time.Millisecond {
		t.Errorf("Expected 20 tiles at 120ms, got %d at %v", cfg.Tiles(), cfg.TickPeriod())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "timing:\n  tick_ms: 80\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timing.TickMs != 80 {
		t.Errorf("Expected tick_ms 80, got %d", cfg.Timing.TickMs)
	}
	if cfg.Board != DefaultConfig().Board {
		t.Errorf("Board should keep defaults, got %+v", cfg.Board)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "board: [", "failed to parse"},
		{"zero cell", "board:\n  cell_px: 0\n", "cell_px must be positive"},
		{"uneven grid", "board:\n  size_px: 410\n", "not a multiple"},
		{"tiny grid", "board:\n  size_px: 280\n", "at least 15 tiles"},
		{"zero tick", "timing:\n  tick_ms: 0\n", "tick_ms must be positive"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			writeFile(t, path, tc.content)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Error %q should mention %q", err, tc.want)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing custom config")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "snake.yaml"), "timing:\n  tick_ms: 150\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timing.TickMs != 150 {
		t.Errorf("Expected local config tick 150, got %d", cfg.Timing.TickMs)
	}

	// User config wins over the local one
	writeFile(t, filepath.Join(home, ".snake", "config.yaml"), "timing:\n  tick_ms: 90\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timing.TickMs != 90 {
		t.Errorf("Expected user config tick 90, got %d", cfg.Timing.TickMs)
	}

	// An invalid user config is skipped
	writeFile(t, filepath.Join(home, ".snake", "config.yaml"), "timing:\n  tick_ms: -1\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timing.TickMs != 150 {
		t.Errorf("Expected fallback to local config tick 150, got %d", cfg.Timing.TickMs)
	}
}

func TestRuntime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Board.SizePx = 600
	cfg.Board.CellPx = 30

	rt := cfg.Runtime(7)
	if rt.Tiles() != 20 || rt.CellPx != 30 || rt.Seed != 7 || rt.TickPeriod != 120*time.Millisecond {
		t.Errorf("Unexpected runtime config %+v", rt)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandHome("~/.snake/x.db"); got != filepath.Join(home, ".snake", "x.db") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("Absolute paths should be unchanged, got %q", got)
	}
}

func TestLoadMinimumGrid(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "small.yaml")
	writeFile(t, path, fmt.Sprintf("board:\n  size_px: %d\n  cell_px: 20\n", snake.MinTiles*20))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Tiles() != snake.MinTiles {
		t.Errorf("Tiles() = %d, want %d", cfg.Tiles(), snake.MinTiles)
	}
}
