// snake is a terminal snake game that can also be served over SSH.
//
// Usage:
//
//	snake                    - Play in the terminal (same as "snake play")
//	snake play               - Play in the terminal
//	snake serve              - Start SSH server for remote play
//	snake headless           - Play with text commands on stdin, frames on stdout
//	snake scores             - Show recorded scores and the best score
//
// Global flags:
//
//	--config <path>     - Path to a config YAML file
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--db <path>         - Set database path (default: ~/.snake/scores.db)
//	--log-level <level> - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer, eat, grow, don't crash",
	Long: `Snake is the classic grid game for the terminal.

Steer the snake with the arrow keys or WASD, eat food to grow and score,
and avoid the walls and your own tail.

Available commands:
  play      - Play in this terminal (default)
  serve     - Start SSH server for remote play
  headless  - Drive the game from stdin, print text frames
  scores    - View recorded scores

Examples:
  snake
  snake play --seed 42
  snake serve --ssh :2222
  snake scores --limit 5`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: search ~/.snake, ./configs)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig loads the configuration and applies flags the user set explicitly.
// It exits the process on invalid configuration.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagChanged(cmd, "db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagChanged(cmd, "log-level") {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

// newLogger creates a leveled logger writing to w.
func newLogger(w io.Writer, level, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
