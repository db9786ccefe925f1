package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/platform/headless"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagTicks int

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Play without a terminal UI",
	Long: `Run the game at its normal speed, reading commands from stdin and
printing every frame as plain text to stdout.

Commands are words separated by spaces or newlines:
  up/w  down/s  left/a  right/d  pause/p  restart/r  quit/q

The game stops on "quit", at end of input (unless --ticks is set), after
--ticks steps, or on Ctrl+C.

Examples:
  snake headless --seed 1 --ticks 50 < moves.txt
  echo "down left" | snake headless --ticks 20`,
	Args: cobra.NoArgs,
	Run:  runHeadless,
}

func init() {
	headlessCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Stop after this many steps (0 = no limit)")
}

func runHeadless(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	logger := newLogger(os.Stderr, cfg.Log.Level, "snake")

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("scores database unavailable", "path", cfg.Storage.DBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	rt := cfg.Runtime(flagSeed)
	printer := headless.NewPrinter(os.Stdout, rt.Tiles())
	eng := snake.New(rt,
		snake.WithRenderer(printer),
		snake.WithScoreDisplay(printer),
		snake.WithStore(storage.NewBestStore(store, cfg.Storage.BestKey)),
		snake.WithLogger(logger),
	)
	eng.Redraw()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	game := &headlessGame{
		Engine: eng,
		store:  store,
		logger: logger,
		left:   flagTicks,
		cancel: cancel,
		last:   eng.Status(),
	}

	cmds := headless.ReadCommands(ctx, os.Stdin)
	if flagTicks > 0 {
		cmds = keepOpen(ctx, cmds)
	}

	runErr := loop.Run(ctx, game, rt.TickPeriod, cmds)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
	if err := printer.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing frames: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("final score %d  best %d  %s\n", eng.Score(), eng.Best(), eng.Status())
}

// headlessGame counts steps for --ticks and records finished games.
type headlessGame struct {
	*snake.Engine
	store  *storage.Store
	logger *log.Logger
	left   int
	cancel context.CancelFunc
	last   core.Status
}

func (g *headlessGame) Step() {
	g.Engine.Step()

	status := g.Status()
	if status == core.StatusOver && g.last != core.StatusOver && g.Score() > 0 && g.store != nil {
		if _, err := g.store.SaveScore(tui.GameID, g.Score()); err != nil {
			g.logger.Warn("could not record score", "score", g.Score(), "error", err)
		}
	}
	g.last = status

	if g.left > 0 {
		g.left--
		if g.left == 0 {
			g.cancel()
		}
	}
}

func (g *headlessGame) Dispatch(cmd core.Command) {
	g.Engine.Dispatch(cmd)
	g.last = g.Status()
}

// keepOpen forwards commands from in until ctx is done. The result is never
// closed, so the end of a script does not stop a run that still has ticks left.
func keepOpen(ctx context.Context, in <-chan core.Command) <-chan core.Command {
	out := make(chan core.Command)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case cmd, ok := <-in:
				if !ok {
					return
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
