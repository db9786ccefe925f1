package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Status texts pushed to the ScoreDisplay.
const (
	StatusTextGameOver = "Game over! Press Enter to play again."
	StatusTextPaused   = "Paused"
	StatusTextCleared  = "Board cleared! Press Enter to play again."
)

// StartHead is where the head of a fresh snake sits; the body trails to the left.
var StartHead = core.Point{X: 10, Y: 10}

// StartLength is the number of segments a fresh snake has.
const StartLength = 3

// MinTiles is the smallest grid the engine plays on. The starting head then
// has four free tiles ahead of it before the right wall.
const MinTiles = 15

// noFood marks the absence of food once the board is full.
var noFood = core.Point{X: -1, Y: -1}

// state is everything a restart replaces. Keeping it in one value lets Reset
// swap it in whole.
type state struct {
	snake   []core.Point // Head at index 0
	current core.Direction
	pending core.Direction // Applied at the start of the next step
	food    core.Point
	score   int
	status  core.Status
}

// Engine is the snake simulation. It advances one grid step per Step call and
// reports every change through its collaborators.
// An Engine is not safe for concurrent use; the platform drives it from a
// single goroutine.
type Engine struct {
	cfg   core.RuntimeConfig
	tiles int
	rng   *rand.Rand
	tick  uint64
	best  int

	state

	renderer Renderer
	display  ScoreDisplay
	store    PersistentStore
	logger   *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRenderer sets the board renderer.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// WithScoreDisplay sets the score/status text sink.
func WithScoreDisplay(d ScoreDisplay) Option {
	return func(e *Engine) { e.display = d }
}

// WithStore sets the best score store.
func WithStore(s PersistentStore) Option {
	return func(e *Engine) { e.store = s }
}

// WithLogger sets the logger used for non-fatal problems such as store errors.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an engine for the given configuration and starts a game.
// A zero seed uses the current time. Missing collaborators are replaced by
// no-op implementations and an in-memory best score.
func New(cfg core.RuntimeConfig, opts ...Option) *Engine {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:   cfg,
		tiles: cfg.Tiles(),
		rng:   rand.New(rand.NewSource(cfg.Seed)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.renderer == nil {
		e.renderer = nopRenderer{}
	}
	if e.display == nil {
		e.display = nopDisplay{}
	}
	if e.store == nil {
		e.store = &memoryStore{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.tiles < MinTiles {
		e.logger.Warn("grid too small for the starting snake, enlarging", "tiles", e.tiles, "min", MinTiles)
		e.tiles = MinTiles
	}

	best, err := e.store.GetBest()
	if err != nil {
		e.logger.Warn("best score unavailable, starting from 0", "error", err)
		best = 0
	}
	e.best = max(best, 0)
	e.display.SetBest(e.best)

	e.Reset()
	return e
}

// Reset starts a new game. It may be called at any time and replaces the
// snake, directions, food, score and status together.
func (e *Engine) Reset() {
	next := state{
		snake:   make([]core.Point, 0, StartLength),
		current: core.Right,
		pending: core.Right,
		score:   0,
		status:  core.StatusRunning,
	}
	for i := 0; i < StartLength; i++ {
		next.snake = append(next.snake, core.Point{X: StartHead.X - i, Y: StartHead.Y})
	}
	next.food = e.freeCell(next.snake)
	if next.food == noFood {
		next.status = core.StatusOver
	}

	e.state = next

	e.display.SetScore(0)
	e.display.SetStatus("")
	e.logger.Debug("game reset", "food", e.food)
}

// placeFood moves the food to a random cell not covered by the snake.
// A full board ends the game.
func (e *Engine) placeFood() {
	e.food = e.freeCell(e.snake)
	if e.food == noFood {
		e.status = core.StatusOver
		e.display.SetStatus(StatusTextCleared)
		e.logger.Info("board cleared", "score", e.score)
	}
}

// freeCell draws random cells until one misses the snake. After a bounded
// number of draws it picks uniformly among the remaining free cells instead,
// so long snakes don't spin. Returns noFood when the board is full.
func (e *Engine) freeCell(snake []core.Point) core.Point {
	occupied := make(map[core.Point]struct{}, len(snake))
	for _, p := range snake {
		occupied[p] = struct{}{}
	}

	budget := 4 * e.tiles * e.tiles
	for n := 0; n < budget; n++ {
		p := core.Point{X: e.rng.Intn(e.tiles), Y: e.rng.Intn(e.tiles)}
		if _, hit := occupied[p]; !hit {
			return p
		}
	}

	free := make([]core.Point, 0, e.tiles*e.tiles-len(occupied))
	for y := 0; y < e.tiles; y++ {
		for x := 0; x < e.tiles; x++ {
			p := core.Point{X: x, Y: y}
			if _, hit := occupied[p]; !hit {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return noFood
	}
	return free[e.rng.Intn(len(free))]
}

// SetDirection queues d for the next step. Invalid vectors and the exact
// reverse of the direction applied last step are ignored; anything else
// overwrites the queued direction.
func (e *Engine) SetDirection(d core.Direction) {
	if !d.Valid() || d == e.current.Reverse() {
		return
	}
	e.pending = d
}

// TogglePause flips between running and paused. It does nothing once the game is over.
func (e *Engine) TogglePause() {
	switch e.status {
	case core.StatusRunning:
		e.status = core.StatusPaused
		e.display.SetStatus(StatusTextPaused)
	case core.StatusPaused:
		e.status = core.StatusRunning
		e.display.SetStatus("")
	}
}

// Dispatch applies a player command. Restart is always honoured.
func (e *Engine) Dispatch(cmd core.Command) {
	if d, ok := cmd.Direction(); ok {
		e.SetDirection(d)
		return
	}

	switch cmd {
	case core.CmdTogglePause:
		e.TogglePause()
	case core.CmdRestart:
		e.Reset()
		e.Redraw()
	}
}

// Step advances the simulation by one tick.
func (e *Engine) Step() {
	e.tick++

	if e.status != core.StatusRunning {
		e.render()
		return
	}

	e.current = e.pending
	head := e.snake[0].Add(e.current)

	if !head.In(e.tiles) || e.occupies(head) {
		e.status = core.StatusOver
		e.display.SetStatus(StatusTextGameOver)
		e.logger.Info("game over", "score", e.score, "head", head, "length", len(e.snake))
		return
	}

	e.snake = append(e.snake, core.Point{})
	copy(e.snake[1:], e.snake[:len(e.snake)-1])
	e.snake[0] = head

	if head == e.food {
		e.score++
		e.display.SetScore(e.score)
		if e.score > e.best {
			e.best = e.score
			if err := e.store.SetBest(e.best); err != nil {
				e.logger.Warn("could not persist best score", "best", e.best, "error", err)
			}
			e.display.SetBest(e.best)
		}
		e.placeFood()
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}

	e.render()
}

// occupies reports whether p is covered by any segment, tail included.
func (e *Engine) occupies(p core.Point) bool {
	for _, seg := range e.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Redraw pushes the current board and texts to the collaborators.
func (e *Engine) Redraw() {
	e.display.SetScore(e.score)
	e.display.SetBest(e.best)
	switch e.status {
	case core.StatusPaused:
		e.display.SetStatus(StatusTextPaused)
	case core.StatusOver:
		if e.food == noFood {
			e.display.SetStatus(StatusTextCleared)
		} else {
			e.display.SetStatus(StatusTextGameOver)
		}
	default:
		e.display.SetStatus("")
	}
	e.render()
}

func (e *Engine) render() {
	e.renderer.Render(e.Segments(), e.food, e.cfg.CellPx, e.tiles)
}

// Segments returns a copy of the snake, head first.
func (e *Engine) Segments() []core.Point {
	out := make([]core.Point, len(e.snake))
	copy(out, e.snake)
	return out
}

// Tiles returns the grid side length.
func (e *Engine) Tiles() int {
	return e.tiles
}

// Config returns the configuration the engine was created with.
func (e *Engine) Config() core.RuntimeConfig {
	return e.cfg
}

// Status returns the current game status.
func (e *Engine) Status() core.Status {
	return e.status
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Best returns the best score seen by this process or loaded from the store.
func (e *Engine) Best() int {
	return e.best
}
