package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// GameID is the identifier finished games are recorded under.
const GameID = "snake"

// sidebarWidth is the width of the score column next to the board.
const sidebarWidth = 30

// Options configures a Model.
type Options struct {
	// Store records finished games and holds the best score. May be nil.
	Store *storage.Store
	// BestKey is the best-score key in the store.
	BestKey string
	// Logger receives engine and platform events. Nil discards them.
	Logger *log.Logger
	// Renderer is the lipgloss renderer used for colors. Nil uses the default.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model running one snake game.
// Bubble Tea calls Update from a single goroutine, so key presses and ticks
// reach the engine strictly one after another.
type Model struct {
	engine  *snake.Engine
	board   *Board
	store   *storage.Store
	logger  *log.Logger
	palette Palette
	keys    KeyMap
	help    help.Model
	period  time.Duration

	width      int
	height     int
	lastStatus core.Status
	quitting   bool
}

// NewModel creates a model and starts a game with the given configuration.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = core.DefaultConfig().TickPeriod
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	board := NewBoard(cfg.Tiles())
	engine := snake.New(cfg,
		snake.WithRenderer(board),
		snake.WithScoreDisplay(board),
		snake.WithStore(storage.NewBestStore(opts.Store, opts.BestKey)),
		snake.WithLogger(logger),
	)

	return Model{
		engine:     engine,
		board:      board,
		store:      opts.Store,
		logger:     logger,
		palette:    NewPalette(opts.Renderer),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		period:     cfg.TickPeriod,
		lastStatus: engine.Status(),
	}
}

// Init draws the first frame and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.engine.Redraw()
	return tickCmd(m.period)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	cmd := m.keys.Command(msg)
	switch cmd {
	case core.CmdNone:
		return m, nil
	case core.CmdQuit:
		m.quitting = true
		return m, tea.Quit
	}

	m.engine.Dispatch(cmd)
	m.lastStatus = m.engine.Status()
	return m, nil
}

// handleTick advances the simulation one step and re-arms the timer.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.engine.Step()
	m.recordFinishedGame()
	return m, tickCmd(m.period)
}

// recordFinishedGame saves the score once when the game transitions to over.
func (m *Model) recordFinishedGame() {
	status := m.engine.Status()
	defer func() { m.lastStatus = status }()

	if status != core.StatusOver || m.lastStatus == core.StatusOver {
		return
	}
	score := m.engine.Score()
	if score == 0 || m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(GameID, score); err != nil {
		m.logger.Warn("could not record score", "score", score, "error", err)
		return
	}
	m.logger.Debug("score recorded", "score", score)
}

// saveScreenshot saves the current board as plain text under ~/.snake/screenshots.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", GameID, timestamp))
	if err := os.WriteFile(path, []byte(m.board.Screen().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the board, the score column and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	needW, needH := MinTerminalSize(m.engine.Tiles())
	if m.width > 0 && m.height > 0 && (m.width < needW || m.height < needH) {
		return m.palette.Alert.Render(fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", needW, needH, m.width, m.height))
	}

	boardView := m.palette.RenderScreen(m.board.Screen())
	page := lipgloss.JoinHorizontal(lipgloss.Top, boardView, m.sidebar())
	return lipgloss.JoinVertical(lipgloss.Left, page, m.help.View(m.keys))
}

// MinTerminalSize returns the terminal size needed for a grid of tiles:
// the framed board, the score column and one help line.
func MinTerminalSize(tiles int) (w, h int) {
	boardW, boardH := boardSize(tiles)
	return boardW + sidebarWidth, boardH + 1
}

// sidebar renders the score column.
func (m Model) sidebar() string {
	p := m.palette
	lines := []string{
		p.Title.Render("SNAKE"),
		"",
		p.Label.Render("Score ") + p.Value.Render(fmt.Sprint(m.board.Score())),
		p.Label.Render("Best  ") + p.Value.Render(fmt.Sprint(m.board.Best())),
		"",
	}

	switch status := m.board.Status(); {
	case status == "":
	case m.engine.Status() == core.StatusOver:
		lines = append(lines, p.Alert.Render(status))
	default:
		lines = append(lines, p.Status.Render(status))
	}

	return lipgloss.NewStyle().
		Width(sidebarWidth).
		PaddingLeft(2).
		Render(strings.Join(lines, "\n"))
}

// Engine returns the engine driven by this model.
func (m Model) Engine() *snake.Engine {
	return m.engine
}

// Board returns the board the engine renders into.
func (m Model) Board() *Board {
	return m.board
}

// Run starts the Bubble Tea program for one local game.
func Run(cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
