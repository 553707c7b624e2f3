package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tadpole-arcade/internal/core"
	"github.com/vovakirdan/tadpole-arcade/internal/registry"
	"github.com/vovakirdan/tadpole-arcade/internal/storage"
)

// Steering hold windows at 60 ticks per second. A fresh press is held
// through the terminal's first repeat delay (up to 500ms); later repeats
// arrive every ~33ms and only need a short window.
const (
	defaultFirstHoldTicks = 30
	defaultHoldTicks      = 9
)

// Options wires optional collaborators into a game session.
type Options struct {
	Store          *storage.Store // nil disables run history
	Cues           core.CueSink   // nil plays nothing
	Player         string         // stored with every run
	Logger         *log.Logger
	HoldTicks      int // steering window between repeats, 0 for default
	FirstHoldTicks int // steering window before the first repeat, 0 for default
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	held       *core.HeldKeys
	gameState  core.GameState
	runTicks   int
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.HoldTicks <= 0 {
		opts.HoldTicks = defaultHoldTicks * cfg.TickRate / 60
	}
	if opts.FirstHoldTicks <= 0 {
		opts.FirstHoldTicks = defaultFirstHoldTicks * cfg.TickRate / 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		held:       core.NewHeldKeys(opts.FirstHoldTicks, opts.HoldTicks),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToInput(msg, &m.inputFrame, m.held) {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		m.saveRun()
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The simulation does not
// depend on the screen size, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	m.held.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.held.Tick()
	m.inputFrame.Clear()

	for _, c := range result.Cues {
		if m.opts.Cues != nil {
			m.opts.Cues.Play(c)
		}
	}

	switch {
	case wasOver && !m.gameState.GameOver:
		// Restarted
		m.scoreSaved = false
		m.runTicks = 0
		m.held.Reset()
		m.opts.Logger.Info("run started", "game", m.game.ID())
	case !m.gameState.GameOver && !m.gameState.Paused:
		m.runTicks++
	case m.gameState.GameOver && !wasOver:
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the current run once. Runs without points are skipped.
func (m *Model) saveRun() {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.opts.Store == nil {
		return
	}

	run := storage.Run{
		GameID:   m.game.ID(),
		Player:   m.opts.Player,
		Score:    m.gameState.Score,
		Stage:    m.gameState.Stage,
		Coins:    m.gameState.Coins,
		Duration: time.Duration(m.runTicks) * time.Second / time.Duration(m.config.TickRate),
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.opts.Logger.Error("cannot save run", "err", err)
		return
	}
	m.opts.Logger.Info("run saved", "game", run.GameID, "score", run.Score, "stage", run.Stage)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Quitting reports whether the player asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// BackToMenu reports whether the session ended with the back key.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a game. It returns true when the
// player asked to go back to the menu rather than quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
