package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/logging"
	"github.com/vovakirdan/tui-dots/internal/registry"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

// GameOptions carries the per-session settings of a GameModel.
type GameOptions struct {
	Player   string      // recorded with finished rounds
	Logger   *log.Logger // nil discards
	Embedded bool        // back to menu hands control to a parent model instead of ending the program
}

// GameModel is the Bubble Tea model that runs one game: it maps keys and
// mouse events to an input frame, steps the game on every tick and records
// the round once the board is complete.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       GameOptions
	logger     *log.Logger
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	now        func() time.Time
	quitting   bool
	backToMenu bool
	roundSaved bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = defaultTickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	if ls, ok := game.(registry.LoggerSetter); ok {
		ls.SetLogger(logger.With("game", game.ID()))
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keyMapper:  NewKeyMapper(DefaultGameKeyMap()),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := MapMouse(msg); ok {
			m.inputFrame.Push(ev)
		}
		return m, nil

	case tea.BlurMsg:
		// The terminal lost focus: a release may never arrive.
		m.inputFrame.Push(core.PointerEvent{Kind: core.PointerLeave})
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves a finished or paused board; during play it only cancels a drag.
	action, _ := m.keyMapper.MapKey(msg)
	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if !m.opts.Embedded {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize follows the terminal size. Games that cannot keep their
// state across a resize are reset.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()

	return m, nil
}

// handleTick steps the game once.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.started.IsZero() {
		m.started = m.now()
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	// A new board after a saved round starts a new round.
	if m.roundSaved && !result.State.GameOver {
		m.roundSaved = false
		m.started = m.now()
	}
	m.gameState = result.State

	if m.gameState.GameOver && !m.roundSaved {
		m.saveRound()
		m.roundSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRound records the finished round. Storage is best-effort: the game
// continues if it fails.
func (m GameModel) saveRound() {
	round := storage.RoundResult{
		GameID:       m.game.ID(),
		Player:       m.opts.Player,
		Squares:      m.gameState.Score,
		DurationSecs: int(m.now().Sub(m.started).Seconds()),
	}
	if s, ok := m.game.(core.Summarizer); ok {
		sum := s.Summary()
		round.Width = sum.Width
		round.Height = sum.Height
		round.Squares = sum.Squares
		round.Connections = sum.Connections
	}

	m.logger.Info("round finished",
		"player", round.Player,
		"grid", fmt.Sprintf("%dx%d", round.Width, round.Height),
		"squares", round.Squares,
		"secs", round.DurationSecs,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRound(round); err != nil {
		m.logger.Warn("round not saved", "err", err)
	}
}

// saveScreenshot writes the current screen to ~/.dots/screenshots.
func (m GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".dots", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// ProgramOptions are the Bubble Tea options a game needs: the alternate
// screen, mouse drags and focus reports.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	}
}

// Run starts the Bubble Tea program with the given game.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(model, ProgramOptions()...)
	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
