package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rabduction/internal/core"
	"github.com/vovakirdan/rabduction/internal/registry"
	"github.com/vovakirdan/rabduction/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	held       heldDirection
	inputFrame core.InputFrame
	gameState  core.GameState
	tickLoop   uint64
	inSession  bool // Back returns to a menu instead of exiting
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards output.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		tickLoop:   newTickLoop(),
	}
	m.fitScreen()
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	m.warnConfig()
	return tickCmd(m.tickLoop, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.tickLoop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	case key.Matches(msg, keys.Back):
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if !m.inSession {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionQuit:
		if isQuit {
			m.quitting = true
			return m, tea.Quit
		}
	case core.ActionLeft, core.ActionRight:
		m.held.press(action, holdTicks(m.config.TickRate))
		m.inputFrame.Set(action)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps the run going; the game scales to any screen size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.held.release()
		m.inputFrame.Clear()
		m.logger.Info("run restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.tickLoop, m.config.TickRate)
	}

	m.held.apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
		m.held.release()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.tickLoop, m.config.TickRate)
}

// saveRun records the finished run. Best-effort: the game continues regardless.
func (m Model) saveRun() {
	logger := m.logger.With("game", m.game.ID(), "score", m.gameState.Score, "ticks", m.gameState.Ticks)
	if m.store == nil {
		logger.Info("run ended")
		return
	}

	runID, err := m.store.SaveRun(storage.RunResult{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Ticks:  m.gameState.Ticks,
		Seed:   m.config.Seed,
	})
	if err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	logger.Info("run ended", "run", runID)
}

// warnConfig logs a config load problem reported by the game.
func (m Model) warnConfig() {
	type loadErrorer interface{ LoadError() error }
	if le, ok := m.game.(loadErrorer); ok && le.LoadError() != nil {
		m.logger.Warn("config not loaded, using defaults", "error", le.LoadError())
	}
}

// fitScreen sizes the game screen to leave room for the help footer.
func (m *Model) fitScreen() {
	footer := lipgloss.Height(m.help.View(m.keyMapper.Keys()))
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-footer, 1))
}

// saveScreenshot saves the current screen as plain text under the XDG data dir.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	timestamp := time.Now().Format("20060102_150405")
	path, err := xdg.DataFile(fmt.Sprintf("rabduction/screenshots/%s_%s.txt", m.game.ID(), timestamp))
	if err != nil {
		m.logger.Warn("could not resolve screenshot path", "error", err)
		return
	}

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
