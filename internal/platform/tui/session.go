package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rabduction/internal/config"
	"github.com/vovakirdan/rabduction/internal/core"
	"github.com/vovakirdan/rabduction/internal/registry"
	"github.com/vovakirdan/rabduction/internal/storage"
)

// difficultySetter is implemented by games that take a per-instance preset.
type difficultySetter interface {
	SetDifficulty(config.DifficultyPreset)
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full flow: menu -> game -> menu, with the
// scoreboard reachable from the menu. It runs locally and per SSH session.
type SessionModel struct {
	gameID     string
	title      string
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	screen     sessionScreen
	menu       MenuModel
	scoreboard ScoreboardModel
	gameModel  Model
	quitting   bool
}

// NewSessionModel creates a session for the registered game gameID.
func NewSessionModel(gameID string, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (SessionModel, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return SessionModel{}, err
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := SessionModel{
		gameID: gameID,
		title:  game.Title(),
		store:  store,
		logger: logger,
		config: cfg,
	}
	m.menu = NewMenuModel(gameID, m.title, store, cfg)
	return m, nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.gameID, m.title, m.store, m.config)
		m.screen = screenScores
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().Preset)
	}

	return m, cmd
}

// startGame creates a fresh game at preset and switches to it.
func (m SessionModel) startGame(preset config.DifficultyPreset) (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.gameID)
	if err != nil {
		m.logger.Error("cannot create game", "game", m.gameID, "error", err)
		m.quitting = true
		return m, tea.Quit
	}
	if ds, ok := game.(difficultySetter); ok {
		ds.SetDifficulty(preset)
	}

	cfg := m.config
	cfg.Seed = time.Now().UnixNano()

	m.gameModel = NewModel(game, m.store, m.logger.With("difficulty", string(preset)), cfg)
	m.gameModel.inSession = true
	m.screen = screenGame
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu rebuilds the menu so the best score is current.
// Pending ticks from a finished game are dropped by the menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.gameID, m.title, m.store, m.config)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// RunSession starts the menu-driven session locally.
func RunSession(gameID string, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model, err := NewSessionModel(gameID, store, logger, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
