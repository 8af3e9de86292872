package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rabduction/internal/config"
	"github.com/vovakirdan/rabduction/internal/core"
	"github.com/vovakirdan/rabduction/internal/registry"
	"github.com/vovakirdan/rabduction/internal/storage"
)

const fakeGameID = "tui-fake"

// fakeGame ends the run after a fixed number of ticks and records inputs.
type fakeGame struct {
	endAfter int
	state    core.GameState
	inputs   []core.InputFrame
	resets   int
	preset   config.DifficultyPreset
}

func (g *fakeGame) ID() string    { return fakeGameID }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if !g.state.GameOver && !g.state.Paused {
		g.state.Ticks++
		g.state.Score = g.state.Ticks * 10
		g.state.GameOver = g.endAfter > 0 && g.state.Ticks >= g.endAfter
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) SetDifficulty(p config.DifficultyPreset) { g.preset = p }

func init() {
	registry.Register(fakeGameID, func() registry.Game { return &fakeGame{endAfter: 3} })
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99}
}

// tick delivers one tick from the model's own loop.
func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{Loop: m.tickLoop})
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelSavesRunOnce(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{endAfter: 3}
	m := NewModel(game, store, nil, testRuntime())
	m.Init()

	for i := 0; i < 10; i++ {
		m = tick(t, m)
	}

	if !m.State().GameOver {
		t.Fatal("fake game should be over")
	}
	scores, err := store.TopScores(fakeGameID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved run, got %d", len(scores))
	}
	if s := scores[0]; s.Score != 30 || s.Ticks != 3 || s.Seed != 99 {
		t.Errorf("saved run = %+v, expected score 30, 3 ticks, seed 99", s)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &fakeGame{endAfter: 2}
	m := NewModel(game, nil, nil, testRuntime())
	m.Init()

	// Restart is ignored while the run is live
	m, _ = press(t, m, runeKey("r"))
	m = tick(t, m)
	if game.resets != 1 {
		t.Fatalf("restart during a live run reset the game")
	}

	m = tick(t, m)
	if !m.State().GameOver {
		t.Fatal("fake game should be over")
	}

	m, _ = press(t, m, runeKey("r"))
	m = tick(t, m)
	if game.resets != 2 || m.State().GameOver {
		t.Errorf("restart should reset the game: resets=%d state=%+v", game.resets, m.State())
	}
}

func TestModelHoldsSteering(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, nil, testRuntime())
	m.Init()

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < holdTicks(60)+3; i++ {
		m = tick(t, m)
	}

	held := 0
	for _, in := range game.inputs {
		if in.Has(core.ActionLeft) {
			held++
		}
	}
	if held != holdTicks(60) {
		t.Errorf("left held for %d ticks, expected %d", held, holdTicks(60))
	}

	// One-shot actions last a single tick
	m, _ = press(t, m, runeKey("w"))
	m = tick(t, m)
	m = tick(t, m)
	n := len(game.inputs)
	if !game.inputs[n-2].Has(core.ActionJump) || game.inputs[n-1].Has(core.ActionJump) {
		t.Error("jump should be delivered for exactly one tick")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, nil, testRuntime())
	m.Init()

	next, cmd := m.Update(TickMsg{Loop: m.tickLoop + 1000})
	if cmd != nil || len(game.inputs) != 0 {
		t.Error("tick from another loop should be ignored")
	}
	m = next.(Model)

	m = tick(t, m)
	if len(game.inputs) != 1 {
		t.Errorf("own tick should step the game, got %d steps", len(game.inputs))
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, nil, testRuntime())
	m.Init()

	quit, cmd := press(t, m, runeKey("q"))
	if !quit.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("quitting model should render nothing")
	}

	// Back only applies when paused or over
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back should be ignored during a live run")
	}

	m, _ = press(t, m, runeKey("p"))
	m = tick(t, m)
	if !m.State().Paused {
		t.Fatal("game should be paused")
	}
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || cmd == nil {
		t.Error("back while paused should leave a standalone game")
	}
}

func TestModelViewLeavesRoomForHelp(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, nil, testRuntime())
	m.Init()

	view := m.View()
	if !strings.Contains(view, "FAKE") {
		t.Error("view should contain the game frame")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the help footer")
	}
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("view has %d lines, expected 24", lines)
	}

	// Resizing keeps the run and refits the screen
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	s, err := NewSessionModel(fakeGameID, store, nil, testRuntime())
	if err != nil {
		t.Fatalf("NewSessionModel() failed: %v", err)
	}
	if !strings.Contains(s.View(), "F A K E") {
		t.Errorf("menu should show the game title, got:\n%s", s.View())
	}

	// Pick Hard and start
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.screen != screenGame || cmd == nil {
		t.Fatalf("enter should start a game, screen=%v", s.screen)
	}
	game := s.gameModel.game.(*fakeGame)
	if game.preset != config.DifficultyHard {
		t.Errorf("preset = %q, expected hard", game.preset)
	}

	// Play to the end and return to the menu
	for i := 0; i < 5; i++ {
		next, _ = s.Update(TickMsg{Loop: s.gameModel.tickLoop})
		s = next.(SessionModel)
	}
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.screen != screenMenu {
		t.Fatalf("esc after game over should return to the menu, screen=%v", s.screen)
	}
	if !strings.Contains(s.View(), "Best: 30") {
		t.Errorf("menu should show the new best score, got:\n%s", s.View())
	}

	// Scoreboard and back
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.screen != screenScores || !strings.Contains(s.View(), "HIGH SCORES") {
		t.Fatal("tab should open the scoreboard")
	}
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.screen != screenMenu {
		t.Error("esc should leave the scoreboard")
	}

	next, cmd = s.Update(runeKey("q"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should quit the session")
	}
}

func TestNewSessionUnknownGame(t *testing.T) {
	if _, err := NewSessionModel("no-such-game", nil, nil, testRuntime()); err == nil {
		t.Error("unknown game should fail")
	}
}

func TestFormatRunTime(t *testing.T) {
	if got := formatRunTime(90, 60); got != "1.5s" {
		t.Errorf("formatRunTime(90, 60) = %q, expected 1.5s", got)
	}
	if got := formatRunTime(0, 0); got != "0s" {
		t.Errorf("formatRunTime(0, 0) = %q, expected 0s", got)
	}
}
