// Package rabduction implements a vertical endless runner.
// The player falls through a field of scrolling platforms, bounces when it
// lands on one and loses once it drops below the field.
package rabduction

import (
	"time"

	"github.com/vovakirdan/rabduction/internal/config"
	"github.com/vovakirdan/rabduction/internal/core"
	"github.com/vovakirdan/rabduction/internal/registry"
)

// GameID is the registry and score storage identifier.
const GameID = "rabduction"

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	audioSink        AudioSink
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the default difficulty for new games.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetAudioSink sets the sink used for bounce sounds by new games.
func SetAudioSink(sink AudioSink) {
	audioSink = sink
}

// Game adapts a World to the registry.Game interface. It is also the world's
// presenter and score display: it keeps the latest frame and score line for
// Render.
type Game struct {
	world     *World
	cfg       config.RabductionConfig
	catalog   Catalog
	runtime   core.RuntimeConfig
	frame     Frame
	scoreText string
	paused    bool
	preset    config.DifficultyPreset
	loadErr   error
}

// New creates a new Rabduction game instance.
func New() *Game {
	return &Game{cfg: config.DefaultRabductionConfig(), preset: difficultyPreset}
}

// SetDifficulty overrides the preset for this instance. It takes effect on
// the next Reset.
func (g *Game) SetDifficulty(preset config.DifficultyPreset) {
	g.preset = preset
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.cfg.Window.Title
}

// Reset loads configuration and starts a new run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = rc

	cfg, err := config.Load(configPath)
	if err != nil {
		// Keep playing on defaults; the platform layer reports LoadError.
		cfg = config.DefaultRabductionConfig()
	}
	g.loadErr = err
	config.ApplyPreset(&cfg, g.preset)

	g.start(cfg, NewRandom(rc.Seed))
}

// start builds a fresh world for cfg.
func (g *Game) start(cfg config.RabductionConfig, rng Random) {
	g.cfg = cfg
	g.world = NewWorld(cfg, rng, Sinks{
		Presenter: g,
		Audio:     audioSink,
		Display:   g,
	})
	g.catalog = g.world.Catalog()
	g.frame = g.world.Frame()
	g.scoreText = FormatScore(0, false)
	g.paused = false
}

// LoadError returns the error from the last config load, if any.
func (g *Game) LoadError() error {
	return g.loadErr
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.world.Player().Dead {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.world.Step(in, g.tickDuration())
	return core.StepResult{State: g.State()}
}

// tickDuration is the simulated time covered by one Step.
func (g *Game) tickDuration() time.Duration {
	return time.Second / time.Duration(g.runtime.TickRate)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.world.Score()),
		Ticks:    g.world.Ticks(),
		GameOver: g.world.Player().Dead,
		Paused:   g.paused,
	}
}

// Present implements Presenter.
func (g *Game) Present(f Frame) {
	g.frame = f
}

// ShowScore implements ScoreDisplay.
func (g *Game) ShowScore(text string) {
	g.scoreText = text
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
