package rabduction

import (
	"time"

	"github.com/vovakirdan/rabduction/internal/config"
	"github.com/vovakirdan/rabduction/internal/core"
)

// World is the complete simulation state of one run. Systems run in a fixed
// order inside Step; nothing is global.
type World struct {
	cfg     config.RabductionConfig
	physics Physics
	catalog Catalog
	sinks   Sinks
	rng     Random

	player    Player
	platforms []Platform
	spawner   Spawner
	scorer    ScoreKeeper
	ticks     int
}

// NewWorld creates a world for cfg. The catalog and constants are fixed for
// the lifetime of the world.
func NewWorld(cfg config.RabductionConfig, rng Random, sinks Sinks) *World {
	catalog := NewCatalog(cfg.Platforms.Catalog)
	w := &World{
		cfg: cfg,
		physics: Physics{
			Gravity:   cfg.Physics.Gravity,
			MoveSpeed: cfg.Physics.MoveSpeed,
			MaxSpeed:  cfg.Physics.MaxSpeed,
			DeathLine: cfg.Physics.DeathLine,
		},
		catalog:   catalog,
		sinks:     sinks,
		platforms: make([]Platform, 0, 16),
		spawner:   NewSpawner(catalog, cfg.Platforms),
		scorer:    NewScoreKeeper(cfg.Scoring.Interval),
	}
	w.Reset(rng)
	return w
}

// Reset starts a new run with a fresh random source.
func (w *World) Reset(rng Random) {
	w.rng = rng
	w.player = Player{
		Size: core.V(w.cfg.Player.Width, w.cfg.Player.Height),
	}
	w.platforms = w.platforms[:0]
	w.spawner.Reset()
	w.scorer.Reset()
	w.ticks = 0
}

// Step advances the simulation by one tick of length dt.
//
// Order: spawn gate, horizontal move and gravity, scroll and cleanup,
// collision, platform spawn, score, presentation.
func (w *World) Step(in core.InputFrame, dt time.Duration) {
	w.ticks++

	if !w.player.Spawned && in.Active() {
		w.spawnPlayer()
	}

	IntegratePlayer(&w.player, HorizontalDelta(in, w.physics), w.physics)

	if !w.player.Dead {
		Scroll(w.platforms, w.cfg.Platforms.ScrollStep)
		w.platforms = Cleanup(w.platforms, w.cfg.Platforms.CleanupLine)
	}

	if _, hit := ResolveCollisions(&w.player, w.platforms, w.cfg.Physics.BounceVelocity); hit {
		w.playBounce()
	}

	if !w.player.Dead {
		w.platforms = w.spawner.Advance(dt, w.rng, w.platforms)
	}

	w.scorer.Advance(dt, w.player, w.sinks.Display)

	if w.sinks.Presenter != nil {
		w.sinks.Presenter.Present(w.Frame())
	}
}

// spawnPlayer places the player at the launch point.
func (w *World) spawnPlayer() {
	w.player.Spawned = true
	w.player.Pos = core.V(w.cfg.Player.SpawnX, w.cfg.Player.SpawnY)
	w.player.Velocity = w.cfg.Player.LaunchVelocity
	w.player.Facing = FacingRight
}

// playBounce picks a random bounce clip. The random draw happens even
// without an audio sink so runs replay identically with sound on or off.
func (w *World) playBounce() {
	clips := w.cfg.Audio.BounceClips
	if len(clips) == 0 {
		return
	}
	clip := clips[w.rng.Intn(len(clips))]
	if w.sinks.Audio != nil {
		w.sinks.Audio.Play(clip)
	}
}

// Frame returns a drawable snapshot of the current state.
func (w *World) Frame() Frame {
	f := Frame{
		Tick: w.ticks,
		Player: PlayerView{
			Pos:     w.player.Pos,
			Size:    w.player.Size,
			Facing:  w.player.Facing,
			Spawned: w.player.Spawned,
			Dead:    w.player.Dead,
		},
		Platforms: make([]PlatformView, len(w.platforms)),
	}
	for i, p := range w.platforms {
		f.Platforms[i] = PlatformView{Pos: p.Pos, Size: p.Size, Archetype: p.Archetype}
	}
	return f
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	return w.player
}

// Platforms returns the live platforms. Callers must not modify the slice.
func (w *World) Platforms() []Platform {
	return w.platforms
}

// Score returns the current score.
func (w *World) Score() uint64 {
	return w.scorer.Score()
}

// Ticks returns the number of ticks since the last Reset.
func (w *World) Ticks() int {
	return w.ticks
}

// Catalog returns the archetype catalog.
func (w *World) Catalog() Catalog {
	return w.catalog
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.RabductionConfig {
	return w.cfg
}
