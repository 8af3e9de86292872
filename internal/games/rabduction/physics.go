package rabduction

import (
	"github.com/vovakirdan/rabduction/internal/core"
)

// Facing is the direction the player sprite looks. It is purely visual.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Player is the single player entity of a run.
type Player struct {
	Pos      core.Vec2
	Size     core.Vec2
	Velocity float64 // Vertical, up positive
	Facing   Facing
	Spawned  bool // Set by the first movement or button input
	Dead     bool // Terminal for the run
}

// Box returns the player's hitbox. Facing never changes it.
func (p Player) Box() core.Box {
	return core.Box{Center: p.Pos, Size: p.Size}
}

// Alive reports whether gameplay systems apply to the player.
func (p Player) Alive() bool {
	return p.Spawned && !p.Dead
}

// Physics holds the per-tick player constants.
type Physics struct {
	Gravity   float64
	MoveSpeed float64
	MaxSpeed  float64
	DeathLine float64
}

// HorizontalDelta converts an input frame into a horizontal displacement for
// one tick. Digital keys move MoveSpeed, the analog axis scales MaxSpeed, and
// the sum is clamped to [-MaxSpeed, MaxSpeed].
func HorizontalDelta(in core.InputFrame, ph Physics) float64 {
	dx := in.Horizontal()*ph.MoveSpeed + core.ClampF(in.Axis, -1, 1)*ph.MaxSpeed
	return core.ClampF(dx, -ph.MaxSpeed, ph.MaxSpeed)
}

// IntegratePlayer advances the player by one tick.
// Unspawned or dead players are left untouched.
func IntegratePlayer(p *Player, dx float64, ph Physics) {
	if !p.Alive() {
		return
	}

	switch {
	case dx < 0:
		p.Facing = FacingLeft
	case dx > 0:
		p.Facing = FacingRight
	}
	p.Pos.X += dx

	// New velocity applies on the same tick
	p.Velocity -= ph.Gravity
	p.Pos.Y += p.Velocity

	if p.Pos.Y < ph.DeathLine {
		p.Dead = true
	}
}
