package rabduction

import "github.com/vovakirdan/rabduction/internal/core"

// Presenter receives a snapshot of the world once per tick for drawing.
type Presenter interface {
	Present(f Frame)
}

// AudioSink plays a clip by id. Fire-and-forget.
type AudioSink interface {
	Play(clip string)
}

// ScoreDisplay receives the formatted score once per score tick.
type ScoreDisplay interface {
	ShowScore(text string)
}

// Sinks bundles the host collaborators. Any field may be nil.
type Sinks struct {
	Presenter Presenter
	Audio     AudioSink
	Display   ScoreDisplay
}

// Frame is the drawable state of one tick.
type Frame struct {
	Tick      int
	Player    PlayerView
	Platforms []PlatformView
}

// PlayerView is the drawable state of the player.
type PlayerView struct {
	Pos     core.Vec2
	Size    core.Vec2
	Facing  Facing
	Spawned bool
	Dead    bool
}

// PlatformView is the drawable state of a platform.
type PlatformView struct {
	Pos       core.Vec2
	Size      core.Vec2
	Archetype string
}
