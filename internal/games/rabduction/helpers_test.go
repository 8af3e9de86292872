package rabduction

import (
	"time"

	"github.com/vovakirdan/rabduction/internal/config"
	"github.com/vovakirdan/rabduction/internal/core"
)

const testDT = time.Second / 60

// seqRandom replays fixed sequences, cycling when exhausted.
type seqRandom struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *seqRandom) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *seqRandom) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return v % n
}

type recordingAudio struct {
	clips []string
}

func (a *recordingAudio) Play(clip string) {
	a.clips = append(a.clips, clip)
}

type recordingDisplay struct {
	texts []string
}

func (d *recordingDisplay) ShowScore(text string) {
	d.texts = append(d.texts, text)
}

func (d *recordingDisplay) last() string {
	if len(d.texts) == 0 {
		return ""
	}
	return d.texts[len(d.texts)-1]
}

type countingPresenter struct {
	frames []Frame
}

func (p *countingPresenter) Present(f Frame) {
	p.frames = append(p.frames, f)
}

func testConfig() config.RabductionConfig {
	return config.DefaultRabductionConfig()
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

func inputWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// placePlayer puts a spawned, living player at pos with velocity v.
func placePlayer(w *World, pos core.Vec2, v float64) {
	w.player.Spawned = true
	w.player.Dead = false
	w.player.Pos = pos
	w.player.Velocity = v
}

func brickAt(x, y float64) Platform {
	return Platform{Pos: core.V(x, y), Size: core.V(60, 20), Archetype: "brick"}
}
