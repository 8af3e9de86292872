package rabduction

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/rabduction/internal/core"
)

func TestWorldNoBounceWhileRising(t *testing.T) {
	w := NewWorld(testConfig(), NewRandom(1), Sinks{})
	placePlayer(w, core.V(0, -345), 2)
	w.platforms = append(w.platforms, brickAt(0, -355))

	w.Step(noInput(), testDT)

	p := w.Player()
	if p.Velocity != 1.5 {
		t.Errorf("Velocity = %v, expected 1.5", p.Velocity)
	}
	if p.Pos.Y != -343.5 {
		t.Errorf("Pos.Y = %v, expected -343.5", p.Pos.Y)
	}
}

func TestWorldBounceOverridesGravity(t *testing.T) {
	audio := &recordingAudio{}
	w := NewWorld(testConfig(), &seqRandom{ints: []int{2}}, Sinks{Audio: audio})
	placePlayer(w, core.V(0, -340), -5)
	w.platforms = append(w.platforms, brickAt(0, -350))

	w.Step(noInput(), testDT)

	if v := w.Player().Velocity; v != 12 {
		t.Errorf("Velocity = %v, expected bounce velocity 12", v)
	}
	if len(audio.clips) != 1 || audio.clips[0] != "bounce-high" {
		t.Errorf("audio clips = %v, expected [bounce-high]", audio.clips)
	}

	// Next tick gravity applies again and the rising player cannot re-bounce
	w.Step(noInput(), testDT)
	if v := w.Player().Velocity; v != 11.5 {
		t.Errorf("Velocity = %v, expected 11.5", v)
	}
	if len(audio.clips) != 1 {
		t.Errorf("expected no second bounce, clips = %v", audio.clips)
	}
}

func TestWorldDeathFreezesScore(t *testing.T) {
	d := &recordingDisplay{}
	w := NewWorld(testConfig(), NewRandom(1), Sinks{Display: d})
	placePlayer(w, core.V(0, 0), 0)

	for i := 0; i < 4; i++ {
		w.Step(noInput(), 100*time.Millisecond)
	}
	if w.Score() != 4 {
		t.Fatalf("Score() = %d, expected 4", w.Score())
	}

	placePlayer(w, core.V(0, -395), -10)
	w.platforms = append(w.platforms[:0], brickAt(100, 0))
	w.Step(noInput(), 100*time.Millisecond)

	if !w.Player().Dead {
		t.Fatalf("player at y=%v should be dead", w.Player().Pos.Y)
	}
	frozen := w.Score()
	if frozen != 4 {
		t.Errorf("score at death = %d, expected 4", frozen)
	}

	for i := 0; i < 30; i++ {
		w.Step(inputWith(core.ActionLeft), 100*time.Millisecond)
		if !w.Player().Dead {
			t.Fatal("dead flag must not reset")
		}
	}

	if w.Score() != frozen {
		t.Errorf("score changed after death: %d -> %d", frozen, w.Score())
	}
	if got := d.last(); got != "Final Score: 4" {
		t.Errorf("display = %q, expected %q", got, "Final Score: 4")
	}
	// Scroll and spawn stop once dead
	if len(w.Platforms()) != 1 || w.Platforms()[0].Pos.Y != 0 {
		t.Errorf("platforms changed after death: %+v", w.Platforms())
	}
}

func TestWorldNeverSpawned(t *testing.T) {
	d := &recordingDisplay{}
	w := NewWorld(testConfig(), NewRandom(3), Sinks{Display: d})

	maxLive := 0
	for i := 0; i < 10000; i++ {
		w.Step(inputWith(core.ActionPause), testDT)
		maxLive = max(maxLive, len(w.Platforms()))
	}

	p := w.Player()
	if p.Spawned || p.Dead {
		t.Errorf("player should stay unspawned and alive: %+v", p)
	}
	if w.Score() != 0 || len(d.texts) != 0 {
		t.Errorf("score should not advance: score=%d texts=%v", w.Score(), d.texts)
	}

	// Platforms keep scrolling but the live set stays bounded by cleanup
	if maxLive == 0 {
		t.Error("platforms should spawn before the player arrives")
	}
	if maxLive > 9 {
		t.Errorf("live platforms peaked at %d, cleanup is not bounding the set", maxLive)
	}
}

func TestWorldSpawnsOnFirstInput(t *testing.T) {
	w := NewWorld(testConfig(), NewRandom(1), Sinks{})

	w.Step(noInput(), testDT)
	if w.Player().Spawned {
		t.Fatal("player should not spawn without input")
	}

	w.Step(inputWith(core.ActionJump), testDT)
	p := w.Player()
	if !p.Spawned {
		t.Fatal("player should spawn on first input")
	}
	if p.Velocity != 24.5 || p.Pos != core.V(0, -325.5) {
		t.Errorf("after spawn tick: pos=%v v=%v, expected (0,-325.5) v=24.5", p.Pos, p.Velocity)
	}

	// Axis input alone also spawns
	w2 := NewWorld(testConfig(), NewRandom(1), Sinks{})
	w2.Step(core.InputFrame{Axis: -0.5}, testDT)
	if p2 := w2.Player(); !p2.Spawned || p2.Pos.X != -1.5 || p2.Facing != FacingLeft {
		t.Errorf("axis spawn: %+v", p2)
	}
}

func TestWorldPresentsEveryTick(t *testing.T) {
	pres := &countingPresenter{}
	w := NewWorld(testConfig(), NewRandom(5), Sinks{Presenter: pres})

	for i := 0; i < 200; i++ {
		w.Step(inputWith(core.ActionRight), testDT)
	}

	if len(pres.frames) != 200 {
		t.Fatalf("presenter got %d frames, expected 200", len(pres.frames))
	}
	last := pres.frames[len(pres.frames)-1]
	if last.Tick != 200 || !last.Player.Spawned {
		t.Errorf("last frame = %+v", last)
	}
	if len(last.Platforms) != len(w.Platforms()) {
		t.Errorf("frame has %d platforms, world has %d", len(last.Platforms), len(w.Platforms()))
	}
}

func TestWorldDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 1500)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%40 < 10:
			inputs[i].Set(core.ActionLeft)
		case i%40 < 25:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() (Frame, uint64) {
		w := NewWorld(testConfig(), NewRandom(12345), Sinks{})
		for _, in := range inputs {
			w.Step(in, testDT)
		}
		return w.Frame(), w.Score()
	}

	f1, s1 := run()
	f2, s2 := run()

	if s1 != s2 {
		t.Errorf("scores differ: %d vs %d", s1, s2)
	}
	if !reflect.DeepEqual(f1, f2) {
		t.Error("frames differ for identical seed and inputs")
	}
}

func TestWorldReset(t *testing.T) {
	w := NewWorld(testConfig(), NewRandom(1), Sinks{})
	for i := 0; i < 300; i++ {
		w.Step(inputWith(core.ActionLeft), testDT)
	}

	w.Reset(NewRandom(2))

	if w.Player().Spawned || w.Score() != 0 || w.Ticks() != 0 || len(w.Platforms()) != 0 {
		t.Errorf("Reset left state behind: player=%+v score=%d ticks=%d platforms=%d",
			w.Player(), w.Score(), w.Ticks(), len(w.Platforms()))
	}
	if w.Player().Size != core.V(20, 20) {
		t.Errorf("player size = %v, expected 20x20", w.Player().Size)
	}
}
