package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/rabduction/internal/config"
)

func testAudioConfig() config.AudioConfig {
	return config.DefaultRabductionConfig().Audio
}

// drain streams s to completion and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
	t.Fatalf("streamer did not finish within %d samples", limit)
	return total, peak
}

// TestSoundManagerGracefulDegradation verifies Play is safe without a speaker
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(testAudioConfig())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play("bounce-low")
	sm.Play("bounce-high")
	sm.Play("no-such-clip")
	sm.Cleanup()

	if sm.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers, expected none before Initialize", sm.mixer.Len())
	}
}

// TestSoundManagerDisabledSkipsSpeaker verifies a disabled config never opens the device
func TestSoundManagerDisabledSkipsSpeaker(t *testing.T) {
	cfg := testAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize() with audio disabled failed: %v", err)
	}
	if sm.Enabled() {
		t.Error("disabled sound manager should not report enabled")
	}
}

func TestClipsSynthesize(t *testing.T) {
	sm := NewSoundManager(testAudioConfig())
	want := sm.SampleRate().N(bounceDuration)

	for _, name := range []string{"bounce-low", "bounce-mid", "bounce-high"} {
		t.Run(name, func(t *testing.T) {
			s, ok := sm.Clip(name)
			if !ok {
				t.Fatalf("Clip(%q) not found", name)
			}
			n, peak := drain(t, s, want*2)
			if n != want {
				t.Errorf("clip length = %d samples, expected %d", n, want)
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("peak level = %v, expected within (0, 1]", peak)
			}
		})
	}

	if _, ok := sm.Clip("bounce-ultra"); ok {
		t.Error("unknown clip should not synthesize")
	}
}

func TestClipPitchRises(t *testing.T) {
	if !(bounceFreq(0) < bounceFreq(1) && bounceFreq(1) < bounceFreq(2)) {
		t.Errorf("clip pitches not ascending: %v %v %v", bounceFreq(0), bounceFreq(1), bounceFreq(2))
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := testAudioConfig()
	cfg.Volume = 0
	sm := NewSoundManager(cfg)

	s, _ := sm.Clip("bounce-mid")
	if _, peak := drain(t, s, sm.SampleRate().N(time.Second)); peak != 0 {
		t.Errorf("peak level = %v, expected silence", peak)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	buf := make([][2]float64, 200)
	n, ok := env.Stream(buf)
	if !ok || n != 100 {
		t.Fatalf("Stream() = %d, %v, expected 100 samples", n, ok)
	}

	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %v", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain level = %v, expected 1", buf[50][0])
	}
	if buf[99][0] <= 0 || buf[99][0] >= buf[80][0] {
		t.Errorf("release should fade: buf[80]=%v buf[99]=%v", buf[80][0], buf[99][0])
	}

	if n, ok := env.Stream(buf); ok || n != 0 {
		t.Errorf("drained envelope Stream() = %d, %v", n, ok)
	}
}
