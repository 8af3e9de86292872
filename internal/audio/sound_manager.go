// Package audio plays the game's sound effects through gopxl/beep.
// Clips are synthesized on demand, so no sound assets ship with the binary.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/rabduction/internal/config"
)

// SoundManager plays named clips into a shared mixer.
// It is safe for concurrent use. Until Initialize succeeds every Play is a
// no-op, which keeps the game playable without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	freqs       map[string]float64
	initialized bool
}

// NewSoundManager creates a sound manager for the configured clip names.
// Clips are pitched a fifth apart in the order they are listed.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	freqs := make(map[string]float64, len(cfg.BounceClips))
	for i, name := range cfg.BounceClips {
		freqs[name] = bounceFreq(i)
	}
	return &SoundManager{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
		freqs: freqs,
	}
}

// Initialize opens the speaker when audio is enabled.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether the speaker is open.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// Play queues the named clip. Unknown clips are ignored.
func (sm *SoundManager) Play(clip string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s, ok := sm.clip(clip)
	if !ok {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Clip synthesizes the named clip without playing it.
func (sm *SoundManager) Clip(name string) (beep.Streamer, bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.clip(name)
}

func (sm *SoundManager) clip(name string) (beep.Streamer, bool) {
	freq, ok := sm.freqs[name]
	if !ok {
		return nil, false
	}
	return CreateBounceSound(freq, sm.cfg.Volume, sm.rate), true
}

// SampleRate returns the output sample rate.
func (sm *SoundManager) SampleRate() beep.SampleRate {
	return sm.rate
}
