package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// Bounce clip shape
const (
	bounceDuration = 140 * time.Millisecond
	bounceAttack   = 4 * time.Millisecond
	bounceRelease  = 110 * time.Millisecond
	bounceBaseFreq = 330.0
	bounceStep     = 1.5 // each clip is a fifth above the previous one
	bounceSweep    = 1.3 // pitch rises by this factor over the clip
)

// oscillator generates a raw wave with a linear frequency sweep.
type oscillator struct {
	freq, endFreq float64
	phase         float64
	duration      int
	position      int
	wave          WaveType
	rate          beep.SampleRate
}

// NewOscillator creates a streamer of the given wave sweeping from freq to
// endFreq over duration.
func NewOscillator(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. math.Log2(0) is -Inf, so zero is
// mapped to a silent stream.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// bounceFreq returns the base pitch of the clip at index i.
func bounceFreq(i int) float64 {
	return bounceBaseFreq * math.Pow(bounceStep, float64(i))
}

// CreateBounceSound generates a short rising blip at freq.
func CreateBounceSound(freq, volume float64, rate beep.SampleRate) beep.Streamer {
	body := NewEnvelope(
		NewOscillator(freq, freq*bounceSweep, bounceDuration, WaveSine, rate),
		bounceDuration, bounceAttack, bounceRelease, rate,
	)
	edge := NewEnvelope(
		NewOscillator(freq*2, freq*2*bounceSweep, bounceDuration, WaveTriangle, rate),
		bounceDuration, bounceAttack, bounceRelease/2, rate,
	)

	mixed := beep.Mix(
		newVolume(body, 0.75),
		newVolume(edge, 0.25),
	)
	return beep.Take(rate.N(bounceDuration), newVolume(mixed, volume))
}
