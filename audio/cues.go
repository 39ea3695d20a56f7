// Package audio synthesizes the short sound cues that accompany the
// sequence: a heartbeat while the heart waits, a thud when the seed lands,
// a shimmer when the canopy fills in and a chime when the poem ends.
//
// Everything is generated procedurally; there are no sample files. When no
// output device is available the Cues degrade to silent no-ops.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Cue identifies one of the sounds Cues can play.
type Cue int

const (
	CueHeartbeat Cue = iota
	CueImpact
	CueBloom
	CueChime
)

// Cues plays the sequence's sound effects through the speaker.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // 0..1
	initialized bool
}

// NewCues creates a cue player at the given volume (0..1). It is silent
// until Initialize succeeds.
func NewCues(volume float64) *Cues {
	return &Cues{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
	}
}

// Initialize opens the speaker. It is safe to call more than once.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close silences everything queued. The speaker itself stays open.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// Play starts cue. It returns immediately; overlapping cues are mixed.
func (c *Cues) Play(cue Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.volume <= 0 {
		return
	}
	s := withVolume(Stream(cue), c.volume)
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Stream returns a finite streamer for cue at the package sample rate.
func Stream(cue Cue) beep.Streamer {
	switch cue {
	case CueHeartbeat:
		// lub-dub
		return beep.Seq(
			beep.Take(sampleRate.N(120*time.Millisecond), newThump(sampleRate, 55, 0.5)),
			beep.Silence(sampleRate.N(60*time.Millisecond)),
			beep.Take(sampleRate.N(100*time.Millisecond), newThump(sampleRate, 48, 0.35)),
		)
	case CueImpact:
		return beep.Take(sampleRate.N(350*time.Millisecond), newThud(sampleRate, 0.8))
	case CueBloom:
		return beep.Take(sampleRate.N(900*time.Millisecond), newShimmer(sampleRate))
	case CueChime:
		return beep.Take(sampleRate.N(1600*time.Millisecond), newChime(sampleRate, 659.25))
	}
	return beep.Silence(0)
}

// withVolume scales s by v (0..1) using a logarithmic volume curve.
func withVolume(s beep.Streamer, v float64) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   volumeExponent(v),
		Silent:   v <= 0,
	}
}

// volumeExponent maps a 0..1 volume onto effects.Volume's base-2 exponent:
// 1 is unity gain and 0.5 halves the amplitude.
func volumeExponent(v float64) float64 {
	v = clampVolume(v)
	if v <= 0 {
		return 0
	}
	return -(1 - v) * 2
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
