package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// thump is a pitched-down sine with a fast exponential decay, the building
// block of the heartbeat.
type thump struct {
	sr    beep.SampleRate
	freq  float64
	gain  float64
	pos   int
	phase float64
}

func newThump(sr beep.SampleRate, freq, gain float64) *thump {
	return &thump{sr: sr, freq: freq, gain: gain}
}

func (g *thump) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t*28) * math.Min(t/0.004, 1)
		// Starts half again higher and settles within ~100 ms.
		f := g.freq * (1 + 0.5*math.Exp(-t*20))
		g.phase += f / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		v := g.gain * env * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *thump) Err() error { return nil }

// thud is a low rumble mixed with decaying filtered noise: soil taking the
// weight of the seed.
type thud struct {
	sr    beep.SampleRate
	gain  float64
	pos   int
	seed  uint32
	noise float64 // one-pole low-pass state
}

func newThud(sr beep.SampleRate, gain float64) *thud {
	return &thud{sr: sr, gain: gain, seed: 0x2545f491}
}

func (g *thud) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * 10)

		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		white := float64(g.seed)/float64(math.MaxUint32)*2 - 1
		g.noise += (white - g.noise) * 0.08

		rumble := math.Sin(2 * math.Pi * 70 * t)
		v := g.gain * env * (0.45*rumble + 0.6*g.noise)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *thud) Err() error { return nil }

// shimmer is a rising arpeggio of soft sine partials.
type shimmer struct {
	sr  beep.SampleRate
	pos int
}

var shimmerNotes = [...]float64{523.25, 659.25, 783.99, 1046.5}

func newShimmer(sr beep.SampleRate) *shimmer {
	return &shimmer{sr: sr}
}

func (g *shimmer) Stream(samples [][2]float64) (n int, ok bool) {
	step := 0.12 // seconds between note onsets
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		var v float64
		for k, f := range shimmerNotes {
			on := t - float64(k)*step
			if on < 0 {
				break
			}
			env := math.Exp(-on*5) * math.Min(on/0.01, 1)
			v += 0.12 * env * math.Sin(2*math.Pi*f*on)
		}
		// Slight stereo spread.
		samples[i][0] = v * 0.9
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *shimmer) Err() error { return nil }

// chime is a bell-like tone: a fundamental with inharmonic overtones that
// decay faster than it does.
type chime struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newChime(sr beep.SampleRate, freq float64) *chime {
	return &chime{sr: sr, freq: freq}
}

func (g *chime) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		attack := math.Min(t/0.005, 1)
		v := 0.25*math.Exp(-t*2.5)*math.Sin(2*math.Pi*g.freq*t) +
			0.10*math.Exp(-t*4)*math.Sin(2*math.Pi*g.freq*2.76*t) +
			0.05*math.Exp(-t*6)*math.Sin(2*math.Pi*g.freq*5.4*t)
		v *= attack
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *chime) Err() error { return nil }
