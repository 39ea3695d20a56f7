package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain reads s to the end and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer did not terminate")
	return nil
}

func TestCueStreamsAreFiniteAndBounded(t *testing.T) {
	tests := []struct {
		name string
		cue  Cue
	}{
		{"heartbeat", CueHeartbeat},
		{"impact", CueImpact},
		{"bloom", CueBloom},
		{"chime", CueChime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := drain(t, Stream(tt.cue))
			if len(samples) == 0 {
				t.Fatal("no samples")
			}
			var peak float64
			for i, s := range samples {
				for ch := 0; ch < 2; ch++ {
					v := s[ch]
					if math.IsNaN(v) || math.IsInf(v, 0) {
						t.Fatalf("sample %d ch %d = %v", i, ch, v)
					}
					peak = math.Max(peak, math.Abs(v))
				}
			}
			if peak > 1 {
				t.Errorf("peak = %f, want <= 1", peak)
			}
			if peak < 0.01 {
				t.Errorf("peak = %f, cue is inaudible", peak)
			}
		})
	}
}

func TestHeartbeatLength(t *testing.T) {
	samples := drain(t, Stream(CueHeartbeat))
	want := sampleRate.N(120*time.Millisecond) + sampleRate.N(60*time.Millisecond) + sampleRate.N(100*time.Millisecond)
	if len(samples) != want {
		t.Errorf("heartbeat has %d samples, want %d", len(samples), want)
	}
}

func TestCuesGracefulDegradation(t *testing.T) {
	c := NewCues(0.5)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("cue operations panicked without initialization: %v", r)
		}
	}()
	c.Play(CueHeartbeat)
	c.Play(CueImpact)
	c.Close()
}

func TestCuesInitialization(t *testing.T) {
	c := NewCues(1)
	if err := c.Initialize(); err != nil {
		t.Logf("speaker unavailable (expected without an audio device): %v", err)
		return
	}
	if err := c.Initialize(); err != nil {
		t.Errorf("second Initialize should be a no-op, got %v", err)
	}
	c.Play(CueChime)
	c.Close()
}

func TestVolumeExponent(t *testing.T) {
	tests := []struct {
		v    float64
		want float64
	}{
		{1, 0},
		{0.5, -1},
		{2, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := volumeExponent(tt.v); got != tt.want {
			t.Errorf("volumeExponent(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
