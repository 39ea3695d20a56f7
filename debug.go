package sapling

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// logf writes a prefixed diagnostic line to stderr.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[sapling] "+format+"\n", args...)
}

// debugf is logf for debug-mode chatter.
func debugf(format string, args ...any) {
	logf("debug: "+format, args...)
}

// debugStats holds per-frame timing and tree metrics. Only populated when
// debug mode is on.
type debugStats struct {
	phase    Phase
	drawTime time.Duration
	tree     TreeStats
}

// debugLog prints the frame's stats to stderr.
func (g *Game) debugLog(stats debugStats) {
	if !g.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[sapling] phase: %s | draw: %v | branches: %d | segments: %d | tips: %d\n",
		stats.phase, stats.drawTime, stats.tree.Branches, stats.tree.Segments, stats.tree.Tips)
}

// fpsOverlay shows the current FPS and TPS in the top-left corner,
// refreshed about twice a second.
type fpsOverlay struct {
	img   *ebiten.Image
	since float64
	dirty bool
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32), dirty: true}
}

func (o *fpsOverlay) update(dt float64) {
	o.since += dt
	if o.since >= 0.5 {
		o.since = 0
		o.dirty = true
	}
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.dirty {
		o.dirty = false
		o.img.Clear()
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(o.img, nil)
}
