package sapling

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerRelease is one click or tap, real or injected, in screen
// coordinates.
type pointerRelease struct {
	x, y float64
}

// inputState collects the frame's pointer releases. The sequence only
// cares that a release happened; the position is kept for scripts and
// debug output.
type inputState struct {
	injectQueue []pointerRelease
	touchIDs    []ebiten.TouchID
}

// InjectClick queues a click at the given screen coordinates. The event is
// consumed on the next frame's input pass, in place of real input.
func (g *Game) InjectClick(x, y float64) {
	g.input.injectQueue = append(g.input.injectQueue, pointerRelease{x, y})
}

// poll returns the releases for this frame. Injected events are consumed
// one per frame and suppress real input for that frame.
func (in *inputState) poll() []pointerRelease {
	if len(in.injectQueue) > 0 {
		evt := in.injectQueue[0]
		copy(in.injectQueue, in.injectQueue[1:])
		in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]
		return []pointerRelease{evt}
	}

	var out []pointerRelease
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		out = append(out, pointerRelease{float64(x), float64(y)})
	}
	in.touchIDs = inpututil.AppendJustReleasedTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		out = append(out, pointerRelease{float64(x), float64(y)})
	}
	return out
}

// pending reports whether injected events are still queued.
func (in *inputState) pending() bool {
	return len(in.injectQueue) > 0
}

// processInput forwards the frame's clicks to the sequence. Only the first
// click while the heart waits does anything.
func (g *Game) processInput() {
	for _, evt := range g.input.poll() {
		if g.seq.Advance() && g.debug {
			debugf("advance at (%.0f, %.0f)", evt.x, evt.y)
		}
	}
}
