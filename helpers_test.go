package sapling

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// drawCall is one Fill or Stroke seen by recordingCanvas, in local
// coordinates.
type drawCall struct {
	stroke bool
	polys  [][]Vec2
	paint  Paint
	style  StrokeStyle
	alpha  float64
}

// recordingCanvas is a Canvas that keeps every call instead of drawing.
type recordingCanvas struct {
	canvasState
	w, h  float64
	calls []drawCall
	texts []string
	clear []Color
}

func newRecordingCanvas(w, h float64) *recordingCanvas {
	return &recordingCanvas{canvasState: newCanvasState(), w: w, h: h}
}

func (c *recordingCanvas) Size() (float64, float64) { return c.w, c.h }

func (c *recordingCanvas) Clear(col Color) {
	c.clear = append(c.clear, col)
	c.reset()
}

func (c *recordingCanvas) record(p *Path, paint Paint, style StrokeStyle, stroke bool) {
	var polys [][]Vec2
	for _, sp := range p.contours(flattenTolerance) {
		polys = append(polys, sp.points)
	}
	c.calls = append(c.calls, drawCall{stroke: stroke, polys: polys, paint: paint, style: style, alpha: c.alpha})
}

func (c *recordingCanvas) Fill(p *Path, paint Paint) {
	c.record(p, paint, StrokeStyle{}, false)
}

func (c *recordingCanvas) Stroke(p *Path, paint Paint, style StrokeStyle) {
	c.record(p, paint, style, true)
}

func (c *recordingCanvas) FillText(s string, x, y, size float64, col Color) {
	c.texts = append(c.texts, s)
}

func (c *recordingCanvas) MeasureText(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.5
}

func (c *recordingCanvas) fills() []drawCall {
	var out []drawCall
	for _, call := range c.calls {
		if !call.stroke {
			out = append(out, call)
		}
	}
	return out
}
