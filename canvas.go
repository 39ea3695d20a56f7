package sapling

import "math"

// Canvas is an immediate-mode 2D drawing surface in the style of an HTML
// canvas context. Coordinates are in logical pixels with the origin at the
// top-left and Y increasing downward. Paths and paints are given in local
// coordinates and mapped through the current transform.
//
// Implementations: EbitenCanvas (GPU, per frame) and ImageCanvas (CPU, for
// headless rendering and tests).
type Canvas interface {
	// Size returns the logical drawing area.
	Size() (width, height float64)
	// Clear fills the whole surface with c, ignoring transform and alpha.
	Clear(c Color)

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(theta float64)
	Scale(sx, sy float64)
	// SetAlpha multiplies the current global alpha by a. Restore undoes it.
	SetAlpha(a float64)

	Fill(p *Path, paint Paint)
	Stroke(p *Path, paint Paint, style StrokeStyle)

	// FillText draws s with its top-left corner at (x, y). Newlines are not
	// interpreted.
	FillText(s string, x, y, size float64, c Color)
	// MeasureText returns the advance width of s at the given size.
	MeasureText(s string, size float64) float64
}

type savedState struct {
	transform [6]float64
	alpha     float64
}

// canvasState is the transform and alpha stack shared by both backends.
type canvasState struct {
	transform [6]float64
	alpha     float64
	stack     []savedState
}

func newCanvasState() canvasState {
	return canvasState{transform: identityTransform, alpha: 1}
}

func (s *canvasState) Save() {
	s.stack = append(s.stack, savedState{s.transform, s.alpha})
}

// Restore pops the last Save. Unbalanced calls are ignored.
func (s *canvasState) Restore() {
	if len(s.stack) == 0 {
		return
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.transform = top.transform
	s.alpha = top.alpha
}

func (s *canvasState) Translate(x, y float64) {
	s.transform = multiplyAffine(s.transform, translateAffine(x, y))
}

func (s *canvasState) Rotate(theta float64) {
	s.transform = multiplyAffine(s.transform, rotateAffine(theta))
}

func (s *canvasState) Scale(sx, sy float64) {
	s.transform = multiplyAffine(s.transform, scaleAffine(sx, sy))
}

func (s *canvasState) SetAlpha(a float64) {
	s.alpha *= clamp01(a)
}

// reset returns the state to identity at the start of a frame.
func (s *canvasState) reset() {
	s.transform = identityTransform
	s.alpha = 1
	s.stack = s.stack[:0]
}

// tolerance returns the flattening tolerance in local units that keeps
// curves within flattenTolerance device pixels under the current transform.
func (s *canvasState) tolerance() float64 {
	scale := affineScale(s.transform)
	if !(scale > 1e-6) || math.IsInf(scale, 0) {
		return flattenTolerance
	}
	return flattenTolerance / scale
}

// shaded returns the paint color at a local point with global alpha applied.
func (s *canvasState) shaded(paint Paint, x, y float64) Color {
	c := paint.At(x, y)
	c.A *= s.alpha
	return c
}
