package sapling

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// scrollAnim holds an active scroll-to animation. The endpoints are kept so
// the animation can be rebuilt when the viewport is resized.
type scrollAnim struct {
	fromX, fromY float64
	toX, toY     float64
	duration     float32
	elapsed      float32
	ease         ease.TweenFunc

	tweenX *gween.Tween
	tweenY *gween.Tween
}

func newScrollAnim(fromX, fromY, toX, toY float64, duration float32, fn ease.TweenFunc) *scrollAnim {
	a := &scrollAnim{
		fromX: fromX, fromY: fromY,
		toX: toX, toY: toY,
		duration: duration,
		ease:     fn,
	}
	a.rebuild()
	return a
}

func (a *scrollAnim) rebuild() {
	a.tweenX = gween.New(float32(a.fromX), float32(a.toX), a.duration, a.ease)
	a.tweenY = gween.New(float32(a.fromY), float32(a.toY), a.duration, a.ease)
	if a.elapsed > 0 {
		a.tweenX.Update(a.elapsed)
		a.tweenY.Update(a.elapsed)
	}
}

// Camera is the view onto the scene: the world point it centers on and a
// zoom factor. The scene is laid out in world units equal to screen pixels,
// so a camera centered on the viewport's middle at zoom 1 is the identity.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom).
	Zoom float64
	// Viewport is the screen-space rectangle the camera renders into.
	Viewport Rect

	scroll *scrollAnim
}

// NewCamera creates a camera over viewport, centered on it.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		X:        viewport.X + viewport.Width/2,
		Y:        viewport.Y + viewport.Height/2,
		Zoom:     1,
		Viewport: viewport,
	}
}

// ScrollTo animates the camera to the given world position over duration
// seconds. A non-positive duration jumps immediately.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		c.X, c.Y = x, y
		c.scroll = nil
		return
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	c.scroll = newScrollAnim(c.X, c.Y, x, y, duration, easeFn)
}

// Scrolling reports whether a ScrollTo animation is still running.
func (c *Camera) Scrolling() bool {
	return c.scroll != nil
}

// Update advances the scroll animation by dt seconds.
func (c *Camera) Update(dt float32) {
	a := c.scroll
	if a == nil {
		return
	}
	a.elapsed += dt
	vx, doneX := a.tweenX.Update(dt)
	vy, doneY := a.tweenY.Update(dt)
	c.X, c.Y = float64(vx), float64(vy)
	if doneX && doneY {
		c.X, c.Y = a.toX, a.toY
		c.scroll = nil
	}
}

// Resize moves the viewport to the new size and rescales the camera
// position, including any running scroll, so the view keeps the same
// relative framing.
func (c *Camera) Resize(viewport Rect) {
	old := c.Viewport
	c.Viewport = viewport
	if old.Width <= 0 || old.Height <= 0 {
		c.X = viewport.X + viewport.Width/2
		c.Y = viewport.Y + viewport.Height/2
		return
	}
	sx := viewport.Width / old.Width
	sy := viewport.Height / old.Height
	c.X = viewport.X + (c.X-old.X)*sx
	c.Y = viewport.Y + (c.Y-old.Y)*sy
	if a := c.scroll; a != nil {
		a.fromX = viewport.X + (a.fromX-old.X)*sx
		a.fromY = viewport.Y + (a.fromY-old.Y)*sy
		a.toX = viewport.X + (a.toX-old.X)*sx
		a.toY = viewport.Y + (a.toY-old.Y)*sy
		a.rebuild()
	}
}

// ViewMatrix returns Translate(center) * Scale(zoom) * Translate(-X, -Y).
func (c *Camera) ViewMatrix() [6]float64 {
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	z := c.Zoom
	return [6]float64{z, 0, 0, z, cx - z*c.X, cy - z*c.Y}
}

// Apply pushes the view transform onto cv. Pair with cv.Save/Restore.
func (c *Camera) Apply(cv Canvas) {
	m := c.ViewMatrix()
	cv.Translate(m[4], m[5])
	cv.Scale(m[0], m[3])
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return transformPoint(c.ViewMatrix(), wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return transformPoint(invertAffine(c.ViewMatrix()), sx, sy)
}
