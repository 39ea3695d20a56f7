package sapling

// heartShadow is the tint of the drop shadow under hearts drawn with
// shadow enabled.
var heartShadow = Color{0, 0, 0, 0.15}

// HeartPath returns the outline of a heart of the given size centered on the
// origin, point down. The lobes peak at about -0.75*size and the point sits
// at +0.35*size.
func HeartPath(size float64) *Path {
	s := size
	var p Path
	p.MoveTo(0, s*0.35)
	p.CubicTo(-s*0.05, s*0.1, -s*0.7, -s*0.2, -s*0.5, -s*0.5)
	p.CubicTo(-s*0.35, -s*0.75, -s*0.05, -s*0.85, 0, -s*0.5)
	p.CubicTo(s*0.05, -s*0.85, s*0.35, -s*0.75, s*0.5, -s*0.5)
	p.CubicTo(s*0.7, -s*0.2, s*0.05, s*0.1, 0, s*0.35)
	p.Close()
	return &p
}

// HeartStyle controls DrawHeart.
type HeartStyle struct {
	Rotation float64
	Shadow   bool
}

// DrawHeart draws a shaded heart centered on (cx, cy): a radial gradient
// from a lightened highlight to a darkened rim, plus a specular spot on the
// left lobe. With Shadow set, a soft offset silhouette is laid down first.
func DrawHeart(c Canvas, cx, cy, size float64, col Color, style HeartStyle) {
	if size <= 0 {
		return
	}
	s := size
	c.Save()
	c.Translate(cx, cy)
	c.Rotate(style.Rotation)

	outline := HeartPath(s)
	if style.Shadow {
		drawHeartShadow(c, s)
	}

	grad := NewRadialGradient(
		-s*0.15, -s*0.3, s*0.05,
		0, -s*0.1, s*0.8,
		ColorStop{0, col.Lighten(40)},
		ColorStop{0.5, col},
		ColorStop{1, col.Darken(30)},
	)
	c.Fill(outline, Shade(grad))

	var spot Path
	spot.Ellipse(-s*0.2, -s*0.45, s*0.12, s*0.18, -0.3)
	c.Fill(&spot, Solid(Color{1, 1, 1, 0.35}))

	c.Restore()
}

// drawHeartShadow approximates a blurred drop shadow with a few
// progressively larger, fainter silhouettes shifted down by a tenth of the
// size.
func drawHeartShadow(c Canvas, s float64) {
	const layers = 3
	blur := s * 0.4
	for i := layers; i >= 1; i-- {
		grow := 1 + blur/s*float64(i)/layers*0.5
		c.Save()
		c.Translate(0, s*0.1)
		c.Scale(grow, grow)
		c.SetAlpha(1 / float64(layers+1))
		c.Fill(HeartPath(s), Solid(heartShadow))
		c.Restore()
	}
}
