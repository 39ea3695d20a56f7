package sapling

import "math"

const (
	// barkTextureMinWidth is the branch width above which grain lines are
	// scratched along the bark.
	barkTextureMinWidth = 4
	barkTextureLines    = 3
	barkTextureSpread   = 0.2 // fraction of width
	barkTipWidth        = 0.85
)

var (
	barkOld     = RGB(0x4a3728)
	barkMiddle  = RGB(0x5a4332)
	barkYoung   = RGB(0x6b5040)
	barkTexture = Color{0, 0, 0, 0.08}
	rootColor   = RGB(0x4a3728)
)

// barkColor picks the base bark tone for a branch: older (deeper) wood is
// darker.
func barkColor(depth int) Color {
	switch {
	case depth > 3:
		return barkOld
	case depth > 2:
		return barkMiddle
	default:
		return barkYoung
	}
}

// drawBark fills the wobbled polyline as a chain of tapered quads and
// scratches grain lines along wide branches. The grain offsets are drawn
// from the stream even when there is no canvas so the tree's shape does not
// depend on whether it is being painted.
func (w *treeWalk) drawBark(points []Vec2, width float64, depth int) {
	var offsets [barkTextureLines]float64
	textured := width > barkTextureMinWidth
	if textured {
		for k := range offsets {
			offsets[k] = w.rng.Next(-width*barkTextureSpread, width*barkTextureSpread)
		}
	}
	if w.c == nil {
		return
	}

	base := barkColor(depth)
	last := len(points) - 1
	for i := 0; i < last; i++ {
		t := float64(i) / float64(last)
		hw := width * (1 - t*w.cfg.Taper) * 0.5
		p1, p2 := points[i], points[i+1]
		nx, ny := perpendicular(p1, p2)

		quad := Polygon(
			Vec2{p1.X + nx*hw, p1.Y + ny*hw},
			Vec2{p2.X + nx*hw*barkTipWidth, p2.Y + ny*hw*barkTipWidth},
			Vec2{p2.X - nx*hw*barkTipWidth, p2.Y - ny*hw*barkTipWidth},
			Vec2{p1.X - nx*hw, p1.Y - ny*hw},
		)
		grad := NewLinearGradient(
			p1.X+nx*hw, p1.Y+ny*hw,
			p1.X-nx*hw, p1.Y-ny*hw,
			ColorStop{0, base.Lighten(15)},
			ColorStop{0.3, base},
			ColorStop{0.7, base.Darken(10)},
			ColorStop{1, base.Lighten(5)},
		)
		w.c.Fill(quad, Shade(grad))
	}

	if !textured {
		return
	}
	grain := make([]Vec2, len(points))
	for _, off := range offsets {
		for i, p := range points {
			var nx, ny float64
			if i < last {
				nx, ny = perpendicular(p, points[i+1])
			} else {
				nx, ny = perpendicular(points[i-1], p)
			}
			grain[i] = Vec2{p.X + nx*off, p.Y + ny*off}
		}
		w.c.Stroke(Polyline(grain), Solid(barkTexture), StrokeStyle{Width: 0.5, Cap: LineCapButt})
	}
}

// drawRoots spreads the root tendrils around the base of the trunk. Each
// root consumes three values from the stream whether or not it is drawn.
func (w *treeWalk) drawRoots(baseX, baseY, rootProgress, maxHeight float64) {
	cfg := w.cfg
	scale := 1.0
	if cfg.RootScale > 0 {
		scale = maxHeight / cfg.RootScale
	}
	for i := 0; i < cfg.RootCount; i++ {
		ra := w.rng.Next(-cfg.RootSpread, cfg.RootSpread)
		rl := cfg.RootLength.draw(w.rng) * rootProgress * scale
		lw := cfg.RootWidth.draw(w.rng) * scale
		if w.c == nil {
			continue
		}

		var p Path
		p.MoveTo(baseX, baseY)
		p.QuadTo(
			baseX+math.Cos(math.Pi/2+ra)*rl*0.5,
			baseY+math.Abs(math.Sin(ra))*rl*0.3,
			baseX+math.Cos(ra)*rl,
			baseY+math.Abs(math.Sin(ra+0.3))*rl*0.4+3,
		)
		w.c.Stroke(&p, Solid(rootColor), StrokeStyle{Width: lw, Cap: LineCapRound})
	}
}
