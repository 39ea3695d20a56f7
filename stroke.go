package sapling

import (
	"math"

	"honnef.co/go/curve"
)

// strokeContours expands the stroke of p into flattened contours to be
// filled with the non-zero rule: one closed outline per open subpath, an
// outer and an inner ring per closed one. Joins are round.
func (p *Path) strokeContours(style StrokeStyle, tolerance float64) []subpath {
	if !(style.Width > 0) || !p.finite() {
		return nil
	}
	s := curve.DefaultStroke.
		WithWidth(style.Width).
		WithJoin(curve.RoundJoin).
		WithCaps(curveCap(style.Cap))
	outline := curve.StrokePath(p.els.Elements(), s, curve.StrokeOpts{OptLevel: curve.Subdivide}, tolerance)
	return collectContours(curve.Flatten(outline, tolerance))
}

func curveCap(c LineCap) curve.Cap {
	if c == LineCapRound {
		return curve.RoundCap
	}
	return curve.ButtCap
}

// perpendicular returns the unit normal of the segment a→b, or zero for a
// degenerate segment.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	l := math.Sqrt(dx*dx + dy*dy)
	if l < 1e-10 {
		return 0, 0
	}
	return -dy / l, dx / l
}
