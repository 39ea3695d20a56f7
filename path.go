package sapling

import (
	"iter"
	"math"

	"honnef.co/go/curve"
)

// Path accumulates subpaths of straight lines and Bézier curves in local
// coordinates. It is a curve.BezPath underneath; backends flatten it at draw
// time with a tolerance matched to the current transform. The zero value is
// an empty path ready to use.
type Path struct {
	els    curve.BezPath
	start  curve.Point
	cur    curve.Point
	hasCur bool
	reopen bool // set by Close; the next segment starts a new subpath at start
}

// subpath is one flattened contour.
type subpath struct {
	points []Vec2
	closed bool
}

const (
	// flattenTolerance is the largest distance, in device pixels, between a
	// curve and the polyline that replaces it.
	flattenTolerance = 0.25

	// shapeTolerance bounds the error of the cubic approximation used for
	// ellipses and circles, in local units.
	shapeTolerance = 0.05
)

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := curve.Pt(x, y)
	p.els.MoveTo(pt)
	p.start, p.cur = pt, pt
	p.hasCur = true
	p.reopen = false
}

// LineTo adds a straight segment to (x, y). Without a current point it acts
// like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.hasCur {
		p.MoveTo(x, y)
		return
	}
	p.prepare(x, y)
	pt := curve.Pt(x, y)
	p.els.LineTo(pt)
	p.cur = pt
}

// QuadTo adds a quadratic Bézier from the current point through control
// (cx, cy) to (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.prepare(cx, cy)
	pt := curve.Pt(x, y)
	p.els.QuadTo(curve.Pt(cx, cy), pt)
	p.cur = pt
}

// CubicTo adds a cubic Bézier from the current point with controls
// (c1x, c1y), (c2x, c2y) to (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.prepare(c1x, c1y)
	pt := curve.Pt(x, y)
	p.els.CubicTo(curve.Pt(c1x, c1y), curve.Pt(c2x, c2y), pt)
	p.cur = pt
}

// Ellipse adds a closed elliptical subpath centered on (cx, cy) with radii
// rx, ry, rotated by rotation radians. Non-positive radii add nothing.
func (p *Path) Ellipse(cx, cy, rx, ry, rotation float64) {
	if !(rx > 0 && ry > 0) || math.IsInf(rx, 0) || math.IsInf(ry, 0) {
		return
	}
	e := curve.NewEllipse(curve.Pt(cx, cy), curve.Vec(rx, ry), rotation)
	p.appendShape(e.PathElements(shapeTolerance))
	p.Close()
}

// Circle adds a closed circular subpath.
func (p *Path) Circle(cx, cy, r float64) {
	if !(r > 0) || math.IsInf(r, 0) {
		return
	}
	p.appendShape(curve.Circle{Center: curve.Pt(cx, cy), Radius: r}.PathElements(shapeTolerance))
}

// Close marks the current subpath closed. The next drawing command starts a
// new subpath at the closed subpath's first point.
func (p *Path) Close() {
	if !p.hasCur || p.reopen {
		return
	}
	p.els.ClosePath()
	p.cur = p.start
	p.reopen = true
}

// Empty reports whether the path has no drawable segments.
func (p *Path) Empty() bool {
	return !p.els.HasSegments()
}

// prepare makes sure a subpath is open before a segment is added. Without a
// current point it moves to (x, y).
func (p *Path) prepare(x, y float64) {
	switch {
	case !p.hasCur:
		p.MoveTo(x, y)
	case p.reopen:
		p.els.MoveTo(p.start)
		p.reopen = false
	}
}

func (p *Path) appendShape(seq iter.Seq[curve.PathElement]) {
	for el := range seq {
		switch el.Kind {
		case curve.MoveToKind:
			p.MoveTo(el.P0.X, el.P0.Y)
		case curve.ClosePathKind:
			p.Close()
		default:
			p.prepare(el.P0.X, el.P0.Y)
			p.els.Push(el)
			if end, ok := el.EndPoint(); ok {
				p.cur = end
			}
		}
	}
}

// finite reports whether every point of the path is a real number.
func (p *Path) finite() bool {
	return !p.els.IsNaN() && !p.els.IsInf()
}

// contours flattens the path into polylines whose distance from the true
// curves stays within tolerance, in local units. Subpaths with fewer than
// two points are dropped.
func (p *Path) contours(tolerance float64) []subpath {
	if !p.finite() {
		return nil
	}
	return collectContours(curve.Flatten(p.els.Elements(), tolerance))
}

func collectContours(seq iter.Seq[curve.PathElement]) []subpath {
	var out []subpath
	var sp subpath
	flush := func() {
		if len(sp.points) > 1 {
			out = append(out, sp)
		}
		sp = subpath{}
	}
	for el := range seq {
		switch el.Kind {
		case curve.MoveToKind:
			flush()
			sp.points = append(sp.points, Vec2(el.P0))
		case curve.LineToKind:
			sp.points = append(sp.points, Vec2(el.P0))
		case curve.ClosePathKind:
			sp.closed = true
			flush()
		}
	}
	flush()
	return out
}

// Polyline builds an open path through the given points.
func Polyline(points []Vec2) *Path {
	var p Path
	for i, pt := range points {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
		} else {
			p.LineTo(pt.X, pt.Y)
		}
	}
	return &p
}

// Polygon builds a closed path through the given points.
func Polygon(points ...Vec2) *Path {
	p := Polyline(points)
	p.Close()
	return p
}
