package sapling

import (
	"math"
	"sort"
)

// GradientKind selects how a Gradient maps a point to a stop offset.
type GradientKind uint8

const (
	GradientLinear GradientKind = iota // projection onto the (X0,Y0)-(X1,Y1) axis
	GradientRadial                     // two-circle conical gradient
)

// ColorStop is one color at an offset in [0, 1] along a gradient.
type ColorStop struct {
	Offset float64
	Color  Color
}

// Gradient is a linear or radial color ramp defined in the local coordinate
// space of the path it fills. Radial gradients interpolate between the start
// circle (X0, Y0, R0) and the end circle (X1, Y1, R1).
type Gradient struct {
	Kind       GradientKind
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []ColorStop
	sorted     bool
}

// NewLinearGradient returns a linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64, stops ...ColorStop) *Gradient {
	return &Gradient{Kind: GradientLinear, X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: stops}
}

// NewRadialGradient returns a two-circle radial gradient.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64, stops ...ColorStop) *Gradient {
	return &Gradient{Kind: GradientRadial, X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1, Stops: stops}
}

// At returns the gradient color at local point (x, y). Offsets outside the
// ramp clamp to the first or last stop.
func (g *Gradient) At(x, y float64) Color {
	if len(g.Stops) == 0 {
		return Color{}
	}
	if !g.sorted {
		sort.SliceStable(g.Stops, func(i, j int) bool { return g.Stops[i].Offset < g.Stops[j].Offset })
		g.sorted = true
	}
	return g.colorAt(g.offset(x, y))
}

func (g *Gradient) offset(x, y float64) float64 {
	switch g.Kind {
	case GradientRadial:
		return g.radialOffset(x, y)
	default:
		dx := g.X1 - g.X0
		dy := g.Y1 - g.Y0
		l2 := dx*dx + dy*dy
		if l2 < 1e-12 {
			return 0
		}
		return ((x-g.X0)*dx + (y-g.Y0)*dy) / l2
	}
}

// radialOffset solves |p - c(t)| = r(t) for the largest t with r(t) >= 0,
// where c and r interpolate linearly between the two circles.
func (g *Gradient) radialOffset(x, y float64) float64 {
	cdx := g.X1 - g.X0
	cdy := g.Y1 - g.Y0
	dr := g.R1 - g.R0
	pdx := x - g.X0
	pdy := y - g.Y0

	a := cdx*cdx + cdy*cdy - dr*dr
	b := pdx*cdx + pdy*cdy + g.R0*dr
	c := pdx*pdx + pdy*pdy - g.R0*g.R0

	if math.Abs(a) < 1e-9 {
		if math.Abs(b) < 1e-12 {
			return 0
		}
		return c / (2 * b)
	}
	disc := b*b - a*c
	if disc < 0 {
		return 0
	}
	sq := math.Sqrt(disc)
	hi := (b + sq) / a
	lo := (b - sq) / a
	if lo > hi {
		hi, lo = lo, hi
	}
	if g.R0+hi*dr >= 0 {
		return hi
	}
	return lo
}

func (g *Gradient) colorAt(t float64) Color {
	stops := g.Stops
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		s1 := stops[i]
		if t > s1.Offset {
			continue
		}
		s0 := stops[i-1]
		span := s1.Offset - s0.Offset
		if span <= 0 {
			return s1.Color
		}
		return lerpColor(s0.Color, s1.Color, (t-s0.Offset)/span)
	}
	return last.Color
}

// Paint is the fill source for Fill and Stroke: a solid Color, or a Gradient
// when Gradient is non-nil.
type Paint struct {
	Color    Color
	Gradient *Gradient
}

// Solid returns a Paint of a single color.
func Solid(c Color) Paint {
	return Paint{Color: c}
}

// Shade returns a Paint backed by g.
func Shade(g *Gradient) Paint {
	return Paint{Gradient: g}
}

// At returns the paint color at local point (x, y).
func (p Paint) At(x, y float64) Color {
	if p.Gradient != nil {
		return p.Gradient.At(x, y)
	}
	return p.Color
}

// LineCap selects the shape drawn at the ends of a stroked open subpath.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
)

// StrokeStyle configures Stroke.
type StrokeStyle struct {
	Width float64
	Cap   LineCap
}
