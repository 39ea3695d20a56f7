package sapling

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGB builds an opaque Color from a 0xRRGGBB value.
func RGB(hex uint32) Color {
	return Color{
		R: float64((hex>>16)&0xff) / 255,
		G: float64((hex>>8)&0xff) / 255,
		B: float64(hex&0xff) / 255,
		A: 1,
	}
}

// RGBA8 builds a Color from 8-bit channels and a [0, 1] alpha.
func RGBA8(r, g, b uint8, a float64) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, a}
}

// ParseHexColor parses "#rrggbb" or "rrggbb" into an opaque Color.
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("sapling: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("sapling: invalid hex color %q: %w", s, err)
	}
	return RGB(uint32(v)), nil
}

// Lighten adds amount (in 0-255 channel units) to each color channel,
// clamping at full intensity. Alpha is unchanged.
func (c Color) Lighten(amount float64) Color {
	d := amount / 255
	return Color{math.Min(1, c.R+d), math.Min(1, c.G+d), math.Min(1, c.B+d), c.A}
}

// Darken subtracts amount (in 0-255 channel units) from each color channel,
// clamping at zero. Alpha is unchanged.
func (c Color) Darken(amount float64) Color {
	d := amount / 255
	return Color{math.Max(0, c.R-d), math.Max(0, c.G-d), math.Max(0, c.B-d), c.A}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// lerpColor linearly interpolates every channel between a and b.
func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, offsets and directions.
type Vec2 struct {
	X, Y float64
}

// Range is a general-purpose half-open [Min, Max) interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// draw returns a value from r using the seeded stream.
func (r Range) draw(rng *SeededRand) float64 {
	return rng.Next(r.Min, r.Max)
}

// Ellipse is an axis-aligned ellipse.
type Ellipse struct {
	CX, CY float64
	RX, RY float64
}

// Contains reports whether (x, y) lies strictly inside the ellipse.
func (e Ellipse) Contains(x, y float64) bool {
	if e.RX <= 0 || e.RY <= 0 {
		return false
	}
	dx := (x - e.CX) / e.RX
	dy := (y - e.CY) / e.RY
	return dx*dx+dy*dy < 1
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
