package sapling

import "testing"

func TestLinearGradient(t *testing.T) {
	g := NewLinearGradient(0, 0, 100, 0,
		ColorStop{1, ColorWhite},
		ColorStop{0, Color{0, 0, 0, 1}},
	)
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"before start", -50, 0},
		{"start", 0, 0},
		{"quarter", 25, 0.25},
		{"end", 100, 1},
		{"past end", 150, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Unsorted stops are sorted on first use.
			assertNear(t, "R", g.At(tt.x, 42).R, tt.want)
		})
	}
}

func TestLinearGradientMultiStop(t *testing.T) {
	base := RGB(0x5a4332)
	g := NewLinearGradient(0, 0, 0, 10,
		ColorStop{0, base.Lighten(15)},
		ColorStop{0.3, base},
		ColorStop{0.7, base.Darken(10)},
		ColorStop{1, base.Lighten(5)},
	)
	at := g.At(0, 3)
	assertNear(t, "At(0.3).R", at.R, base.R)
	assertNear(t, "At(0.3).G", at.G, base.G)
	assertNear(t, "At(0.3).B", at.B, base.B)
	mid := g.At(0, 5)
	if mid.R >= base.R || mid.R <= base.Darken(10).R {
		t.Errorf("At(0.5).R = %v, want between the 0.3 and 0.7 stops", mid.R)
	}
}

func TestLinearGradientDegenerate(t *testing.T) {
	g := NewLinearGradient(5, 5, 5, 5, ColorStop{0, ColorWhite}, ColorStop{1, Color{}})
	if got := g.At(100, 100); got != ColorWhite {
		t.Errorf("zero-length gradient = %v, want first stop", got)
	}
}

func TestRadialGradient(t *testing.T) {
	black := Color{0, 0, 0, 1}
	g := NewRadialGradient(0, 0, 0, 0, 0, 10, ColorStop{0, ColorWhite}, ColorStop{1, black})
	assertNear(t, "center", g.At(0, 0).R, 1)
	assertNear(t, "half", g.At(5, 0).R, 0.5)
	assertNear(t, "half diagonal", g.At(3, 4).R, 0.5)
	assertNear(t, "edge", g.At(0, -10).R, 0)
	assertNear(t, "outside", g.At(20, 0).R, 0)
}

func TestRadialGradientOffsetFocus(t *testing.T) {
	// The heart's highlight: a small circle up-left of a large one.
	s := 70.0
	g := NewRadialGradient(-s*0.15, -s*0.3, s*0.05, 0, -s*0.1, s*0.8,
		ColorStop{0, ColorWhite}, ColorStop{1, Color{0, 0, 0, 1}})
	focus := g.At(-s*0.15, -s*0.3)
	rim := g.At(0, -s*0.1+s*0.8)
	if focus.R <= rim.R {
		t.Errorf("focus %v should be brighter than rim %v", focus.R, rim.R)
	}
	assertNear(t, "rim", rim.R, 0)
}

func TestGradientNoStops(t *testing.T) {
	g := NewLinearGradient(0, 0, 1, 1)
	if got := g.At(0, 0); got != (Color{}) {
		t.Errorf("empty gradient = %v, want transparent", got)
	}
}

func TestPaintAt(t *testing.T) {
	red := RGB(0xff0000)
	if got := Solid(red).At(10, 10); got != red {
		t.Errorf("Solid.At = %v", got)
	}
	g := NewLinearGradient(0, 0, 10, 0, ColorStop{0, red}, ColorStop{1, red})
	if got := Shade(g).At(3, 0); got != red {
		t.Errorf("Shade.At = %v", got)
	}
}
