package sapling

import (
	"image/color"
	"testing"
)

func TestRGB(t *testing.T) {
	c := RGB(0xff8000)
	assertNear(t, "R", c.R, 1)
	assertNear(t, "G", c.G, 128.0/255)
	assertNear(t, "B", c.B, 0)
	assertNear(t, "A", c.A, 1)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#f5f0e8", RGB(0xf5f0e8), false},
		{"e74c3c", RGB(0xe74c3c), false},
		{"  #FFFFFF ", ColorWhite, false},
		{"#fff", Color{}, true},
		{"#gg0000", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLightenDarken(t *testing.T) {
	c := RGBA8(250, 100, 5, 0.5)
	l := c.Lighten(10)
	assertNear(t, "lighten.R", l.R, 1)
	assertNear(t, "lighten.G", l.G, 110.0/255)
	assertNear(t, "lighten.A", l.A, 0.5)

	d := c.Darken(10)
	assertNear(t, "darken.G", d.G, 90.0/255)
	assertNear(t, "darken.B", d.B, 0)
	assertNear(t, "darken.A", d.A, 0.5)
}

func TestWithAlpha(t *testing.T) {
	c := RGB(0x102030).WithAlpha(0.25)
	if c.A != 0.25 || c.R != RGB(0x102030).R {
		t.Errorf("WithAlpha = %v", c)
	}
}

func TestLerpColor(t *testing.T) {
	got := lerpColor(Color{0, 0, 0, 0}, Color{1, 0.5, 0, 1}, 0.5)
	want := Color{0.5, 0.25, 0, 0.5}
	if got != want {
		t.Errorf("lerp = %v, want %v", got, want)
	}
}

func TestToRGBAPremultiplies(t *testing.T) {
	got := Color{1, 0.5, 0, 0.5}.toRGBA()
	want := color.RGBA{R: 128, G: 64, B: 0, A: 128}
	if got != want {
		t.Errorf("toRGBA = %v, want %v", got, want)
	}
	if got := (Color{2, -1, 0.5, 3}).toRGBA(); got != (color.RGBA{255, 0, 128, 255}) {
		t.Errorf("out-of-range toRGBA = %v", got)
	}
}

func TestEllipseContains(t *testing.T) {
	e := Ellipse{CX: 10, CY: 20, RX: 5, RY: 2}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 10, 20, true},
		{"inside", 13, 20.5, true},
		{"on edge", 15, 20, false},
		{"outside", 10, 23, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
	if (Ellipse{RX: 0, RY: 1}).Contains(0, 0) {
		t.Error("degenerate ellipse should contain nothing")
	}
}
