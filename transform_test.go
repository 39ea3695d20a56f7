package sapling

import (
	"math"
	"testing"
)

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- constructors ---

func TestTranslateAffine(t *testing.T) {
	assertMatrix(t, "translate", translateAffine(10, 20), [6]float64{1, 0, 0, 1, 10, 20})
}

func TestScaleAffine(t *testing.T) {
	assertMatrix(t, "scale", scaleAffine(2, 3), [6]float64{2, 0, 0, 3, 0, 0})
}

func TestRotateAffine90(t *testing.T) {
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", rotateAffine(math.Pi/2), [6]float64{0, 1, -1, 0, 0, 0})
}

func TestComposedTransform(t *testing.T) {
	// T(50,100) * R(90°) * S(2,2)
	m := multiplyAffine(translateAffine(50, 100), multiplyAffine(rotateAffine(math.Pi/2), scaleAffine(2, 2)))
	assertMatrix(t, "combined", m, [6]float64{0, 2, -2, 0, 50, 100})

	x, y := transformPoint(m, 1, 0)
	assertNear(t, "x", x, 50)
	assertNear(t, "y", y, 102)
}

// --- multiplyAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	id := identityTransform
	m := [6]float64{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "id*m", multiplyAffine(id, m), m)
	assertMatrix(t, "m*id", multiplyAffine(m, id), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 3}
	got := multiplyAffine(a, b)
	assertMatrix(t, "translations", got, [6]float64{1, 0, 0, 1, 15, 23})
}

// --- invertAffine ---

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	inv := invertAffine(m)
	result := multiplyAffine(m, inv)
	assertMatrix(t, "m*inv=id", result, identityTransform)
}

func TestInvertAffineComplex(t *testing.T) {
	// Scale + rotation + translation
	m := multiplyAffine(translateAffine(7, -3), multiplyAffine(rotateAffine(math.Pi/3), scaleAffine(2, 1)))
	inv := invertAffine(m)
	assertMatrix(t, "m*inv=id", multiplyAffine(m, inv), identityTransform)

	x, y := transformPoint(m, 123, -45)
	bx, by := transformPoint(inv, x, y)
	assertNear(t, "roundtrip.x", bx, 123)
	assertNear(t, "roundtrip.y", by, -45)
}

// --- Singular matrix safety ---

func TestInvertAffineSingularReturnsIdentity(t *testing.T) {
	// ScaleX=0 produces a singular matrix (determinant=0).
	m := [6]float64{0, 0, 0, 1, 10, 20}
	assertMatrix(t, "singular→identity", invertAffine(m), identityTransform)
}

func TestInvertAffineBothZeroScales(t *testing.T) {
	m := [6]float64{0, 0, 0, 0, 50, 100}
	assertMatrix(t, "zero-scale→identity", invertAffine(m), identityTransform)
}

// --- affineScale ---

func TestAffineScale(t *testing.T) {
	tests := []struct {
		name string
		m    [6]float64
		want float64
	}{
		{"identity", identityTransform, 1},
		{"uniform", scaleAffine(3, 3), 3},
		{"anisotropic", scaleAffine(2, 8), 4},
		{"rotated", multiplyAffine(rotateAffine(0.7), scaleAffine(2, 2)), 2},
		{"mirrored", scaleAffine(-2, 2), 2},
		{"translation only", translateAffine(100, 100), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "scale", affineScale(tt.m), tt.want)
		})
	}
}

// --- Benchmarks ---

func BenchmarkMultiplyAffine(b *testing.B) {
	a := [6]float64{2, 0.1, 0.3, 3, 100, 200}
	c := [6]float64{1.5, 0.2, 0.1, 2.5, 50, 30}
	b.ReportAllocs()
	for b.Loop() {
		_ = multiplyAffine(a, c)
	}
}
