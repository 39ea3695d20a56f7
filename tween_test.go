package sapling

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenValueReachesTarget(t *testing.T) {
	v := 10.0
	g := TweenValue(&v, 100, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	if math.Abs(v-55) > 0.5 {
		t.Errorf("midpoint = %f, want ~55", v)
	}
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(v-100) > 0.01 {
		t.Errorf("v = %f, want ~100", v)
	}
}

func TestTweenValuesAllFields(t *testing.T) {
	a, b, c := 0.0, 1.0, 5.0
	g := TweenValues([]*float64{&a, &b, &c}, []float64{1, 0, -5}, 0.5, nil)

	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	for _, f := range []struct {
		name      string
		got, want float64
	}{
		{"a", a, 1},
		{"b", b, 0},
		{"c", c, -5},
	} {
		if math.Abs(f.got-f.want) > 0.01 {
			t.Errorf("%s = %f, want %f", f.name, f.got, f.want)
		}
	}
}

func TestTweenValuesIgnoresExtraPairs(t *testing.T) {
	vals := make([]float64, 6)
	fields := make([]*float64, len(vals))
	to := make([]float64, len(vals))
	for i := range vals {
		fields[i] = &vals[i]
		to[i] = 1
	}
	g := TweenValues(fields, to, 0.5, ease.Linear)
	g.Update(0.5)

	for i, v := range vals {
		want := 1.0
		if i >= 4 {
			want = 0
		}
		if math.Abs(v-want) > 0.01 {
			t.Errorf("vals[%d] = %f, want %f", i, v, want)
		}
	}
}

func TestTweenValuesEmptyIsDone(t *testing.T) {
	g := TweenValues(nil, nil, 1, ease.Linear)
	if !g.Done {
		t.Error("empty group should start Done")
	}
	g.Update(0.1)
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	v := 0.0
	g := TweenValue(&v, 50, 0.5, ease.Linear)

	if g.Done {
		t.Fatal("should not be Done at start")
	}

	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}

	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}

	// Update after done is a no-op.
	v = 7
	g.Update(0.1)
	if !g.Done || v != 7 {
		t.Fatalf("Done = %v, v = %f after extra update, want true and 7", g.Done, v)
	}
}

func TestTweenGroupNilSafe(t *testing.T) {
	var g *TweenGroup
	g.Update(0.1)
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	l, c := 0.0, 0.0
	gL := TweenValue(&l, 100, 1.0, ease.Linear)
	gC := TweenValue(&c, 100, 1.0, ease.OutCubic)

	gL.Update(0.5)
	gC.Update(0.5)

	// OutCubic is ahead of linear at the midpoint.
	if c-l < 1.0 {
		t.Errorf("linear=%f cubic=%f, want cubic ahead", l, c)
	}
}

func TestTweenGroupUpdateZeroAlloc(t *testing.T) {
	v := 0.0
	g := TweenValue(&v, 100, 1.0, ease.Linear)
	g.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		g.Update(0.001)
	})
	if result > 0 {
		t.Errorf("TweenGroup.Update allocated %f times per run, want 0", result)
	}
}

func TestEaseByName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"", false},
		{"linear", false},
		{"in_out_sine", false},
		{"out_bounce", false},
		{"in_out_cubic", false},
		{"InOutSine", true},
		{"wobbly", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := EaseByName(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			// Every easing maps the endpoints onto begin and begin+change.
			assertNear(t, "start", float64(fn(0, 10, 20, 1)), 10)
			if got := float64(fn(1, 10, 20, 1)); math.Abs(got-30) > 1e-4 {
				t.Errorf("end = %v, want 30", got)
			}
		})
	}
}
