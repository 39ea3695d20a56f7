package sapling

import "testing"

func pathBounds(p *Path) (minX, minY, maxX, maxY float64) {
	first := true
	for _, sp := range p.contours(flattenTolerance) {
		for _, pt := range sp.points {
			if first {
				minX, minY, maxX, maxY = pt.X, pt.Y, pt.X, pt.Y
				first = false
				continue
			}
			minX = min(minX, pt.X)
			minY = min(minY, pt.Y)
			maxX = max(maxX, pt.X)
			maxY = max(maxY, pt.Y)
		}
	}
	return
}

func TestHeartPathBounds(t *testing.T) {
	p := HeartPath(100)
	if sps := p.contours(flattenTolerance); len(sps) != 1 || !sps[0].closed {
		t.Fatalf("want one closed subpath, got %d", len(sps))
	}
	minX, minY, maxX, maxY := pathBounds(p)
	if !approxEqual(maxY, 35, 1e-9) {
		t.Errorf("point at y=%v, want 35", maxY)
	}
	if minY > -70 || minY < -76 {
		t.Errorf("lobe top at y=%v, want about -72", minY)
	}
	if !approxEqual(minX, -maxX, flattenTolerance) {
		t.Errorf("heart not symmetric: %v vs %v", minX, maxX)
	}
}

func TestDrawHeart(t *testing.T) {
	c := newRecordingCanvas(200, 200)
	DrawHeart(c, 100, 80, 70, RGB(0xe74c3c), HeartStyle{})
	if len(c.calls) != 2 {
		t.Fatalf("calls = %d, want body and highlight", len(c.calls))
	}
	body := c.calls[0]
	if body.paint.Gradient == nil || body.paint.Gradient.Kind != GradientRadial {
		t.Error("heart body should use a radial gradient")
	}
	if len(c.stack) != 0 {
		t.Error("DrawHeart left the state stack unbalanced")
	}
}

func TestDrawHeartShadow(t *testing.T) {
	c := newRecordingCanvas(200, 200)
	DrawHeart(c, 100, 80, 70, RGB(0xe74c3c), HeartStyle{Shadow: true, Rotation: 0.2})
	if len(c.calls) != 5 {
		t.Fatalf("calls = %d, want 3 shadow layers, body and highlight", len(c.calls))
	}
	for i := 0; i < 3; i++ {
		if c.calls[i].alpha >= 1 {
			t.Errorf("shadow layer %d alpha = %v, want < 1", i, c.calls[i].alpha)
		}
	}
	if c.calls[3].alpha != 1 {
		t.Errorf("body alpha = %v, want 1", c.calls[3].alpha)
	}
}

func TestDrawHeartZeroSize(t *testing.T) {
	c := newRecordingCanvas(200, 200)
	DrawHeart(c, 100, 80, 0, RGB(0xe74c3c), HeartStyle{Shadow: true})
	if len(c.calls) != 0 {
		t.Errorf("calls = %d, want 0", len(c.calls))
	}
}
