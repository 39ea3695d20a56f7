package sapling

import "math"

// Tip is the end point of one of the canopy's outermost branches. Tips are
// the anchors used to hang foliage.
type Tip struct {
	X, Y  float64
	Angle float64 // exit direction in radians
	Depth int     // recursion depth remaining when the branch was drawn
}

// TreeConfig holds the tuning of the branching algorithm. The values are
// aesthetic defaults; none of them is load-bearing beyond producing a
// plausible silhouette. Lengths and widths marked "fraction" are relative to
// the parent branch (or, for the trunk, to the tree's max height).
type TreeConfig struct {
	InitialDepth int     `yaml:"initial_depth"`
	TrunkLength  float64 `yaml:"trunk_length"` // fraction of max height
	TrunkWidth   float64 `yaml:"trunk_width"`  // fraction of max height
	TrunkTilt    float64 `yaml:"trunk_tilt"`   // max random lean, radians

	MinLength       float64 `yaml:"min_length"`     // shorter branches are not drawn
	SegmentLength   float64 `yaml:"segment_length"` // target polyline step
	MinSegments     int     `yaml:"min_segments"`
	Wobble          float64 `yaml:"wobble"`            // per-branch constant bend
	Jitter          float64 `yaml:"jitter"`            // per-segment random bend
	JitterDepthGain float64 `yaml:"jitter_depth_gain"` // jitter multiplier per depth level
	Taper           float64 `yaml:"taper"`             // width lost from base to end

	ChildGate      float64 `yaml:"child_gate"` // own progress before children appear
	TipDepth       int     `yaml:"tip_depth"`  // tips are recorded at or below this depth
	DeepDepth      int     `yaml:"deep_depth"` // above this depth, DeepChildCount applies
	ChildCount     Range   `yaml:"child_count"`
	DeepChildCount Range   `yaml:"deep_child_count"`
	Spread         Range   `yaml:"spread"`
	SpreadJitter   float64 `yaml:"spread_jitter"`
	ChildLength    Range   `yaml:"child_length"` // fraction
	ChildWidth     Range   `yaml:"child_width"`  // fraction
	Stagger        float64 `yaml:"stagger"`      // start delay per child index

	SideDepth  int     `yaml:"side_depth"` // side branches grow above this depth
	SideGate   float64 `yaml:"side_gate"`  // child progress before the side branch appears
	SideAngle  Range   `yaml:"side_angle"`
	SideLength Range   `yaml:"side_length"` // fraction
	SideWidth  float64 `yaml:"side_width"`  // fraction

	RootCount  int     `yaml:"root_count"`
	RootGrowth float64 `yaml:"root_growth"` // tree progress at which roots are full size
	RootSpread float64 `yaml:"root_spread"`
	RootLength Range   `yaml:"root_length"`
	RootWidth  Range   `yaml:"root_width"`
	RootScale  float64 `yaml:"root_scale"` // max height at which root sizes are 1:1
}

// DefaultTreeConfig returns the stock tuning.
func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		InitialDepth: 6,
		TrunkLength:  0.42,
		TrunkWidth:   0.04,
		TrunkTilt:    0.03,

		MinLength:       2,
		SegmentLength:   8,
		MinSegments:     4,
		Wobble:          0.02,
		Jitter:          0.04,
		JitterDepthGain: 0.1,
		Taper:           0.7,

		ChildGate:      0.3,
		TipDepth:       2,
		DeepDepth:      3,
		ChildCount:     Range{2, 3},
		DeepChildCount: Range{2, 4},
		Spread:         Range{0.3, 0.8},
		SpreadJitter:   0.15,
		ChildLength:    Range{0.55, 0.75},
		ChildWidth:     Range{0.5, 0.7},
		Stagger:        0.15,

		SideDepth:  2,
		SideGate:   0.5,
		SideAngle:  Range{0.5, 1.2},
		SideLength: Range{0.3, 0.45},
		SideWidth:  0.4,

		RootCount:  5,
		RootGrowth: 0.1,
		RootSpread: 0.8,
		RootLength: Range{15, 40},
		RootWidth:  Range{2, 5},
		RootScale:  400,
	}
}

// MaxChildren returns the largest fan-out any branch can produce.
func (cfg *TreeConfig) MaxChildren() int {
	n := int(math.Ceil(math.Max(cfg.ChildCount.Max, cfg.DeepChildCount.Max))) - 1
	if n < 0 {
		return 0
	}
	return n
}

// TreeStats counts the work done by the most recent render.
type TreeStats struct {
	Branches int // branches that drew at least one segment
	Segments int // tapered quads emitted
	Tips     int
}

// TreeGenerator renders seeded trees. The zero value is not usable; create
// one with NewTreeGenerator.
type TreeGenerator struct {
	Config TreeConfig
	stats  TreeStats
}

// NewTreeGenerator returns a generator with the given tuning.
func NewTreeGenerator(cfg TreeConfig) *TreeGenerator {
	return &TreeGenerator{Config: cfg}
}

// Stats returns the counters of the last Render call.
func (g *TreeGenerator) Stats() TreeStats {
	return g.stats
}

// RenderTree draws a tree with DefaultTreeConfig. See TreeGenerator.Render.
func RenderTree(c Canvas, seed int64, baseX, baseY, progress, maxHeight float64) []Tip {
	return NewTreeGenerator(DefaultTreeConfig()).Render(c, seed, baseX, baseY, progress, maxHeight)
}

// Render draws the tree rooted at (baseX, baseY) grown to progress (0 = not
// started, >= 1 = fully grown) and returns the canopy tips it recorded. The
// returned slice is new on every call and replaces any previous result.
//
// c may be nil, in which case nothing is drawn but the shape (and therefore
// the tips) is computed exactly as if it were.
func (g *TreeGenerator) Render(c Canvas, seed int64, baseX, baseY, progress, maxHeight float64) []Tip {
	w := treeWalk{
		cfg:  &g.Config,
		c:    c,
		rng:  NewSeededRand(seed),
		tips: []Tip{},
	}

	rootProgress := 0.0
	if g.Config.RootGrowth > 0 {
		rootProgress = math.Min(progress/g.Config.RootGrowth, 1)
	} else if progress > 0 {
		rootProgress = 1
	}
	if rootProgress > 0 {
		w.drawRoots(baseX, baseY, rootProgress, maxHeight)
	}

	angle := -math.Pi/2 + w.rng.Next(-g.Config.TrunkTilt, g.Config.TrunkTilt)
	w.growBranch(
		baseX, baseY, angle,
		maxHeight*g.Config.TrunkLength, maxHeight*g.Config.TrunkWidth,
		g.Config.InitialDepth, progress,
	)

	w.stats.Tips = len(w.tips)
	g.stats = w.stats
	return w.tips
}

// treeWalk carries the state shared by one render pass: the seeded stream
// and the tip accumulator.
type treeWalk struct {
	cfg   *TreeConfig
	c     Canvas
	rng   *SeededRand
	tips  []Tip
	stats TreeStats
}

// effectiveLength is the drawn length of a branch at the given progress.
func effectiveLength(length, progress float64) float64 {
	if progress <= 0 || math.IsNaN(progress) {
		return 0
	}
	return length * math.Min(progress, 1)
}

// segmentCount is the number of polyline steps for a branch of full length.
func (cfg *TreeConfig) segmentCount(length float64) int {
	n := 0
	if cfg.SegmentLength > 0 {
		n = int(math.Floor(length / cfg.SegmentLength))
	}
	if n < cfg.MinSegments {
		n = cfg.MinSegments
	}
	if n < 1 {
		n = 1
	}
	return n
}

// growBranch draws one branch and recurses into its children. Depth
// strictly decreases on every recursive call, bounding the recursion.
func (w *treeWalk) growBranch(x, y, angle, length, width float64, depth int, progress float64) {
	if depth <= 0 || length < w.cfg.MinLength || !(progress > 0) {
		return
	}
	cfg := w.cfg

	actual := effectiveLength(length, progress)
	segments := cfg.segmentCount(length)
	wobble := w.rng.Next(-cfg.Wobble, cfg.Wobble)
	jitterGain := 1 + float64(depth)*cfg.JitterDepthGain

	points := make([]Vec2, 1, segments+1)
	points[0] = Vec2{x, y}
	cx, cy, cur := x, y, angle
	step := actual / float64(segments)
	for i := 1; i <= segments; i++ {
		cur += wobble + w.rng.Next(-cfg.Jitter, cfg.Jitter)*jitterGain
		cx += math.Cos(cur) * step
		cy += math.Sin(cur) * step
		points = append(points, Vec2{cx, cy})
	}

	w.stats.Branches++
	w.stats.Segments += len(points) - 1
	w.drawBark(points, width, depth)

	if progress < cfg.ChildGate {
		return
	}
	childProgress := (progress - cfg.ChildGate) / (1 - cfg.ChildGate)
	end := points[len(points)-1]

	if depth <= cfg.TipDepth {
		w.tips = append(w.tips, Tip{X: end.X, Y: end.Y, Angle: cur, Depth: depth})
	}

	if depth <= 1 {
		return
	}

	counts := cfg.ChildCount
	if depth > cfg.DeepDepth {
		counts = cfg.DeepChildCount
	}
	n := int(math.Floor(counts.draw(w.rng)))
	for b := 0; b < n; b++ {
		sign := 1.0
		if b%2 != 0 {
			sign = -1
		}
		spread := cfg.Spread.draw(w.rng) * sign
		childAngle := cur + spread + w.rng.Next(-cfg.SpreadJitter, cfg.SpreadJitter)
		childLength := length * cfg.ChildLength.draw(w.rng)
		childWidth := width * cfg.ChildWidth.draw(w.rng)

		delay := float64(b) * cfg.Stagger
		childProg := 0.0
		if delay < 1 {
			childProg = math.Max(0, childProgress-delay) / (1 - delay)
		}
		w.growBranch(end.X, end.Y, childAngle, childLength, childWidth, depth-1, childProg)
	}

	if depth > cfg.SideDepth && childProgress > cfg.SideGate {
		mid := points[len(points)/2]
		sideAngle := cur + cfg.SideAngle.draw(w.rng)*w.rng.Sign()
		sideLength := length * cfg.SideLength.draw(w.rng)
		sideProg := (childProgress - cfg.SideGate) / (1 - cfg.SideGate)
		w.growBranch(mid.X, mid.Y, sideAngle, sideLength, width*cfg.SideWidth, depth-2, sideProg)
	}
}
