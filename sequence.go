package sapling

import (
	"errors"
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Phase is one stage of the sequence. Phases only ever move forward.
type Phase int

const (
	PhaseHeart Phase = iota
	PhaseFalling
	PhaseImpact
	PhaseGrowing
	PhaseLeaves
	PhaseSliding
	PhasePoem
)

var phaseNames = [...]string{"heart", "falling", "impact", "growing", "leaves", "sliding", "poem"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Event is a notable moment in the sequence, reported through
// Sequence.OnEvent. Audio cues hang off these.
type Event int

const (
	EventHeartbeat Event = iota + 1 // a pulse starts while the heart waits
	EventImpact                     // the falling seed hits the ground
	EventBloom                      // every leaf has appeared
	EventPoemDone                   // the last rune of the poem is shown
)

func (e Event) String() string {
	switch e {
	case EventHeartbeat:
		return "heartbeat"
	case EventImpact:
		return "impact"
	case EventBloom:
		return "bloom"
	case EventPoemDone:
		return "poem-done"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// Timing holds the rates and durations of the sequence, all in seconds and
// pixels per second. Positions that scale with the window are fractions of
// its width or height.
type Timing struct {
	HeartSize   float64 `yaml:"heart_size"`
	HeartRate   float64 `yaml:"heart_rate"` // angular frequency of the pulse
	GroundInset float64 `yaml:"ground_inset"`

	Gravity        float64 `yaml:"gravity"`
	BallRadius     float64 `yaml:"ball_radius"`
	BallStretch    float64 `yaml:"ball_stretch"`     // extra radius at full speed
	BallFullSpeed  float64 `yaml:"ball_full_speed"`  // speed at which the stretch is complete
	BallGhostDelay float64 `yaml:"ball_ghost_delay"` // seconds of travel the ghost trails by

	ImpactDuration   float64 `yaml:"impact_duration"`
	ParticleDuration float64 `yaml:"particle_duration"`
	SinkDuration     float64 `yaml:"sink_duration"`
	CrackFade        float64 `yaml:"crack_fade"`

	GrowthDuration float64 `yaml:"growth_duration"`
	GrowthEase     string  `yaml:"growth_ease"`
	TreeHeight     float64 `yaml:"tree_height"` // fraction of window height

	LeafRate   float64 `yaml:"leaf_rate"`
	LeafEnd    float64 `yaml:"leaf_end"`
	LeafAppear float64 `yaml:"leaf_appear"` // scale-in speed relative to leaf progress

	SlideTarget float64 `yaml:"slide_target"` // final tree x, fraction of width
	SlideSpeed  float64 `yaml:"slide_speed"`
	SlideEase   string  `yaml:"slide_ease"`

	TypeRate    float64 `yaml:"type_rate"` // runes per second
	CursorBlink float64 `yaml:"cursor_blink"`
}

// DefaultTiming returns the stock pacing.
func DefaultTiming() Timing {
	return Timing{
		HeartSize:   70,
		HeartRate:   4,
		GroundInset: 50,

		Gravity:        2520,
		BallRadius:     18,
		BallStretch:    4,
		BallFullSpeed:  900,
		BallGhostDelay: 0.025,

		ImpactDuration:   55.0 / 60,
		ParticleDuration: 40.0 / 60,
		SinkDuration:     45.0 / 60,
		CrackFade:        20.0 / 60,

		GrowthDuration: 1 / 0.18,
		GrowthEase:     "linear",
		TreeHeight:     0.75,

		LeafRate:   0.36,
		LeafEnd:    1.4,
		LeafAppear: 4,

		SlideTarget: 0.7,
		SlideSpeed:  150,
		SlideEase:   "linear",

		TypeRate:    42,
		CursorBlink: 3,
	}
}

func (t *Timing) validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("timing.%s must be positive, got %g", name, v))
		}
	}
	positive("gravity", t.Gravity)
	positive("impact_duration", t.ImpactDuration)
	positive("growth_duration", t.GrowthDuration)
	positive("tree_height", t.TreeHeight)
	positive("leaf_rate", t.LeafRate)
	positive("leaf_end", t.LeafEnd)
	positive("slide_speed", t.SlideSpeed)
	positive("type_rate", t.TypeRate)
	if _, err := EaseByName(t.GrowthEase); err != nil {
		errs = append(errs, fmt.Errorf("timing.growth_ease: %w", err))
	}
	if _, err := EaseByName(t.SlideEase); err != nil {
		errs = append(errs, fmt.Errorf("timing.slide_ease: %w", err))
	}
	return errors.Join(errs...)
}

// SequenceOptions configures NewSequence.
type SequenceOptions struct {
	Seed       int64
	Tree       TreeConfig
	Timing     Timing
	Leaves     []Leaf
	Poem       []string
	Hint       string
	Background Color
	Width      float64
	Height     float64
}

// Sequence owns the state of the whole animation and steps it through its
// phases. Advance it with Update and render it with Draw; the only input it
// accepts is Advance, which starts the fall from the heart phase.
type Sequence struct {
	// OnEvent, if set, is called synchronously for every Event.
	OnEvent func(Event)

	timing     Timing
	tree       *TreeGenerator
	seed       int64
	leaves     []Leaf
	poem       *Typewriter
	hint       string
	background Color
	growthEase ease.TweenFunc
	slideEase  ease.TweenFunc

	width, height float64
	camera        *Camera

	phase     Phase
	time      float64 // since start
	phaseTime float64 // since the current phase began

	beatUp bool // heart pulse currently rising

	ballY, ballVel float64

	growth      float64
	growthTween *TweenGroup

	leafProgress float64

	tips     []Tip
	poemDone bool
}

// NewSequence creates a sequence in PhaseHeart.
func NewSequence(opts SequenceOptions) *Sequence {
	growthEase, err := EaseByName(opts.Timing.GrowthEase)
	if err != nil {
		growthEase = ease.Linear
	}
	slideEase, err := EaseByName(opts.Timing.SlideEase)
	if err != nil {
		slideEase = ease.Linear
	}
	w, h := opts.Width, opts.Height
	return &Sequence{
		timing:     opts.Timing,
		tree:       NewTreeGenerator(opts.Tree),
		seed:       opts.Seed,
		leaves:     opts.Leaves,
		poem:       NewTypewriter(opts.Poem, opts.Timing.TypeRate),
		hint:       opts.Hint,
		background: opts.Background,
		growthEase: growthEase,
		slideEase:  slideEase,
		width:      w,
		height:     h,
		camera:     NewCamera(Rect{Width: w, Height: h}),
	}
}

// Phase returns the current phase.
func (s *Sequence) Phase() Phase { return s.phase }

// Seed returns the tree seed.
func (s *Sequence) Seed() int64 { return s.seed }

// Time returns the seconds elapsed since the sequence started.
func (s *Sequence) Time() float64 { return s.time }

// Growth returns the tree's growth progress in [0, 1].
func (s *Sequence) Growth() float64 { return s.growth }

// LeafProgress returns the leaf reveal progress in [0, Timing.LeafEnd].
func (s *Sequence) LeafProgress() float64 { return s.leafProgress }

// Tips returns the canopy tips recorded by the last drawn tree.
func (s *Sequence) Tips() []Tip { return s.tips }

// Camera returns the view used for the world layer.
func (s *Sequence) Camera() *Camera { return s.camera }

// Typewriter returns the poem reveal state.
func (s *Sequence) Typewriter() *Typewriter { return s.poem }

// TreeStats returns the counters of the last tree render.
func (s *Sequence) TreeStats() TreeStats { return s.tree.Stats() }

// Resize updates the layout size. Everything is laid out relative to it,
// so a resize mid-phase only rescales the picture.
func (s *Sequence) Resize(w, h float64) {
	if w <= 0 || h <= 0 || (w == s.width && h == s.height) {
		return
	}
	if s.height > 0 && s.phase == PhaseFalling {
		s.ballY *= h / s.height
	}
	s.width, s.height = w, h
	s.camera.Resize(Rect{Width: w, Height: h})
}

// Advance handles the click. It starts the fall and returns true only in
// PhaseHeart; every later call is ignored.
func (s *Sequence) Advance() bool {
	if s.phase != PhaseHeart {
		return false
	}
	s.enter(PhaseFalling)
	s.ballY = s.height / 2
	s.ballVel = 0
	return true
}

// Update steps the sequence by dt seconds.
func (s *Sequence) Update(dt float64) {
	if !(dt > 0) {
		return
	}
	s.time += dt
	s.phaseTime += dt
	tm := &s.timing

	switch s.phase {
	case PhaseHeart:
		up := math.Sin(s.time*tm.HeartRate) > 0
		if up && !s.beatUp {
			s.emit(EventHeartbeat)
		}
		s.beatUp = up

	case PhaseFalling:
		s.ballVel += tm.Gravity * dt
		s.ballY += s.ballVel * dt
		if ground := s.groundY(); s.ballY >= ground {
			s.ballY = ground
			s.enter(PhaseImpact)
			s.emit(EventImpact)
		}

	case PhaseImpact:
		if s.phaseTime > tm.ImpactDuration {
			s.enter(PhaseGrowing)
			s.growth = 0
			s.growthTween = TweenValue(&s.growth, 1, float32(tm.GrowthDuration), s.growthEase)
		}

	case PhaseGrowing:
		s.growthTween.Update(float32(dt))
		if s.growthTween.Done || s.growth >= 1 {
			s.growth = 1
			s.enter(PhaseLeaves)
			s.leafProgress = 0
		}

	case PhaseLeaves:
		s.leafProgress += tm.LeafRate * dt
		if s.leafProgress >= tm.LeafEnd {
			s.leafProgress = tm.LeafEnd
			s.enter(PhaseSliding)
			s.emit(EventBloom)
			s.startSlide()
		}

	case PhaseSliding:
		s.camera.Update(float32(dt))
		if !s.camera.Scrolling() {
			s.enter(PhasePoem)
		}

	case PhasePoem:
		s.poem.Update(dt)
		if s.poem.Done() && !s.poemDone {
			s.poemDone = true
			s.emit(EventPoemDone)
		}
	}
}

// startSlide pans the camera left so the tree ends at SlideTarget of the
// width.
func (s *Sequence) startSlide() {
	shift := (s.timing.SlideTarget - 0.5) * s.width
	duration := math.Abs(shift) / s.timing.SlideSpeed
	s.camera.ScrollTo(s.camera.X-shift, s.camera.Y, float32(duration), s.slideEase)
}

func (s *Sequence) enter(p Phase) {
	s.phase = p
	s.phaseTime = 0
}

func (s *Sequence) emit(e Event) {
	if s.OnEvent != nil {
		s.OnEvent(e)
	}
}

func (s *Sequence) groundY() float64 {
	return s.height - s.timing.GroundInset
}

func (s *Sequence) treeHeight() float64 {
	return s.height * s.timing.TreeHeight
}
