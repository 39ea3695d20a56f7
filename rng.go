package sapling

const (
	lehmerMultiplier = 16807
	lehmerModulus    = 2147483647 // 2^31 - 1
)

// SeededRand is a Lehmer (Park–Miller) linear congruential stream. The same
// seed always yields the same sequence, which keeps a tree's shape stable
// from frame to frame while it grows.
//
// SeededRand is not safe for concurrent use.
type SeededRand struct {
	state int64
}

// NewSeededRand returns a stream keyed by seed. The seed is folded into
// [1, 2^31-2]; a zero state would otherwise repeat forever.
func NewSeededRand(seed int64) *SeededRand {
	s := seed % lehmerModulus
	if s < 0 {
		s += lehmerModulus
	}
	if s == 0 {
		s = 1
	}
	return &SeededRand{state: s}
}

// Next advances the stream and returns a value in [min, max).
func (r *SeededRand) Next(min, max float64) float64 {
	r.state = r.state * lehmerMultiplier % lehmerModulus
	return min + float64(r.state)/lehmerModulus*(max-min)
}

// Sign returns +1 or -1 with equal probability.
func (r *SeededRand) Sign() float64 {
	if r.Next(0, 1) > 0.5 {
		return 1
	}
	return -1
}
