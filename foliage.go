package sapling

import (
	"math"
	"math/rand/v2"
	"sort"
)

// Leaf is one heart-shaped leaf. BX and BY are a position in the abstract
// leaf square (BX in [-1.1, 1.1), BY in [0, 1)) that PlaceLeaf resolves to
// world space. Layer in [0, 1) both orders drawing and selects the tip the
// leaf hangs from.
type Leaf struct {
	BX, BY float64
	Color  Color
	Size   float64
	Angle  float64
	Layer  float64
}

// DefaultLeafPalette is the warm red-pink-orange-violet range used for
// leaves.
var DefaultLeafPalette = []Color{
	RGB(0xe74c3c), RGB(0xc0392b), RGB(0xe91e63), RGB(0xd81b60), RGB(0xf44336),
	RGB(0xff5722), RGB(0xff7043), RGB(0xff8a65), RGB(0xef5350), RGB(0xec407a),
	RGB(0xf06292), RGB(0xff80ab), RGB(0xff5252), RGB(0xff1744), RGB(0xd50000),
	RGB(0xad1457), RGB(0x880e4f), RGB(0xff6f00), RGB(0xff9800), RGB(0xffab40),
	RGB(0xce93d8), RGB(0xba68c8), RGB(0xab47bc),
}

// DefaultLeafCount is the number of leaves grown in the stock sequence.
const DefaultLeafCount = 160

const (
	leafSpreadX   = 2.2
	leafMinSize   = 6
	leafSizeRange = 7
	leafTilt      = 0.6
	tipSpread     = 0.12 // fraction of max height
	tipSpreadY    = 0.8
	crownRise     = 0.55 // crown center above the base, fraction of max height
	crownRadiusX  = 0.33
	crownRadiusY  = 0.125
	crownInset    = 0.95
)

// GenerateLeaves scatters n leaves using r, which is deliberately not the
// tree's seeded stream: the foliage varies between runs even for a fixed
// tree. The result is sorted by Layer so lower layers draw first. An empty
// palette falls back to DefaultLeafPalette.
func GenerateLeaves(r *rand.Rand, n int, palette []Color) []Leaf {
	if len(palette) == 0 {
		palette = DefaultLeafPalette
	}
	if n < 0 {
		n = 0
	}
	leaves := make([]Leaf, n)
	for i := range leaves {
		leaves[i] = Leaf{
			BX:    (r.Float64() - 0.5) * leafSpreadX,
			BY:    r.Float64(),
			Color: palette[int(r.Float64()*float64(len(palette)))%len(palette)],
			Size:  r.Float64()*leafSizeRange + leafMinSize,
			Angle: (r.Float64() - 0.5) * leafTilt,
			Layer: r.Float64(),
		}
	}
	sort.SliceStable(leaves, func(i, j int) bool {
		return leaves[i].Layer < leaves[j].Layer
	})
	return leaves
}

// CrownBounds is the ellipse that leaves fill when the tree has no tips to
// hang them from.
func CrownBounds(baseX, baseY, maxHeight float64) Ellipse {
	return Ellipse{
		CX: baseX,
		CY: baseY - maxHeight*crownRise,
		RX: maxHeight * crownRadiusX,
		RY: maxHeight * crownRadiusY,
	}
}

// PlaceLeaf resolves a leaf to world space. With tips, the leaf clusters
// around tips[floor(Layer*len) mod len]. Without tips its square coordinates
// are mapped onto a disc and stretched over CrownBounds, so it always lands
// strictly inside the crown ellipse. tips is never modified.
func PlaceLeaf(leaf Leaf, tips []Tip, baseX, baseY, maxHeight float64) Vec2 {
	if len(tips) == 0 {
		crown := CrownBounds(baseX, baseY, maxHeight)
		u, v := squareToDisc(leaf.BX/(leafSpreadX/2), 2*(leaf.BY-0.5))
		return Vec2{
			X: crown.CX + u*crown.RX*crownInset,
			Y: crown.CY + v*crown.RY*crownInset,
		}
	}

	n := len(tips)
	idx := int(math.Floor(leaf.Layer*float64(n))) % n
	if idx < 0 {
		idx += n
	}
	tip := tips[idx]
	spread := maxHeight * tipSpread
	return Vec2{
		X: tip.X + leaf.BX*spread,
		Y: tip.Y + (leaf.BY-0.5)*spread*tipSpreadY,
	}
}

// squareToDisc maps [-1, 1]² onto the closed unit disc, keeping points on
// the square's edge on the circle.
func squareToDisc(u, v float64) (float64, float64) {
	u = math.Max(-1, math.Min(1, u))
	v = math.Max(-1, math.Min(1, v))
	return u * math.Sqrt(1-v*v/2), v * math.Sqrt(1-u*u/2)
}
