package sapling

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// --- White pixel singleton (no sync.Once — sapling is single-threaded) ---

var whiteImage *ebiten.Image

// ensureWhiteSubImage returns the center pixel of a lazily-initialized 3x3
// white image. Sampling the center avoids bleeding at the edges.
func ensureWhiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// EbitenCanvas draws onto an *ebiten.Image. Paths are tessellated with the
// vector package and submitted through DrawTriangles; gradients are
// evaluated per vertex.
//
// Call Begin at the top of every Draw with the frame's target image.
type EbitenCanvas struct {
	canvasState
	dst   *ebiten.Image
	fonts *ebitenFonts

	verts []ebiten.Vertex
	inds  []uint16
}

// NewEbitenCanvas creates a canvas whose text uses ttfData, or
// DefaultFontData when ttfData is nil.
func NewEbitenCanvas(ttfData []byte) (*EbitenCanvas, error) {
	if ttfData == nil {
		ttfData = DefaultFontData
	}
	fonts, err := newEbitenFonts(ttfData)
	if err != nil {
		return nil, err
	}
	return &EbitenCanvas{canvasState: newCanvasState(), fonts: fonts}, nil
}

// Begin targets dst and resets the transform stack.
func (c *EbitenCanvas) Begin(dst *ebiten.Image) {
	c.dst = dst
	c.reset()
}

// Size returns the target image's dimensions.
func (c *EbitenCanvas) Size() (float64, float64) {
	if c.dst == nil {
		return 0, 0
	}
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear fills the target with col.
func (c *EbitenCanvas) Clear(col Color) {
	c.dst.Fill(col.toRGBA())
}

// Fill fills every subpath of p with paint using the non-zero rule.
func (c *EbitenCanvas) Fill(p *Path, paint Paint) {
	var polys [][]Vec2
	for _, sp := range p.contours(c.tolerance()) {
		if len(sp.points) >= 3 {
			polys = append(polys, sp.points)
		}
	}
	c.fillPolygons(polys, paint)
}

// Stroke fills the stroke outline of every subpath of p with paint.
func (c *EbitenCanvas) Stroke(p *Path, paint Paint, style StrokeStyle) {
	var polys [][]Vec2
	for _, sp := range p.strokeContours(style, c.tolerance()) {
		polys = append(polys, sp.points)
	}
	c.fillPolygons(polys, paint)
}

func (c *EbitenCanvas) fillPolygons(polys [][]Vec2, paint Paint) {
	if c.dst == nil || len(polys) == 0 || c.alpha <= 0 {
		return
	}
	var path vector.Path
	for _, poly := range polys {
		for j, pt := range poly {
			x, y := transformPoint(c.transform, pt.X, pt.Y)
			if j == 0 {
				path.MoveTo(float32(x), float32(y))
			} else {
				path.LineTo(float32(x), float32(y))
			}
		}
		path.Close()
	}

	c.verts, c.inds = path.AppendVerticesAndIndicesForFilling(c.verts[:0], c.inds[:0])
	c.shadeVertices(c.verts, paint)

	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	}
	c.dst.DrawTriangles(c.verts, c.inds, ensureWhiteSubImage(), op)
}

// shadeVertices colors tessellated screen-space vertices by evaluating paint
// at their local-space positions.
func (c *EbitenCanvas) shadeVertices(verts []ebiten.Vertex, paint Paint) {
	inv := invertAffine(c.transform)
	solid := paint.Gradient == nil
	col := c.shaded(paint, 0, 0)
	for i := range verts {
		v := &verts[i]
		if !solid {
			lx, ly := transformPoint(inv, float64(v.DstX), float64(v.DstY))
			col = c.shaded(paint, lx, ly)
		}
		v.SrcX = 1
		v.SrcY = 1
		v.ColorR = float32(col.R)
		v.ColorG = float32(col.G)
		v.ColorB = float32(col.B)
		v.ColorA = float32(col.A)
	}
}

// FillText draws s with its top-left corner at (x, y).
func (c *EbitenCanvas) FillText(s string, x, y, size float64, col Color) {
	if c.dst == nil || s == "" || c.alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(geoM(c.transform))
	op.ColorScale.Scale(float32(col.R), float32(col.G), float32(col.B), 1)
	op.ColorScale.ScaleAlpha(float32(col.A * c.alpha))
	text.Draw(c.dst, s, c.fonts.face(size), op)
}

// MeasureText returns the advance width of s at size.
func (c *EbitenCanvas) MeasureText(s string, size float64) float64 {
	return text.Advance(s, c.fonts.face(size))
}

// geoM converts a [6]float64 affine matrix into an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
