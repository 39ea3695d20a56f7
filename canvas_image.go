package sapling

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ImageCanvas is a CPU Canvas backed by an *image.RGBA. It needs no graphics
// context, which makes it suitable for headless rendering and tests.
type ImageCanvas struct {
	canvasState
	img    *image.RGBA
	raster *vector.Rasterizer
	fonts  *imageFonts
}

// NewImageCanvas creates a transparent w×h canvas using DefaultFontData.
func NewImageCanvas(w, h int) (*ImageCanvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("sapling: invalid canvas size %dx%d", w, h)
	}
	fonts, err := newImageFonts(DefaultFontData)
	if err != nil {
		return nil, err
	}
	return &ImageCanvas{
		canvasState: newCanvasState(),
		img:         image.NewRGBA(image.Rect(0, 0, w, h)),
		raster:      vector.NewRasterizer(1, 1),
		fonts:       fonts,
	}, nil
}

// Image returns the backing image. It is premultiplied RGBA.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

// Size returns the image dimensions.
func (c *ImageCanvas) Size() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear fills the whole image with col and resets the transform stack.
func (c *ImageCanvas) Clear(col Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.toRGBA()), image.Point{}, draw.Src)
	c.reset()
}

// Fill fills every subpath of p with paint using the non-zero rule.
func (c *ImageCanvas) Fill(p *Path, paint Paint) {
	var polys [][]Vec2
	for _, sp := range p.contours(c.tolerance()) {
		if len(sp.points) >= 3 {
			polys = append(polys, sp.points)
		}
	}
	c.fillPolygons(polys, paint)
}

// Stroke fills the stroke outline of every subpath of p with paint.
func (c *ImageCanvas) Stroke(p *Path, paint Paint, style StrokeStyle) {
	var polys [][]Vec2
	for _, sp := range p.strokeContours(style, c.tolerance()) {
		polys = append(polys, sp.points)
	}
	c.fillPolygons(polys, paint)
}

// fillPolygons rasterizes local-space polygons through the current transform.
// The rasterizer is sized to the polygons' clipped bounding box; its origin
// maps to the box's top-left corner in the destination.
func (c *ImageCanvas) fillPolygons(polys [][]Vec2, paint Paint) {
	if len(polys) == 0 || c.alpha <= 0 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	screen := make([][]Vec2, len(polys))
	for i, poly := range polys {
		sp := make([]Vec2, len(poly))
		for j, pt := range poly {
			x, y := transformPoint(c.transform, pt.X, pt.Y)
			sp[j] = Vec2{x, y}
			minX = math.Min(minX, x)
			minY = math.Min(minY, y)
			maxX = math.Max(maxX, x)
			maxY = math.Max(maxY, y)
		}
		screen[i] = sp
	}
	if math.IsNaN(minX) || math.IsNaN(minY) || math.IsInf(minX, 0) || math.IsInf(maxX, 0) {
		return
	}
	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	).Intersect(c.img.Bounds())
	if box.Empty() {
		return
	}

	c.raster.Reset(box.Dx(), box.Dy())
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	for _, poly := range screen {
		for j, pt := range poly {
			x := float32(pt.X - ox)
			y := float32(pt.Y - oy)
			if j == 0 {
				c.raster.MoveTo(x, y)
			} else {
				c.raster.LineTo(x, y)
			}
		}
		c.raster.ClosePath()
	}

	var src image.Image
	if paint.Gradient == nil {
		src = image.NewUniform(c.shaded(paint, 0, 0).toRGBA())
	} else {
		src = &paintImage{paint: paint, inverse: invertAffine(c.transform), alpha: c.alpha}
	}
	c.raster.Draw(c.img, box, src, box.Min)
}

// FillText draws s with its top-left corner at (x, y).
func (c *ImageCanvas) FillText(s string, x, y, size float64, col Color) {
	if s == "" || c.alpha <= 0 {
		return
	}
	face, err := c.fonts.face(size * affineScale(c.transform))
	if err != nil {
		return
	}
	sx, sy := transformPoint(c.transform, x, y)
	col.A *= c.alpha
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col.toRGBA()),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(sx * 64),
			Y: fixed.Int26_6(sy*64) + face.Metrics().Ascent,
		},
	}
	d.DrawString(s)
}

// MeasureText returns the advance width of s at size, in local units.
func (c *ImageCanvas) MeasureText(s string, size float64) float64 {
	face, err := c.fonts.face(size)
	if err != nil {
		return 0
	}
	return float64(font.MeasureString(face, s)) / 64
}

// paintImage adapts a Paint to image.Image by mapping destination pixel
// centers back into the paint's local space.
type paintImage struct {
	paint   Paint
	inverse [6]float64
	alpha   float64
}

func (p *paintImage) ColorModel() color.Model { return color.RGBAModel }

func (p *paintImage) Bounds() image.Rectangle {
	return image.Rect(-1<<20, -1<<20, 1<<20, 1<<20)
}

func (p *paintImage) At(x, y int) color.Color {
	lx, ly := transformPoint(p.inverse, float64(x)+0.5, float64(y)+0.5)
	c := p.paint.At(lx, ly)
	c.A *= p.alpha
	return c.toRGBA()
}
