package sapling

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/opentype"
)

// DefaultFontData is the TrueType font used when none is configured: Go
// Italic, close in spirit to an italic serif.
var DefaultFontData = goitalic.TTF

// quantizeSize rounds a font size to half-pixel steps so resize-driven size
// changes reuse cached faces.
func quantizeSize(size float64) float64 {
	if size < 1 {
		size = 1
	}
	return math.Round(size*2) / 2
}

// --- Ebitengine faces ---

// ebitenFonts caches text/v2 faces per size for one font source.
type ebitenFonts struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

func newEbitenFonts(ttfData []byte) (*ebitenFonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("sapling: failed to parse TTF data: %w", err)
	}
	return &ebitenFonts{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

func (f *ebitenFonts) face(size float64) *text.GoTextFace {
	size = quantizeSize(size)
	if fc, ok := f.faces[size]; ok {
		return fc
	}
	fc := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = fc
	return fc
}

// --- x/image faces ---

// imageFonts caches opentype faces per size for the CPU canvas.
type imageFonts struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

func newImageFonts(ttfData []byte) (*imageFonts, error) {
	f, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("sapling: failed to parse TTF data: %w", err)
	}
	return &imageFonts{font: f, faces: make(map[float64]font.Face)}, nil
}

func (f *imageFonts) face(size float64) (font.Face, error) {
	size = quantizeSize(size)
	if fc, ok := f.faces[size]; ok {
		return fc, nil
	}
	fc, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("sapling: font face at size %v: %w", size, err)
	}
	f.faces[size] = fc
	return fc, nil
}
