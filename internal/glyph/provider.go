// Package glyph turns strings into on/off cell grids and plots them into a
// frame buffer.
package glyph

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrUnsupportedGlyph is returned when the face has no glyph of its own for
// a rune. Faces that substitute a replacement glyph are treated as failing.
var ErrUnsupportedGlyph = errors.New("glyph: unsupported character")

// Provider renders one line of text as a grid of cells, row-major, true
// where the cell is lit.
type Provider interface {
	Bitmap(line string) ([][]bool, error)
}

// FontProvider rasterizes text with an x/image font face and thresholds
// the coverage mask into cells.
type FontProvider struct {
	Face      font.Face
	Threshold uint8 // minimum coverage for a lit cell; 0 means 0x80
}

// NewFontProvider returns a provider over the built-in 7x13 bitmap face.
func NewFontProvider() *FontProvider {
	return &FontProvider{Face: basicfont.Face7x13}
}

// Bitmap renders line. Every row of the result has the same width: the
// summed advance of the runes. An empty line yields a grid of empty rows.
func (p *FontProvider) Bitmap(line string) ([][]bool, error) {
	face := p.Face
	if face == nil {
		face = basicfont.Face7x13
	}

	var width fixed.Int26_6
	for i, r := range line {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q at byte %d", ErrUnsupportedGlyph, r, i)
		}
		width += adv
	}

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	w := width.Ceil()

	mask := image.NewAlpha(image.Rect(0, 0, w, height))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(line)

	threshold := p.Threshold
	if threshold == 0 {
		threshold = 0x80
	}
	rows := make([][]bool, height)
	for y := range rows {
		row := make([]bool, w)
		for x := range row {
			row[x] = mask.AlphaAt(x, y).A >= threshold
		}
		rows[y] = row
	}
	return rows, nil
}
