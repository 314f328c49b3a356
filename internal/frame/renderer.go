// Package frame draws one complete frame: clear, static backdrop, scene and
// the frame-time readout.
package frame

import (
	"fmt"
	"strconv"
	"time"

	"softraster/internal/glyph"
	"softraster/internal/raster"
	"softraster/internal/scene"
)

// Renderer issues the fixed per-frame draw sequence.
type Renderer struct {
	// Text renders the backdrop label and readout. Nil selects the
	// built-in bitmap font.
	Text glyph.Provider

	// Background is the clear color; black unless set.
	Background raster.Color
	// Wireframe additionally outlines every scene shape.
	Wireframe bool
	// HideBackdrop skips the static demo shapes.
	HideBackdrop bool
	// HideReadout skips the frame-time text.
	HideReadout bool
}

// ReadoutPos is where the frame-time text is drawn.
var ReadoutPos = raster.Pt(50, 50)

var readoutColor = raster.Color{0xff, 0xff, 0xff, 0xff}

// NewRenderer returns a renderer using the built-in bitmap font.
func NewRenderer() *Renderer {
	return &Renderer{Text: glyph.NewFontProvider()}
}

// Draw renders one frame into fb. sc may be nil. A text provider failure
// is returned after the geometry has been drawn.
func (r *Renderer) Draw(fb *raster.FrameBuffer, sc *scene.Scene, ctx scene.Context) error {
	fb.Clear(r.Background)
	text := r.Text
	if text == nil {
		text = glyph.NewFontProvider()
	}

	if !r.HideBackdrop {
		if err := drawBackdrop(fb, text); err != nil {
			return fmt.Errorf("frame: backdrop: %w", err)
		}
	}

	if sc != nil {
		sc.Render(fb)
		if r.Wireframe {
			sc.RenderWire(fb)
		}
	}

	if r.HideReadout {
		return nil
	}
	if err := glyph.DrawText(fb, ReadoutPos, Readout(ctx.Delta), readoutColor, text); err != nil {
		return fmt.Errorf("frame: readout: %w", err)
	}
	return nil
}

// Readout formats a frame duration in hundred-microsecond units.
func Readout(d time.Duration) string {
	return strconv.FormatInt(int64(d/(100*time.Microsecond)), 10)
}
