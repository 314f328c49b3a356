package frame

import (
	"softraster/internal/glyph"
	"softraster/internal/raster"
	"softraster/internal/scene"
)

// Backdrop coordinates assume a 512x512 buffer; smaller buffers clip.
func drawBackdrop(fb *raster.FrameBuffer, text glyph.Provider) error {
	raster.DrawFilledTriangle(fb, raster.Pt(100, 125), raster.Pt(200, 100), raster.Pt(150, 400), raster.Color{0xff, 0x60, 0x4f, 0xff})
	raster.DrawFilledTriangle(fb, raster.Pt(125, 50), raster.Pt(20, 70), raster.Pt(120, 440), raster.Color{0x00, 0x80, 0x8f, 0xff})
	raster.DrawFilledTriangle(fb, raster.Pt(200, 225), raster.Pt(300, 200), raster.Pt(250, 300), raster.Color{0x00, 0x70, 0x00, 0xff})
	raster.DrawWireTriangle(fb, raster.Pt(200, 225), raster.Pt(300, 200), raster.Pt(250, 300), raster.Color{0xff, 0xff, 0xff, 0xff})

	raster.DrawWireTriangle(fb, raster.Pt(400, 400), raster.Pt(450, 80), raster.Pt(500, 420), raster.Color{0xa0, 0xb0, 0x00, 0xff})
	raster.DrawLine(fb, raster.Pt(410, 450), raster.Pt(490, 70), raster.Color{0x40, 0x17, 0xc0, 0xff})

	return glyph.DrawText(fb, raster.Pt(200, 270), "soft\nraster", raster.Color{0xff, 0x00, 0xff, 0xff}, text)
}

// DefaultScene returns the animated shapes drawn over the backdrop: a
// shaded triangle that drifts right and wraps at width.
func DefaultScene(width int) *scene.Scene {
	sc := scene.New(
		scene.NewShadedTriangle(raster.Pt(20, 300), raster.Pt(120, 330), raster.Pt(60, 480),
			raster.Color{0xff, 0xd0, 0x40, 0xff}, [3]float64{1, 0.5, 0.1}),
		scene.NewShadedTriangle(raster.Pt(330, 20), raster.Pt(500, 60), raster.Pt(380, 180),
			raster.Color{0x40, 0xa0, 0xff, 0xff}, [3]float64{0.2, 1, 0.6}),
	)
	sc.WrapWidth = width
	return sc
}
