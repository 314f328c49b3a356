package glyph

import (
	"strings"

	"softraster/internal/raster"
)

// DrawText plots text with its top-left cell at p, one pixel per lit cell.
// Lines are separated by '\n'; each line advances one pixel row per bitmap
// row, plus one blank row before the next line.
//
// All lines are rendered before anything is drawn, so a provider error
// leaves the buffer untouched.
func DrawText(fb *raster.FrameBuffer, p raster.Point, text string, c raster.Color, prov Provider) error {
	lines := strings.Split(text, "\n")
	bitmaps := make([][][]bool, len(lines))
	for i, line := range lines {
		bm, err := prov.Bitmap(line)
		if err != nil {
			return err
		}
		bitmaps[i] = bm
	}

	yd := 0
	for _, bm := range bitmaps {
		for _, row := range bm {
			for xd, on := range row {
				if on {
					fb.PutPixel(p.X+xd, p.Y+yd, c)
				}
			}
			yd++
		}
		yd++
	}
	return nil
}
