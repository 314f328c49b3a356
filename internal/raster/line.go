package raster

// DrawLine rasterizes the segment p0-p1 by stepping along its dominant
// axis (y wins ties). Endpoints are swapped so the stepping axis
// increases; the range is half-open, so the far endpoint is not painted.
//
// The dependent coordinate is truncated toward zero rather than rounded,
// so the painted pixels hug the side of the segment nearer zero and the
// result is not mirror-symmetric about it.
//
// Steps outside the buffer along the stepping axis are skipped without
// being interpolated, so arbitrarily long segments cost only their
// visible part.
func DrawLine(fb *FrameBuffer, p0, p1 Point, c Color) {
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y

	if abs(x1-x0) > abs(y1-y0) {
		if x0 > x1 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}
		lo, hi := max(x0, 0), min(x1, fb.Width)
		if lo >= hi {
			return
		}
		ys := interpolateRange(x0, float64(y0), x1, float64(y1), lo-x0, hi-x0)
		for i, y := range ys {
			fb.PutPixel(lo+i, int(y), c)
		}
		return
	}

	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	lo, hi := max(y0, 0), min(y1, fb.Height)
	if lo >= hi {
		return
	}
	xs := interpolateRange(y0, float64(x0), y1, float64(x1), lo-y0, hi-y0)
	for i, x := range xs {
		fb.PutPixel(int(x), lo+i, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
