package raster

import "math"

// DrawWireTriangle outlines the triangle as supplied: p0→p1, p1→p2, p2→p0.
// Vertices are not sorted.
func DrawWireTriangle(fb *FrameBuffer, p0, p1, p2 Point, c Color) {
	DrawLine(fb, p0, p1, c)
	DrawLine(fb, p1, p2, c)
	DrawLine(fb, p2, p0, c)
}

// DrawFilledTriangle fills the triangle with a flat color using the
// short/long edge split. Scanlines run over [top, bottom-1) and each
// covers [trunc(xLeft), floor(xRight)).
//
// Degenerate input (collinear, zero height, chains shorter than the
// scanline range) draws nothing past the first bad lookup. Only the
// scanlines inside the buffer are interpolated.
func DrawFilledTriangle(fb *FrameBuffer, p0, p1, p2 Point, c Color) {
	p, _ := sortByY([3]Point{p0, p1, p2}, [3]float64{})
	xs := [3]float64{float64(p[0].X), float64(p[1].X), float64(p[2].X)}

	longLeft, ok := longIsLeft(p, xs)
	if !ok {
		return
	}
	lo, hi := visibleRows(fb, p)
	xShort, xLong := splitEdges(p, xs, lo, hi)
	xLeft, xRight := xShort, xLong
	if longLeft {
		xLeft, xRight = xLong, xShort
	}

	for i := lo; i < hi; i++ {
		xl, okL := xLeft.at(i)
		xr, okR := xRight.at(i)
		if !okL || !okR {
			return
		}
		y := p[0].Y + i
		start, end := spanBounds(fb, xl, xr)
		for x := start; x < end; x++ {
			fb.PutPixel(x, y, c)
		}
	}
}

// DrawShadedTriangle fills the triangle like DrawFilledTriangle, carrying a
// per-vertex intensity h along the same edges and across each scanline.
// Each pixel is written as (c.R, c.G, c.B, round(c.A*h)) with no blending
// against the destination.
func DrawShadedTriangle(fb *FrameBuffer, p0, p1, p2 Point, c Color, h [3]float64) {
	p, hs := sortByY([3]Point{p0, p1, p2}, h)
	xs := [3]float64{float64(p[0].X), float64(p[1].X), float64(p[2].X)}

	longLeft, ok := longIsLeft(p, xs)
	if !ok {
		return
	}
	lo, hi := visibleRows(fb, p)
	xShort, xLong := splitEdges(p, xs, lo, hi)
	hShort, hLong := splitEdges(p, hs, lo, hi)
	xLeft, xRight := xShort, xLong
	hLeft, hRight := hShort, hLong
	if longLeft {
		xLeft, xRight = xLong, xShort
		hLeft, hRight = hLong, hShort
	}

	alpha := float64(c.A)
	for i := lo; i < hi; i++ {
		xl, okXL := xLeft.at(i)
		xr, okXR := xRight.at(i)
		hl, okHL := hLeft.at(i)
		hr, okHR := hRight.at(i)
		if !okXL || !okXR || !okHL || !okHR {
			return
		}
		y := p[0].Y + i

		x0 := int(xl)
		x1 := int(math.Floor(xr))
		start, end := spanBounds(fb, xl, xr)
		row := edge{off: start, v: interpolateRange(x0, hl, x1, hr, start-x0, end-x0)}
		for x := start; x < end; x++ {
			hx, ok := row.at(x)
			if !ok {
				break
			}
			fb.PutPixel(x, y, Color{c.R, c.G, c.B, clamp255(alpha * hx)})
		}
	}
}

// edge is a window of an interpolated chain of values along a triangle
// boundary. v[0] is the sample at index off.
type edge struct {
	off int
	v   []float64
}

func (e edge) at(i int) (float64, bool) {
	j := i - e.off
	if j < 0 || j >= len(e.v) {
		return 0, false
	}
	return e.v[j], true
}

// sortByY orders the vertices by ascending y with three conditional swaps,
// carrying the per-vertex attribute along. Equal y keeps input order.
func sortByY(p [3]Point, d [3]float64) ([3]Point, [3]float64) {
	if p[1].Y < p[0].Y {
		p[0], p[1] = p[1], p[0]
		d[0], d[1] = d[1], d[0]
	}
	if p[2].Y < p[0].Y {
		p[0], p[2] = p[2], p[0]
		d[0], d[2] = d[2], d[0]
	}
	if p[2].Y < p[1].Y {
		p[1], p[2] = p[2], p[1]
		d[1], d[2] = d[2], d[1]
	}
	return p, d
}

// topLen is the number of samples the top edge contributes to the short
// chain: its interpolation minus the last sample, so the middle vertex is
// not counted twice.
func topLen(p [3]Point) int {
	if n := p[1].Y - p[0].Y; n > 0 {
		return n - 1
	}
	return 0
}

// shortLen is the full length of the short chain: the trimmed top edge
// followed by the bottom edge.
func shortLen(p [3]Point) int {
	return topLen(p) + max(p[2].Y-p[1].Y, 1)
}

// splitEdges interpolates attribute d over scanline offsets [lo, hi) of
// the y-sorted triangle p, with 0 <= lo. short runs top→middle→bottom,
// long runs top→bottom.
func splitEdges(p [3]Point, d [3]float64, lo, hi int) (short, long edge) {
	nTop := topLen(p)
	top := interpolateRange(p[0].Y, d[0], p[1].Y, d[1], lo, min(hi, nTop))
	bottom := interpolateRange(p[1].Y, d[1], p[2].Y, d[2], lo-nTop, hi-nTop)
	short = edge{off: lo, v: append(top, bottom...)}
	long = edge{off: lo, v: interpolateRange(p[0].Y, d[0], p[2].Y, d[2], lo, hi)}
	return short, long
}

// longIsLeft decides once, at the middle of the short chain, whether the
// long edge bounds the triangle on the left. The decision holds for every
// scanline.
func longIsLeft(p [3]Point, xs [3]float64) (left, ok bool) {
	m := shortLen(p) / 2
	short, long := splitEdges(p, xs, m, m+1)
	lm, ok1 := long.at(m)
	sm, ok2 := short.at(m)
	if !ok1 || !ok2 {
		return false, false
	}
	return lm < sm, true
}

// visibleRows returns the scanline offsets [lo, hi) from the top vertex
// that fall inside the buffer, out of the triangle's [top, bottom-1).
func visibleRows(fb *FrameBuffer, p [3]Point) (lo, hi int) {
	lo = max(-p[0].Y, 0)
	hi = min(p[2].Y-1-p[0].Y, fb.Height-p[0].Y)
	return lo, hi
}

// spanBounds converts a scanline's edge values to the half-open pixel
// range [trunc(xl), floor(xr)), clipped to the buffer width.
func spanBounds(fb *FrameBuffer, xl, xr float64) (start, end int) {
	start = int(xl)
	end = int(math.Floor(xr))
	if start < 0 {
		start = 0
	}
	if end > fb.Width {
		end = fb.Width
	}
	return start, end
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
