package scene

import "softraster/internal/raster"

// Shape is a drawable owned by a Scene. The set of shapes is closed; the
// only implementation is *Triangle.
type Shape interface {
	RenderWire(fb *raster.FrameBuffer)
	RenderFilled(fb *raster.FrameBuffer)
	Translate(d raster.Point)
	// Bounds returns the inclusive min and max vertex coordinates.
	Bounds() (min, max raster.Point)

	shape()
}

// Triangle is a 2D triangle with a flat color and per-vertex intensity.
type Triangle struct {
	P         [3]raster.Point
	Color     raster.Color
	Intensity [3]float64
}

// NewTriangle returns a triangle with full intensity at every vertex.
func NewTriangle(p0, p1, p2 raster.Point, c raster.Color) *Triangle {
	return &Triangle{
		P:         [3]raster.Point{p0, p1, p2},
		Color:     c,
		Intensity: [3]float64{1, 1, 1},
	}
}

// NewShadedTriangle returns a triangle with intensities h.
func NewShadedTriangle(p0, p1, p2 raster.Point, c raster.Color, h [3]float64) *Triangle {
	return &Triangle{
		P:         [3]raster.Point{p0, p1, p2},
		Color:     c,
		Intensity: h,
	}
}

// RenderWire draws the outline p0→p1→p2.
func (t *Triangle) RenderWire(fb *raster.FrameBuffer) {
	raster.DrawWireTriangle(fb, t.P[0], t.P[1], t.P[2], t.Color)
}

// RenderFilled draws the shaded fill. With all intensities at 1 this is
// identical to a flat fill.
func (t *Triangle) RenderFilled(fb *raster.FrameBuffer) {
	raster.DrawShadedTriangle(fb, t.P[0], t.P[1], t.P[2], t.Color, t.Intensity)
}

// Translate moves every vertex by d.
func (t *Triangle) Translate(d raster.Point) {
	for i := range t.P {
		t.P[i] = t.P[i].Add(d)
	}
}

// Bounds returns the inclusive min and max vertex coordinates.
func (t *Triangle) Bounds() (min, max raster.Point) {
	min, max = t.P[0], t.P[0]
	for _, p := range t.P[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

func (*Triangle) shape() {}
