package raster

import "image"

// Point is an integer pixel coordinate. Only points inside the buffer
// produce visible output.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by d.
func (p Point) Add(d Point) Point { return Point{p.X + d.X, p.Y + d.Y} }

// Color is a straight (non-premultiplied) RGBA quadruple.
type Color struct {
	R, G, B, A uint8
}

// FrameBuffer holds the rendering target as a flat slice for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // RGBA interleaved, row-major, len = W*H*4
}

// NewFrameBuffer allocates a zeroed (transparent black) color buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
	}
}

// PutPixel writes c at (x, y). Coordinates outside the buffer are dropped
// silently; a write never spills into a neighbouring row.
func (fb *FrameBuffer) PutPixel(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Color[i] = c.R
	fb.Color[i+1] = c.G
	fb.Color[i+2] = c.B
	fb.Color[i+3] = c.A
}

// At returns the pixel at (x, y), or ok=false outside the buffer.
func (fb *FrameBuffer) At(x, y int) (c Color, ok bool) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Color{}, false
	}
	i := (y*fb.Width + x) * 4
	return Color{fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]}, true
}

// Clear writes c to every pixel.
func (fb *FrameBuffer) Clear(c Color) {
	px := [4]uint8{c.R, c.G, c.B, c.A}
	for i := 0; i+4 <= len(fb.Color); i += 4 {
		copy(fb.Color[i:i+4], px[:])
	}
}

// ToImage copies the buffer into a new NRGBA image. The copy is safe to
// hand to another goroutine while the buffer is redrawn.
func (fb *FrameBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
