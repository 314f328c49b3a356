// Package scene holds the mutable set of shapes drawn every frame.
package scene

import (
	"math"
	"time"

	"softraster/internal/raster"
)

// Context carries the per-frame timing into Update and the frame renderer.
type Context struct {
	Index   int           // frame number, starting at 0
	Elapsed time.Duration // since the first frame
	Delta   time.Duration // since the previous frame
}

// Scene is an ordered list of shapes. Later shapes draw on top.
type Scene struct {
	shapes []Shape

	// Mover is the index of the shape moved by Update; out of range
	// disables movement.
	Mover int
	// Direction is the unit step applied per pixel of movement.
	Direction raster.Point
	// WrapWidth, when positive, sends the mover back to the left edge
	// once its leftmost vertex passes this x.
	WrapWidth int
}

// New returns a scene owning shapes, moving the first one along +x.
func New(shapes ...Shape) *Scene {
	return &Scene{
		shapes:    shapes,
		Direction: raster.Pt(1, 0),
	}
}

// Add appends sh; it is drawn after every shape already in the scene.
func (s *Scene) Add(sh Shape) { s.shapes = append(s.shapes, sh) }

// Len returns the number of shapes.
func (s *Scene) Len() int { return len(s.shapes) }

// Shapes returns the scene's shapes in draw order. The slice is shared.
func (s *Scene) Shapes() []Shape { return s.shapes }

// Step returns the movement in pixels for a frame that took delta:
// floor(1 + 10*seconds).
func Step(delta time.Duration) int {
	return int(math.Floor(1 + 10*delta.Seconds()))
}

// Update moves the designated shape by Step(ctx.Delta) pixels.
func (s *Scene) Update(ctx Context) {
	if s.Mover < 0 || s.Mover >= len(s.shapes) {
		return
	}
	sh := s.shapes[s.Mover]
	n := Step(ctx.Delta)
	sh.Translate(raster.Pt(s.Direction.X*n, s.Direction.Y*n))

	if s.WrapWidth <= 0 {
		return
	}
	min, max := sh.Bounds()
	if min.X > s.WrapWidth {
		sh.Translate(raster.Pt(-(s.WrapWidth + (max.X - min.X) + 1), 0))
	}
}

// Render draws every shape's fill in insertion order.
func (s *Scene) Render(fb *raster.FrameBuffer) {
	for _, sh := range s.shapes {
		sh.RenderFilled(fb)
	}
}

// RenderWire draws every shape's outline in insertion order.
func (s *Scene) RenderWire(fb *raster.FrameBuffer) {
	for _, sh := range s.shapes {
		sh.RenderWire(fb)
	}
}
