// Package present hands finished frames to whatever displays or stores
// them.
package present

import "softraster/internal/raster"

// Surface receives the completed buffer once per frame. The buffer must
// not be retained after Present returns; an error is fatal for the run.
type Surface interface {
	Present(fb *raster.FrameBuffer) error
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(fb *raster.FrameBuffer) error

func (f SurfaceFunc) Present(fb *raster.FrameBuffer) error { return f(fb) }

// Discard accepts and drops every frame.
var Discard Surface = SurfaceFunc(func(*raster.FrameBuffer) error { return nil })
