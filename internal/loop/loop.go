// Package loop drives the redraw cycle: wait for a trigger, update the
// scene, draw the frame, present it.
package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"softraster/internal/frame"
	"softraster/internal/logger"
	"softraster/internal/present"
	"softraster/internal/raster"
	"softraster/internal/scene"
)

// Loop owns the frame buffer for the duration of Run. Each cycle
// completes before the next trigger is awaited.
type Loop struct {
	Buffer   *raster.FrameBuffer
	Renderer *frame.Renderer
	Scene    *scene.Scene
	Surface  present.Surface
	Source   Source
	// Frames stops the loop after this many frames; 0 runs until ctx ends.
	Frames int
	Log    *logger.Logger
}

// Run draws frames until Frames is reached or ctx is cancelled, returning
// the number of frames presented. Cancellation is not an error. A draw or
// present failure stops the loop at once.
func (l *Loop) Run(ctx context.Context) (int, error) {
	var start, last time.Time
	n := 0
	for l.Frames <= 0 || n < l.Frames {
		now, err := l.Source.Next(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				l.Log.Debugf("stopped after %d frames: %v", n, err)
				return n, nil
			}
			return n, fmt.Errorf("loop: redraw source: %w", err)
		}
		if n == 0 {
			start, last = now, now
		}

		fc := scene.Context{Index: n, Elapsed: now.Sub(start), Delta: now.Sub(last)}
		last = now

		if l.Scene != nil {
			l.Scene.Update(fc)
		}
		if err := l.Renderer.Draw(l.Buffer, l.Scene, fc); err != nil {
			return n, fmt.Errorf("loop: draw frame %d: %w", n, err)
		}
		if err := l.Surface.Present(l.Buffer); err != nil {
			l.Log.Errorf("present frame %d failed: %v", n, err)
			return n, fmt.Errorf("loop: present frame %d: %w", n, err)
		}
		n++

		if n%100 == 0 {
			l.Log.Debugf("frame %d, delta %v", n, fc.Delta)
		}
	}
	return n, nil
}
