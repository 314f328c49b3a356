package present

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"softraster/internal/batch"
	"softraster/internal/export"
	"softraster/internal/raster"
)

// ErrClosed is returned by Present after Close.
var ErrClosed = errors.New("present: recorder closed")

// RecorderConfig selects which frames are kept and where they go.
type RecorderConfig struct {
	Batch batch.Config
	// Every keeps frames 0, Every, 2*Every, ...; values below 1 keep all.
	Every int
	// Animation, if set, is the path of an animated WebP of the kept frames.
	Animation string
	// FrameMs is the display time of each animation frame.
	FrameMs uint
	// Manifest writes manifest.json next to the frames.
	Manifest bool
}

// Recorder is a Surface that snapshots kept frames and encodes them on a
// worker pool, so rendering continues while earlier frames are written.
type Recorder struct {
	cfg    RecorderConfig
	pool   *batch.Pool
	start  time.Time
	count  int
	width  int
	height int
	anim   []image.Image
	closed bool
}

// NewRecorder starts the encode workers.
func NewRecorder(cfg RecorderConfig) *Recorder {
	if cfg.Every < 1 {
		cfg.Every = 1
	}
	return &Recorder{
		cfg:  cfg,
		pool: batch.Start(cfg.Batch),
	}
}

// Present keeps a copy of fb if it falls on the sampling interval. It
// fails once any earlier frame could not be written.
func (r *Recorder) Present(fb *raster.FrameBuffer) error {
	if r.closed {
		return ErrClosed
	}
	if n, msg := r.pool.Failed(); n > 0 {
		return fmt.Errorf("present: %d frame(s) failed to write: %s", n, msg)
	}

	now := time.Now()
	if r.count == 0 {
		r.start = now
		r.width, r.height = fb.Width, fb.Height
	}
	index := r.count
	r.count++
	if index%r.cfg.Every != 0 {
		return nil
	}

	img := fb.ToImage()
	r.pool.Submit(batch.Job{Index: index, Elapsed: now.Sub(r.start), Image: img})
	if r.cfg.Animation != "" {
		r.anim = append(r.anim, img)
	}
	return nil
}

// Frames is the number of frames presented so far.
func (r *Recorder) Frames() int { return r.count }

// Close waits for pending writes, then writes the animation and manifest.
// The per-frame results are returned even when a later step fails.
func (r *Recorder) Close() ([]batch.Result, error) {
	if r.closed {
		return nil, ErrClosed
	}
	r.closed = true
	results := r.pool.Close()

	var errs []error
	for _, res := range results {
		if !res.Success {
			errs = append(errs, fmt.Errorf("present: frame %d: %s", res.Index, res.Error))
		}
	}

	if r.cfg.Animation != "" && len(r.anim) > 0 {
		if err := export.SaveAnimation(r.cfg.Animation, r.anim, r.cfg.FrameMs, r.cfg.Batch.Scale); err != nil {
			errs = append(errs, err)
		}
	}

	if r.cfg.Manifest {
		m := batch.Manifest{
			Width:  r.width,
			Height: r.height,
			Format: string(r.cfg.Batch.Format),
		}
		if r.cfg.Animation != "" {
			m.Animation = r.cfg.Animation
			if rel, err := filepath.Rel(r.cfg.Batch.OutputDir, r.cfg.Animation); err == nil {
				m.Animation = filepath.ToSlash(rel)
			}
		}
		path := filepath.Join(r.cfg.Batch.OutputDir, "manifest.json")
		if err := os.MkdirAll(r.cfg.Batch.OutputDir, 0755); err != nil {
			errs = append(errs, fmt.Errorf("present: mkdir %s: %w", r.cfg.Batch.OutputDir, err))
		} else if err := batch.WriteManifest(path, m, results); err != nil {
			errs = append(errs, err)
		}
	}

	return results, errors.Join(errs...)
}
