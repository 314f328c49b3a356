package loop

import (
	"context"
	"time"
)

// Source signals when the next frame should be drawn.
type Source interface {
	// Next blocks until the next redraw and returns its timestamp.
	Next(ctx context.Context) (time.Time, error)
}

// Ticker paces redraws at a fixed rate. A frame that runs late resets the
// schedule instead of bursting to catch up.
type Ticker struct {
	interval time.Duration
	next     time.Time
}

// NewTicker returns a source firing fps times per second.
func NewTicker(fps float64) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{interval: time.Duration(float64(time.Second) / fps)}
}

// Interval is the target time between frames.
func (t *Ticker) Interval() time.Duration { return t.interval }

func (t *Ticker) Next(ctx context.Context) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	now := time.Now()
	if t.next.IsZero() {
		t.next = now
		return now, nil
	}

	t.next = t.next.Add(t.interval)
	wait := t.next.Sub(now)
	if wait <= 0 {
		t.next = now
		return now, nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	case fired := <-timer.C:
		return fired, nil
	}
}

// Immediate fires as fast as frames can be drawn.
type Immediate struct{}

func (Immediate) Next(ctx context.Context) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	return time.Now(), nil
}
