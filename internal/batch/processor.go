package batch

import (
	"fmt"
	"image"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"softraster/internal/export"
	"softraster/internal/logger"
)

// Config holds the shared settings for an encode run.
type Config struct {
	OutputDir string
	Format    export.Format
	Scale     int
	Workers   int
	// Progress is the interval between progress lines; 0 disables them.
	Progress time.Duration
	Log      *logger.Logger
}

// Job is one finished frame waiting to be written.
type Job struct {
	Index   int
	Elapsed time.Duration
	Image   *image.NRGBA
}

// Result holds the outcome of writing one frame.
type Result struct {
	Index   int
	Elapsed time.Duration
	Path    string
	Success bool
	Error   string
}

// Pool encodes frames on a fixed set of worker goroutines. Submit may be
// called from one goroutine at a time; Close waits for all work.
type Pool struct {
	cfg       Config
	jobs      chan Job
	wg        sync.WaitGroup
	mu        sync.Mutex
	results   []Result
	submitted atomic.Int64
	processed atomic.Int64
	failed    atomic.Int64
	lastErr   atomic.Value // string
	done      chan struct{}
	start     time.Time
}

// Start launches the workers and, if configured, the progress reporter.
func Start(cfg Config) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	p := &Pool{
		cfg:   cfg,
		jobs:  make(chan Job, cfg.Workers*2),
		done:  make(chan struct{}),
		start: time.Now(),
	}

	for w := 0; w < cfg.Workers; w++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for j := range p.jobs {
				r := processFrame(cfg, j)
				p.mu.Lock()
				p.results = append(p.results, r)
				p.mu.Unlock()
				if !r.Success {
					p.lastErr.Store(r.Error)
					p.failed.Add(1)
				}
				p.processed.Add(1)
			}
		}()
	}

	if cfg.Progress > 0 {
		go p.report()
	}
	return p
}

func (p *Pool) report() {
	ticker := time.NewTicker(p.cfg.Progress)
	defer ticker.Stop()
	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			n := p.processed.Load()
			if n > 0 {
				rate := float64(n) / time.Since(p.start).Seconds()
				p.cfg.Log.Infof("encoded %d/%d frames, %.1f frames/sec", n, p.submitted.Load(), rate)
			}
		}
	}
}

// Submit queues a frame. It blocks while every worker is busy and the
// queue is full.
func (p *Pool) Submit(j Job) {
	p.submitted.Add(1)
	p.jobs <- j
}

// Failed reports how many frames have failed so far and the most recent
// error message.
func (p *Pool) Failed() (int64, string) {
	n := p.failed.Load()
	if n == 0 {
		return 0, ""
	}
	msg, _ := p.lastErr.Load().(string)
	return n, msg
}

// Close stops accepting work, waits for the workers and returns the
// results ordered by frame index.
func (p *Pool) Close() []Result {
	close(p.jobs)
	p.wg.Wait()
	close(p.done)

	sort.Slice(p.results, func(i, k int) bool { return p.results[i].Index < p.results[k].Index })
	return p.results
}

// Run encodes all jobs and returns their results.
func Run(cfg Config, jobs []Job) []Result {
	p := Start(cfg)
	for _, j := range jobs {
		p.Submit(j)
	}
	return p.Close()
}

// FramePath is the file a frame index is written to.
func FramePath(cfg Config, index int) string {
	return filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%05d%s", index, cfg.Format.Ext()))
}

func processFrame(cfg Config, j Job) Result {
	r := Result{Index: j.Index, Elapsed: j.Elapsed, Path: FramePath(cfg, j.Index)}
	if j.Image == nil {
		r.Error = "no image"
		return r
	}
	if err := export.Save(r.Path, j.Image, cfg.Scale); err != nil {
		r.Error = err.Error()
		return r
	}
	r.Success = true
	return r
}
