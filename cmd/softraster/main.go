package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"softraster/internal/batch"
	"softraster/internal/config"
	"softraster/internal/frame"
	"softraster/internal/logger"
	"softraster/internal/loop"
	"softraster/internal/present"
	"softraster/internal/raster"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json, .yaml)")
	width := flag.Int("width", 0, "Frame width in pixels (default: 512)")
	height := flag.Int("height", 0, "Frame height in pixels (default: 512)")
	fps := flag.Float64("fps", 0, "Target frames per second (default: 60)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 120)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	format := flag.String("format", "", "Frame format: webp, tga, png (default: webp)")
	every := flag.Int("every", 0, "Keep every Nth frame (default: 10)")
	scale := flag.Int("scale", 0, "Integer upscale of written frames (default: 1)")
	workers := flag.Int("workers", 0, "Number of encode goroutines (default: NumCPU)")
	logLevel := flag.String("log", "", "Log level: debug, info, warn, error (default: info)")
	realtime := flag.Bool("realtime", false, "Pace frames at the target FPS instead of rendering flat out")
	wireframe := flag.Bool("wireframe", false, "Outline scene shapes")
	animation := flag.Bool("animation", false, "Also write kept frames as an animated WebP")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Width:     *width,
		Height:    *height,
		FPS:       *fps,
		Frames:    *frames,
		OutputDir: *outputDir,
		Format:    *format,
		Every:     *every,
		Scale:     *scale,
		Workers:   *workers,
		LogLevel:  *logLevel,
		Realtime:  *realtime,
		Wireframe: *wireframe,
		Animation: *animation,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewStderr(cfg.LogLevel)

	fmt.Printf("Software rasterizer %dx%d, %d frames at %.0f fps\n", cfg.Width, cfg.Height, cfg.Frames, cfg.FPS)
	fmt.Printf("Output: %s (%s, every %d, x%d)\n", cfg.OutputDir, cfg.Format, cfg.Every, cfg.Scale)
	fmt.Println("------------------------------------------------------------")

	recCfg := present.RecorderConfig{
		Batch: batch.Config{
			OutputDir: cfg.OutputDir,
			Format:    cfg.OutputFormat(),
			Scale:     cfg.Scale,
			Workers:   cfg.Workers,
			Progress:  2 * time.Second,
			Log:       log,
		},
		Every:    cfg.Every,
		FrameMs:  uint(float64(cfg.Every) * 1000 / cfg.FPS),
		Manifest: true,
	}
	if cfg.Animation {
		recCfg.Animation = filepath.Join(cfg.OutputDir, "animation.webp")
	}
	rec := present.NewRecorder(recCfg)

	var src loop.Source = loop.Immediate{}
	if cfg.Realtime {
		src = loop.NewTicker(cfg.FPS)
	}

	renderer := frame.NewRenderer()
	renderer.Wireframe = cfg.Wireframe
	renderer.HideBackdrop = cfg.HideBackdrop
	renderer.HideReadout = cfg.HideReadout

	l := &loop.Loop{
		Buffer:   raster.NewFrameBuffer(cfg.Width, cfg.Height),
		Renderer: renderer,
		Scene:    frame.DefaultScene(cfg.Width),
		Surface:  rec,
		Source:   src,
		Frames:   cfg.Frames,
		Log:      log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	n, runErr := l.Run(ctx)
	results, closeErr := rec.Close()
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.2fs, %d frames (%.1f fps)\n", elapsed.Seconds(), n, float64(n)/elapsed.Seconds())

	// Count results
	written := 0
	for _, r := range results {
		if r.Success {
			written++
		}
	}
	fmt.Printf("Written: %d/%d\n", written, len(results))

	if runErr != nil {
		log.Errorf("render loop: %v", runErr)
	}
	if closeErr != nil {
		log.Errorf("output: %v", closeErr)
	}
	if runErr != nil || closeErr != nil {
		os.Exit(1)
	}
}
