package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v2"

	"softraster/internal/export"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid")

// Config holds all render and output settings.
type Config struct {
	// Frame buffer
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`

	// Run loop
	FPS      float64 `json:"fps" yaml:"fps"`
	Frames   int     `json:"frames" yaml:"frames"`
	Realtime bool    `json:"realtime" yaml:"realtime"`

	// Drawing
	Wireframe    bool `json:"wireframe" yaml:"wireframe"`
	HideBackdrop bool `json:"hide_backdrop" yaml:"hide_backdrop"`
	HideReadout  bool `json:"hide_readout" yaml:"hide_readout"`

	// Output
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	Format    string `json:"format" yaml:"format"`
	Every     int    `json:"every" yaml:"every"`
	Scale     int    `json:"scale" yaml:"scale"`
	Animation bool   `json:"animation" yaml:"animation"`
	Workers   int    `json:"workers" yaml:"workers"`

	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Load reads a JSON or YAML config file, chosen by extension (.yaml and
// .yml are YAML, anything else JSON). Unknown keys are rejected in both
// formats. Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.UnmarshalStrict(data, &cfg)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings. Zero
// values mean "not given".
type Flags struct {
	Width     int
	Height    int
	FPS       float64
	Frames    int
	OutputDir string
	Format    string
	Every     int
	Scale     int
	Workers   int
	LogLevel  string
	Realtime  bool
	Wireframe bool
	Animation bool
}

// Resolve applies flag overrides, then fills any remaining zero fields
// with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Every > 0 {
		c.Every = flags.Every
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	c.Realtime = c.Realtime || flags.Realtime
	c.Wireframe = c.Wireframe || flags.Wireframe
	c.Animation = c.Animation || flags.Animation

	if c.Width <= 0 {
		c.Width = 512
	}
	if c.Height <= 0 {
		c.Height = 512
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Format == "" {
		c.Format = string(export.WebP)
	}
	if c.Every <= 0 {
		c.Every = 10
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports settings that Resolve cannot repair.
func (c *Config) Validate() error {
	if c.Width > 8192 || c.Height > 8192 {
		return fmt.Errorf("%w: size %dx%d exceeds 8192", ErrInvalid, c.Width, c.Height)
	}
	if c.Scale > 16 {
		return fmt.Errorf("%w: scale %d exceeds 16", ErrInvalid, c.Scale)
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// OutputFormat returns the parsed output format. Call after Validate.
func (c *Config) OutputFormat() export.Format {
	f, _ := export.ParseFormat(c.Format)
	return f
}
