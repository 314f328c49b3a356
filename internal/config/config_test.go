package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"softraster/internal/export"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"json", "render.json", `{"width": 320, "height": 200, "format": "tga", "every": 2, "wireframe": true}`},
		{"yaml", "render.yaml", "width: 320\nheight: 200\nformat: tga\nevery: 2\nwireframe: true\n"},
		{"yml", "render.yml", "width: 320\nheight: 200\nformat: tga\nevery: 2\nwireframe: true\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tc.file, tc.body))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Width != 320 || cfg.Height != 200 || cfg.Format != "tga" || cfg.Every != 2 || !cfg.Wireframe {
				t.Errorf("cfg = %+v", cfg)
			}
			if cfg.Frames != 0 {
				t.Errorf("unset Frames = %d, want 0", cfg.Frames)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}
	if _, err := Load(writeFile(t, "bad.json", "{width: ")); err == nil {
		t.Error("malformed JSON accepted")
	}
	if _, err := Load(writeFile(t, "bad.yaml", "widht: 10\n")); err == nil {
		t.Error("unknown YAML key accepted")
	}
	if _, err := Load(writeFile(t, "bad.json", `{"widht": 10}`)); err == nil {
		t.Error("unknown JSON key accepted")
	}
}

func TestResolvePrecedence(t *testing.T) {
	cfg := Config{Width: 320, Format: "tga", Every: 4}
	cfg.Resolve(Flags{Width: 640, Frames: 30, Animation: true})

	if cfg.Width != 640 {
		t.Errorf("Width = %d, want flag value 640", cfg.Width)
	}
	if cfg.Format != "tga" || cfg.Every != 4 {
		t.Errorf("file values lost: format %q every %d", cfg.Format, cfg.Every)
	}
	if cfg.Frames != 30 || !cfg.Animation {
		t.Errorf("flag values lost: frames %d animation %v", cfg.Frames, cfg.Animation)
	}
	if cfg.Height != 512 || cfg.FPS != 60 || cfg.Scale != 1 || cfg.OutputDir != "frames" || cfg.Workers <= 0 || cfg.LogLevel != "info" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"bad format", func(c *Config) { c.Format = "gif" }, false},
		{"too wide", func(c *Config) { c.Width = 10000 }, false},
		{"huge scale", func(c *Config) { c.Scale = 64 }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var cfg Config
			cfg.Resolve(Flags{})
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate = %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate = %v, want ErrInvalid", err)
			}
		})
	}

	var cfg Config
	cfg.Resolve(Flags{Format: "png"})
	if cfg.OutputFormat() != export.PNG {
		t.Errorf("OutputFormat = %q, want png", cfg.OutputFormat())
	}
}
