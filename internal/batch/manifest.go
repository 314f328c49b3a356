package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry represents one written frame in the output manifest.
type ManifestEntry struct {
	Frame     int     `json:"frame"`
	Image     string  `json:"image"`
	ElapsedMs float64 `json:"elapsed_ms"`
}

// Manifest describes a recorded run.
type Manifest struct {
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Format    string          `json:"format"`
	Animation string          `json:"animation,omitempty"`
	Frames    []ManifestEntry `json:"frames"`
}

// WriteManifest writes manifest.json listing the successful results, with
// image paths relative to the manifest's directory.
func WriteManifest(path string, m Manifest, results []Result) error {
	base := filepath.Dir(path)
	for _, r := range results {
		if !r.Success {
			continue
		}
		rel, err := filepath.Rel(base, r.Path)
		if err != nil {
			rel = r.Path
		}
		m.Frames = append(m.Frames, ManifestEntry{
			Frame:     r.Index,
			Image:     filepath.ToSlash(rel),
			ElapsedMs: float64(r.Elapsed.Microseconds()) / 1000,
		})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	return nil
}
