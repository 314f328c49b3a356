package present

import (
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"softraster/internal/batch"
	"softraster/internal/export"
	"softraster/internal/raster"
)

func TestRecorderKeepsEveryNth(t *testing.T) {
	dir := t.TempDir()
	rec := NewRecorder(RecorderConfig{
		Batch:     batch.Config{OutputDir: dir, Format: export.PNG, Workers: 2},
		Every:     3,
		Animation: filepath.Join(dir, "run.webp"),
		FrameMs:   16,
		Manifest:  true,
	})

	fb := raster.NewFrameBuffer(8, 8)
	for i := 0; i < 7; i++ {
		fb.Clear(raster.Color{uint8(i * 30), 0, 0, 0xff})
		if err := rec.Present(fb); err != nil {
			t.Fatalf("Present %d: %v", i, err)
		}
	}
	if rec.Frames() != 7 {
		t.Errorf("Frames = %d, want 7", rec.Frames())
	}

	results, err := rec.Close()
	if err != nil {
		t.Fatalf("Close: %v", err)
	}
	var got []int
	for _, r := range results {
		got = append(got, r.Index)
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 3 || got[2] != 6 {
		t.Errorf("kept frames = %v, want [0 3 6]", got)
	}

	if _, err := os.Stat(filepath.Join(dir, "run.webp")); err != nil {
		t.Errorf("animation: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatalf("manifest: %v", err)
	}
	var m batch.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if m.Width != 8 || len(m.Frames) != 3 || m.Animation != "run.webp" {
		t.Errorf("manifest = %+v", m)
	}

	if err := rec.Present(fb); !errors.Is(err, ErrClosed) {
		t.Errorf("Present after Close = %v, want ErrClosed", err)
	}
}

func TestRecorderSnapshotIsCopy(t *testing.T) {
	dir := t.TempDir()
	rec := NewRecorder(RecorderConfig{
		Batch:     batch.Config{OutputDir: dir, Format: export.PNG, Workers: 1},
		Animation: filepath.Join(dir, "a.webp"),
	})
	fb := raster.NewFrameBuffer(2, 2)
	fb.Clear(raster.Color{1, 2, 3, 4})
	if err := rec.Present(fb); err != nil {
		t.Fatal(err)
	}
	fb.Clear(raster.Color{9, 9, 9, 9})

	snap, ok := rec.anim[0].(*image.NRGBA)
	if !ok {
		t.Fatalf("snapshot type %T, want *image.NRGBA", rec.anim[0])
	}
	if got, want := snap.NRGBAAt(1, 1), (color.NRGBA{1, 2, 3, 4}); got != want {
		t.Errorf("snapshot pixel = %v, want %v", got, want)
	}
	if _, err := rec.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestRecorderReportsWriteFailure(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the output directory should be.
	blocker := filepath.Join(dir, "out")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder(RecorderConfig{Batch: batch.Config{OutputDir: blocker, Format: export.PNG, Workers: 1}})

	fb := raster.NewFrameBuffer(2, 2)
	if err := rec.Present(fb); err != nil {
		t.Fatalf("first Present: %v", err)
	}
	_, err := rec.Close()
	if err == nil || !strings.Contains(err.Error(), "frame 0") {
		t.Errorf("Close error = %v, want frame 0 failure", err)
	}
}

func TestSurfaceFunc(t *testing.T) {
	want := errors.New("display lost")
	s := SurfaceFunc(func(*raster.FrameBuffer) error { return want })
	if err := s.Present(raster.NewFrameBuffer(1, 1)); err != want {
		t.Errorf("Present = %v, want %v", err, want)
	}
	if err := Discard.Present(raster.NewFrameBuffer(1, 1)); err != nil {
		t.Errorf("Discard.Present = %v", err)
	}
}
