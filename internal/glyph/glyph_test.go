package glyph

import (
	"errors"
	"testing"

	"softraster/internal/raster"
)

// gridProvider returns a fixed 2x3 checker for every line and rejects '!'.
type gridProvider struct{}

func (gridProvider) Bitmap(line string) ([][]bool, error) {
	for _, r := range line {
		if r == '!' {
			return nil, ErrUnsupportedGlyph
		}
	}
	return [][]bool{
		{true, false, true},
		{false, true, false},
	}, nil
}

func lit(rows [][]bool) int {
	n := 0
	for _, row := range rows {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}

func TestFontProviderBitmap(t *testing.T) {
	p := NewFontProvider()

	tests := []struct {
		name      string
		line      string
		wantWidth int
		wantLit   bool
	}{
		{"letter", "A", 7, true},
		{"word", "raster", 42, true},
		{"space", " ", 7, false},
		{"digits", "0123", 28, true},
		{"empty", "", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := p.Bitmap(tc.line)
			if err != nil {
				t.Fatalf("Bitmap(%q) error: %v", tc.line, err)
			}
			if len(rows) != 13 {
				t.Fatalf("rows = %d, want 13", len(rows))
			}
			for y, row := range rows {
				if len(row) != tc.wantWidth {
					t.Fatalf("row %d width = %d, want %d", y, len(row), tc.wantWidth)
				}
			}
			if got := lit(rows) > 0; got != tc.wantLit {
				t.Errorf("any lit = %v, want %v", got, tc.wantLit)
			}
		})
	}
}

func TestFontProviderUnsupported(t *testing.T) {
	p := NewFontProvider()
	for _, line := range []string{"é", "ok\t", "日本"} {
		if _, err := p.Bitmap(line); !errors.Is(err, ErrUnsupportedGlyph) {
			t.Errorf("Bitmap(%q) error = %v, want ErrUnsupportedGlyph", line, err)
		}
	}
}

func TestDrawTextLayout(t *testing.T) {
	fb := raster.NewFrameBuffer(10, 10)
	c := raster.Color{0xff, 0x00, 0xff, 0xff}

	if err := DrawText(fb, raster.Pt(1, 1), "a\nb", c, gridProvider{}); err != nil {
		t.Fatalf("DrawText error: %v", err)
	}

	// First line occupies rows 1-2, blank row 3, second line rows 4-5.
	want := map[raster.Point]bool{
		{1, 1}: true, {3, 1}: true, {2, 2}: true,
		{1, 4}: true, {3, 4}: true, {2, 5}: true,
	}
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			got, _ := fb.At(x, y)
			if (got == c) != want[raster.Pt(x, y)] {
				t.Errorf("pixel (%d,%d) lit = %v, want %v", x, y, got == c, want[raster.Pt(x, y)])
			}
		}
	}
}

func TestDrawTextFailsWhole(t *testing.T) {
	fb := raster.NewFrameBuffer(10, 10)
	err := DrawText(fb, raster.Pt(0, 0), "fine\nbad!", raster.Color{0xff, 0xff, 0xff, 0xff}, gridProvider{})
	if !errors.Is(err, ErrUnsupportedGlyph) {
		t.Fatalf("error = %v, want ErrUnsupportedGlyph", err)
	}
	for i, b := range fb.Color {
		if b != 0 {
			t.Fatalf("byte %d = %d, want untouched buffer", i, b)
		}
	}
}

func TestDrawTextWithFont(t *testing.T) {
	fb := raster.NewFrameBuffer(64, 32)
	c := raster.Color{0xff, 0xff, 0xff, 0xff}
	if err := DrawText(fb, raster.Pt(2, 2), "42", c, NewFontProvider()); err != nil {
		t.Fatalf("DrawText error: %v", err)
	}

	rows, _ := NewFontProvider().Bitmap("42")
	n := 0
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if got, _ := fb.At(x, y); got == c {
				n++
			}
		}
	}
	if n != lit(rows) {
		t.Errorf("lit pixels = %d, want %d", n, lit(rows))
	}
}
