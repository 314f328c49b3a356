// Package export encodes rendered frames to image files.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// Format names an output encoding.
type Format string

const (
	WebP Format = "webp"
	TGA  Format = "tga"
	PNG  Format = "png"
)

// ErrUnknownFormat is returned for an unrecognised format name or extension.
var ErrUnknownFormat = errors.New("export: unknown format")

// ParseFormat accepts a format name with or without a leading dot, in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.TrimPrefix(strings.ToLower(s), ".")); f {
	case WebP, TGA, PNG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + string(f) }

// Encode writes img to w. WebP output is lossless.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case WebP:
		return nativewebp.Encode(w, img, nil)
	case TGA:
		return tga.Encode(w, img)
	case PNG:
		return png.Encode(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Scale enlarges img by an integer factor with nearest-neighbour sampling,
// keeping pixels sharp. factor <= 1 returns img unchanged.
func Scale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Save scales img and writes it to path, choosing the format from the
// extension. Parent directories are created.
func Save(path string, img *image.NRGBA, scale int) error {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", filepath.Dir(path), err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := Encode(out, Scale(img, scale), f); err != nil {
		out.Close()
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}

// SaveAnimation writes frames as an animated WebP that loops forever, each
// frame shown for frameMs milliseconds.
func SaveAnimation(path string, frames []image.Image, frameMs uint, scale int) error {
	if len(frames) == 0 {
		return fmt.Errorf("export: animation %s: no frames", path)
	}
	ani := &nativewebp.Animation{
		Images:    make([]image.Image, len(frames)),
		Durations: make([]uint, len(frames)),
		Disposals: make([]uint, len(frames)),
	}
	for i, fr := range frames {
		if n, ok := fr.(*image.NRGBA); ok {
			fr = Scale(n, scale)
		}
		ani.Images[i] = fr
		ani.Durations[i] = frameMs
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", filepath.Dir(path), err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := nativewebp.EncodeAll(out, ani, nil); err != nil {
		out.Close()
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return out.Close()
}
