// Package output encodes rendered frames to image files.
package output

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// Format names a supported image container.
type Format string

const (
	WebP Format = "webp"
	TGA  Format = "tga"
	PNG  Format = "png"
	BMP  Format = "bmp"
)

// Formats lists every supported format.
var Formats = []Format{WebP, TGA, PNG, BMP}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch Format(ext) {
	case WebP, TGA, PNG, BMP:
		return Format(ext), nil
	}
	return "", fmt.Errorf("output: unknown extension %q in %s", filepath.Ext(path), path)
}

// Encode writes img to w in format f. WebP output is lossless.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case WebP:
		return nativewebp.Encode(w, img, nil)
	case TGA:
		return tga.Encode(w, img)
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("output: unsupported format %q", f)
}

// WriteFile encodes img into path, creating parent directories as needed.
func WriteFile(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("output: mkdir %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	if err := Encode(file, img, f); err != nil {
		file.Close()
		return fmt.Errorf("output: encode %s: %w", path, err)
	}
	return file.Close()
}

// ReadFile decodes a previously written frame. The decoder is chosen by
// extension because TGA has no magic number to sniff.
func ReadFile(path string) (image.Image, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("output: open %s: %w", path, err)
	}
	defer file.Close()

	var img image.Image
	switch f {
	case WebP:
		img, err = webp.Decode(file)
	case TGA:
		img, err = tga.Decode(file)
	case PNG:
		img, err = png.Decode(file)
	case BMP:
		img, err = bmp.Decode(file)
	}
	if err != nil {
		return nil, fmt.Errorf("output: decode %s: %w", path, err)
	}
	return img, nil
}

// SequencePath inserts a zero-padded frame number before the extension:
// "out/render.webp", 7 → "out/render_007.webp".
func SequencePath(path string, frame int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(path, ext), frame, ext)
}
