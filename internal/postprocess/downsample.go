package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales a frame to targetWidth, preserving the aspect ratio,
// with CatmullRom filtering. Frames that are already narrow enough are
// returned unchanged.
func Downsample(img *image.NRGBA, targetWidth int) *image.NRGBA {
	b := img.Bounds()
	if targetWidth <= 0 || b.Dx() <= targetWidth {
		return img
	}

	targetHeight := b.Dy() * targetWidth / b.Dx()
	if targetHeight < 1 {
		targetHeight = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
