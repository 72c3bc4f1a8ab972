package raster

import (
	"image"
	"image/color"

	"sphere-dof-renderer/internal/mathutil"
)

// FrameBuffer holds the rendering target as a flat slice for cache locality.
// Rows are stored top to bottom; alpha is always opaque.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // RGBA interleaved, len = W*H*4
}

// NewFrameBuffer allocates an opaque black buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
	}
	for i := 3; i < len(fb.Color); i += 4 {
		fb.Color[i] = 255
	}
	return fb
}

// Set stores a linear [0,1] color at (x, y), scaled by 255 and truncated.
func (fb *FrameBuffer) Set(x, y int, c mathutil.Vec3) {
	i := (y*fb.Width + x) * 4
	fb.Color[i] = toByte(c[0])
	fb.Color[i+1] = toByte(c[1])
	fb.Color[i+2] = toByte(c[2])
	fb.Color[i+3] = 255
}

// At returns the stored pixel at (x, y).
func (fb *FrameBuffer) At(x, y int) color.NRGBA {
	i := (y*fb.Width + x) * 4
	return color.NRGBA{R: fb.Color[i], G: fb.Color[i+1], B: fb.Color[i+2], A: fb.Color[i+3]}
}

// Image copies the buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

// toByte saturates channels outside [0,1]; NaN renders as 0.
func toByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
