package raster

import (
	"math"
	"testing"

	"sphere-dof-renderer/internal/mathutil"
)

func TestNewFrameBufferOpaqueBlack(t *testing.T) {
	fb := NewFrameBuffer(3, 2)
	if len(fb.Color) != 3*2*4 {
		t.Fatalf("len = %d, want 24", len(fb.Color))
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if c := fb.At(x, y); c.R != 0 || c.G != 0 || c.B != 0 || c.A != 255 {
				t.Errorf("pixel (%d,%d) = %+v, want opaque black", x, y, c)
			}
		}
	}
}

func TestToByte(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{-0.5, 0},
		{0.5, 127},
		{0.999, 254},
		{1, 255},
		{2.5, 255},
		{math.NaN(), 0},
		{math.Inf(1), 255},
	}
	for _, tt := range tests {
		if got := toByte(tt.in); got != tt.want {
			t.Errorf("toByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSetRowMajorTopLeft(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	fb.Set(1, 2, mathutil.Vec3{1, 0.5, 0})

	i := (2*4 + 1) * 4
	if fb.Color[i] != 255 || fb.Color[i+1] != 127 || fb.Color[i+2] != 0 || fb.Color[i+3] != 255 {
		t.Errorf("pixel bytes = %v", fb.Color[i:i+4])
	}

	img := fb.Image()
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	if c := img.NRGBAAt(1, 2); c.R != 255 || c.G != 127 {
		t.Errorf("image pixel = %+v", c)
	}

	// Image is a copy.
	img.Pix[i] = 0
	if fb.Color[i] != 255 {
		t.Error("Image shares storage with the frame buffer")
	}
}
