package raster

import (
	"context"
	"runtime"
	"sync"
	"time"

	"sphere-dof-renderer/internal/lens"
	"sphere-dof-renderer/internal/mathutil"
	"sphere-dof-renderer/internal/scene"
	"sphere-dof-renderer/internal/trace"
)

// Options controls how a frame is scheduled. The rendered image depends only
// on Seed, never on Workers.
type Options struct {
	// Workers is the number of goroutines rendering rows. Values ≤ 1 render
	// on the calling goroutine; use runtime.NumCPU() for all cores.
	Workers int
	// Seed feeds the per-row lens samplers.
	Seed int64
}

// Render fills fb with sc viewed through cam. It blocks until every pixel
// has been written.
func Render(fb *FrameBuffer, sc *scene.Scene, cam scene.Camera, opts Options) {
	_ = RenderContext(context.Background(), fb, sc, cam, opts)
}

// RenderContext is Render with cancellation: once ctx is done no further rows
// are started and ctx.Err() is returned. Rows already written stay in fb.
func RenderContext(ctx context.Context, fb *FrameBuffer, sc *scene.Scene, cam scene.Camera, opts Options) error {
	start := time.Now()
	workers := opts.Workers
	if workers > fb.Height {
		workers = fb.Height
	}

	var err error
	if workers <= 1 {
		for y := 0; y < fb.Height; y++ {
			if err = ctx.Err(); err != nil {
				break
			}
			renderRow(fb, sc, cam, opts.Seed, y)
		}
	} else {
		err = renderParallel(ctx, fb, sc, cam, opts.Seed, workers)
	}

	Logger().Debug("frame rendered",
		"width", fb.Width,
		"height", fb.Height,
		"samples", cam.Samples,
		"aperture", cam.Aperture,
		"focal_length", cam.FocalLength,
		"workers", max(workers, 1),
		"elapsed", time.Since(start),
		"err", err,
	)
	return err
}

// renderParallel hands whole rows to a worker pool. Each row has exactly one
// writer, so fb needs no locking.
func renderParallel(ctx context.Context, fb *FrameBuffer, sc *scene.Scene, cam scene.Camera, seed int64, workers int) error {
	rows := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				renderRow(fb, sc, cam, seed, y)
			}
		}()
	}

	var err error
send:
	for y := 0; y < fb.Height; y++ {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break send
		case rows <- y:
		}
	}
	close(rows)
	wg.Wait()

	return err
}

func renderRow(fb *FrameBuffer, sc *scene.Scene, cam scene.Camera, seed int64, y int) {
	s := lens.New(RowSeed(seed, y))
	for x := 0; x < fb.Width; x++ {
		fb.Set(x, y, RenderPixel(sc, cam, s, x, y, fb.Width, fb.Height))
	}
}

// RowSeed derives the lens seed of row y from the frame seed.
func RowSeed(seed int64, y int) int64 {
	return seed + int64(y)*0x5DEECE66D
}

// PixelDirection returns the unit camera-space direction through the center
// of pixel (x, y) on a w×h grid, with the image plane at z = -1.
func PixelDirection(x, y, w, h int) mathutil.Vec3 {
	u := (float64(x) + 0.5) / float64(w)
	v := (float64(y) + 0.5) / float64(h)
	return mathutil.Vec3{u - 0.5, v - 0.5, -1}.Normalize()
}

// RenderPixel averages the lens samples for pixel (x, y).
//
// The x/y components of the normalized pixel direction are passed to the lens
// sampler as its image-plane offsets, and every sample is traced from the
// unperturbed camera position.
func RenderPixel(sc *scene.Scene, cam scene.Camera, s *lens.Sampler, x, y, w, h int) mathutil.Vec3 {
	base := PixelDirection(x, y, w, h)
	n := LensSamples(cam)

	var sum mathutil.Vec3
	for i := 0; i < n; i++ {
		dir := s.RayDirection(cam, base.X(), base.Y())
		sum = sum.Add(trace.TraceRay(cam.Position, dir, sc))
	}
	return sum.Div(float64(n))
}

// LensSamples is the number of rays RenderPixel traces for one pixel. A
// pinhole collapses every lens sample onto the same ray, so it traces one.
// Each ray takes two values from the row stream, which means a row rendered
// at aperture 0 does not consume its stream at the same pace as a DoF row.
func LensSamples(cam scene.Camera) int {
	if cam.Aperture == 0 {
		return 1
	}
	return cam.Samples
}

// PixelTrace is the breakdown of one rendered pixel.
type PixelTrace struct {
	Base   mathutil.Vec3   // normalized pixel direction
	Rays   []mathutil.Vec3 // lens directions, in the order they were traced
	Colors []mathutil.Vec3 // shaded color of each ray
	Color  mathutil.Vec3   // average written to the frame buffer
}

// TracePixel recomputes pixel (x, y) of a w×h frame rendered with seed. It
// replays the row stream up to x, so the result matches what Render writes.
func TracePixel(sc *scene.Scene, cam scene.Camera, seed int64, x, y, w, h int) PixelTrace {
	s := lens.New(RowSeed(seed, y))
	n := LensSamples(cam)
	for i := 0; i < x*n; i++ {
		s.RandomInUnitDisk(cam.Aperture)
	}

	pt := PixelTrace{
		Base:   PixelDirection(x, y, w, h),
		Rays:   make([]mathutil.Vec3, n),
		Colors: make([]mathutil.Vec3, n),
	}
	var sum mathutil.Vec3
	for i := 0; i < n; i++ {
		pt.Rays[i] = s.RayDirection(cam, pt.Base.X(), pt.Base.Y())
		pt.Colors[i] = trace.TraceRay(cam.Position, pt.Rays[i], sc)
		sum = sum.Add(pt.Colors[i])
	}
	pt.Color = sum.Div(float64(n))
	return pt
}

// DefaultWorkers is the worker count used when none is configured.
func DefaultWorkers() int {
	return runtime.NumCPU()
}
