package batch

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"sphere-dof-renderer/internal/output"
	"sphere-dof-renderer/internal/postprocess"
	"sphere-dof-renderer/internal/raster"
	"sphere-dof-renderer/internal/scene"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Scene        *scene.Scene
	Width        int
	Height       int
	Seed         int64
	Workers      int
	PreviewWidth int

	// Progress receives a status line every ProgressInterval; nil is silent.
	Progress         io.Writer
	ProgressInterval time.Duration
}

// Frame is one image of a batch: a camera and the file it is written to.
type Frame struct {
	Index  int
	Camera scene.Camera
	Path   string
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index       int
	Path        string
	Preview     string
	Seed        int64
	Aperture    float64
	FocalLength float64
	Elapsed     time.Duration
	Success     bool
	Error       string
}

// Run renders all frames using a worker pool. Every frame is rendered on a
// single goroutine; parallelism is across frames. Results are returned in
// frame order.
func Run(cfg Config, frames []Frame) []Result {
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = raster.DefaultWorkers()
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil {
		interval := cfg.ProgressInterval
		if interval <= 0 {
			interval = 2 * time.Second
		}
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.2f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, frames[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// FrameSeed derives the seed of a frame so that reruns reproduce each frame
// regardless of scheduling.
func FrameSeed(seed int64, index int) int64 {
	return seed + int64(index)*1_000_003
}

func processFrame(cfg Config, fr Frame) Result {
	res := Result{
		Index:       fr.Index,
		Path:        fr.Path,
		Seed:        FrameSeed(cfg.Seed, fr.Index),
		Aperture:    fr.Camera.Aperture,
		FocalLength: fr.Camera.FocalLength,
	}

	if err := fr.Camera.Validate(); err != nil {
		res.Error = err.Error()
		return res
	}

	start := time.Now()
	fb := raster.NewFrameBuffer(cfg.Width, cfg.Height)
	raster.Render(fb, cfg.Scene, fr.Camera, raster.Options{Workers: 1, Seed: res.Seed})
	img := fb.Image()

	if err := output.WriteFile(fr.Path, img); err != nil {
		res.Error = err.Error()
		return res
	}

	if cfg.PreviewWidth > 0 {
		res.Preview = PreviewPath(fr.Path)
		if err := output.WriteFile(res.Preview, postprocess.Downsample(img, cfg.PreviewWidth)); err != nil {
			res.Error = fmt.Sprintf("preview: %v", err)
			return res
		}
	}

	res.Elapsed = time.Since(start)
	res.Success = true
	raster.Logger().Info("frame written", "index", fr.Index, "path", fr.Path, "elapsed", res.Elapsed)
	return res
}

// PreviewPath returns the thumbnail path next to a frame path.
func PreviewPath(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + "_preview" + ext
}
