package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"sphere-dof-renderer/internal/batch"
	"sphere-dof-renderer/internal/config"
	"sphere-dof-renderer/internal/control"
	"sphere-dof-renderer/internal/output"
	"sphere-dof-renderer/internal/postprocess"
	"sphere-dof-renderer/internal/raster"
	"sphere-dof-renderer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Path to a JSON scene (default: built-in three-sphere scene)")
	outputPath := flag.String("output", "", "Output image: .webp, .tga, .png or .bmp (default: render.webp)")
	width := flag.Int("width", 0, "Image width (default: 800)")
	height := flag.Int("height", 0, "Image height (default: 600)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	seed := flag.Int64("seed", 0, "Lens sampling seed (default: from clock)")
	samples := flag.Int("samples", 0, "Depth-of-field samples per pixel (default: scene camera)")
	aperture := flag.Float64("aperture", -1, "Lens aperture (default: scene camera)")
	focal := flag.Float64("focal", 0, "Focal length (default: scene camera)")
	preview := flag.Int("preview", 0, "Also write a downscaled preview of this width")
	keys := flag.String("keys", "", "Replay camera keys (q/e aperture, r/f focal length), one frame per key")
	verbose := flag.Bool("v", false, "Debug logging to stderr")

	flag.Parse()

	if *verbose {
		raster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	flags := config.Flags{
		SceneFile:    *sceneFile,
		Output:       *outputPath,
		Width:        *width,
		Height:       *height,
		Workers:      *workers,
		Seed:         *seed,
		PreviewWidth: *preview,
	}
	if *samples != 0 {
		flags.Samples = samples
	}
	if *aperture >= 0 {
		flags.Aperture = aperture
	}
	if *focal != 0 {
		flags.FocalLength = focal
	}
	cfg.Resolve(flags)

	sc, err := cfg.LoadScene()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}
	if _, err := output.FormatFromPath(cfg.Output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	events, err := control.ParseKeys(*keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cam := sc.Camera
	fmt.Printf("Spheres: %d, Lights: %d\n", len(sc.Spheres), len(sc.Lights))
	fmt.Printf("Image: %dx%d, Samples: %d, Aperture: %.2f, Focal: %.2f, Seed: %d\n",
		cfg.Width, cfg.Height, cam.Samples, cam.Aperture, cam.FocalLength, cfg.Seed)

	if len(events) > 0 {
		replay(cfg, sc, events)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	fb := raster.NewFrameBuffer(cfg.Width, cfg.Height)
	if err := raster.RenderContext(ctx, fb, sc, cam, raster.Options{Workers: cfg.Workers, Seed: cfg.Seed}); err != nil {
		fmt.Fprintf(os.Stderr, "Render interrupted: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered in %.2fs\n", time.Since(start).Seconds())

	img := fb.Image()
	if err := output.WriteFile(cfg.Output, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Output: %s\n", cfg.Output)

	if cfg.PreviewWidth > 0 {
		previewPath := batch.PreviewPath(cfg.Output)
		if err := output.WriteFile(previewPath, postprocess.Downsample(img, cfg.PreviewWidth)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: preview write failed: %v\n", err)
		} else {
			fmt.Printf("Preview: %s\n", previewPath)
		}
	}
}

// replay renders the starting frame and one frame after every key event,
// as an interactive window would redraw after each key press.
func replay(cfg config.Config, sc *scene.Scene, events []control.Event) {
	frames := batch.Replay(sc.Camera, events, func(i int) string {
		return output.SequencePath(cfg.Output, i)
	})

	fmt.Printf("Replaying %d key events (%d frames)\n", len(events), len(frames))
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(batch.Config{
		Scene:        sc,
		Width:        cfg.Width,
		Height:       cfg.Height,
		Seed:         cfg.Seed,
		Workers:      cfg.Workers,
		PreviewWidth: cfg.PreviewWidth,
		Progress:     os.Stdout,
	}, frames)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			fmt.Printf("  frame %d: %s\n", r.Index, r.Error)
			continue
		}
		fmt.Printf("  %s  aperture=%.2f focal=%.2f\n", r.Path, r.Aperture, r.FocalLength)
	}
	if failed > 0 {
		os.Exit(1)
	}
}
