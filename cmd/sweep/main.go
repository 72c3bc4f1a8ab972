package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"sphere-dof-renderer/internal/batch"
	"sphere-dof-renderer/internal/config"
	"sphere-dof-renderer/internal/output"
	"sphere-dof-renderer/internal/raster"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Path to a JSON scene (default: built-in three-sphere scene)")
	outputDir := flag.String("output", "sweep", "Output directory")
	format := flag.String("format", "webp", "Frame format: webp, tga, png or bmp")
	param := flag.String("param", "focal", "Swept parameter: focal or aperture")
	from := flag.Float64("from", 1, "First value")
	to := flag.Float64("to", 10, "Last value")
	steps := flag.Int("steps", 10, "Number of frames")
	width := flag.Int("width", 0, "Image width (default: 800)")
	height := flag.Int("height", 0, "Image height (default: 600)")
	workers := flag.Int("workers", 0, "Number of frames rendered in parallel (default: NumCPU)")
	seed := flag.Int64("seed", 0, "Lens sampling seed (default: from clock)")
	samples := flag.Int("samples", 0, "Depth-of-field samples per pixel (default: scene camera)")
	preview := flag.Int("preview", 0, "Also write downscaled previews of this width")
	verbose := flag.Bool("v", false, "Debug logging to stderr")

	flag.Parse()

	if *verbose {
		raster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	flags := config.Flags{
		SceneFile:    *sceneFile,
		Width:        *width,
		Height:       *height,
		Workers:      *workers,
		Seed:         *seed,
		PreviewWidth: *preview,
	}
	if *samples != 0 {
		flags.Samples = samples
	}
	cfg.Resolve(flags)

	sc, err := cfg.LoadScene()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	if _, err := output.FormatFromPath("frame." + *format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	frames, err := batch.Sweep(sc.Camera, batch.Param(*param), *from, *to, *steps, *outputDir, *format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Depth-of-field sweep: %s %.2f → %.2f\n", *param, *from, *to)
	fmt.Printf("Frames: %d, Size: %dx%d, Samples: %d, Workers: %d\n", len(frames), cfg.Width, cfg.Height, sc.Camera.Samples, cfg.Workers)
	fmt.Printf("Output: %s\n", *outputDir)
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

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(frames))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Index, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(*outputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
