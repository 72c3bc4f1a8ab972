package main

import (
	"flag"
	"fmt"
	"os"

	"sphere-dof-renderer/internal/config"
	"sphere-dof-renderer/internal/lens"
	"sphere-dof-renderer/internal/raster"
	"sphere-dof-renderer/internal/scene"
	"sphere-dof-renderer/internal/trace"
)

func main() {
	sceneFile := flag.String("scene", "", "Path to a JSON scene (default: built-in scene)")
	width := flag.Int("width", 0, "Image width (default: 800)")
	height := flag.Int("height", 0, "Image height (default: 600)")
	x := flag.Int("x", -1, "Pixel column to trace (default: center)")
	y := flag.Int("y", -1, "Pixel row to trace (default: center)")
	seed := flag.Int64("seed", 1, "Lens sampling seed")
	dump := flag.String("dump", "", "Write the resolved scene as JSON to this path")
	flag.Parse()

	cfg := config.Config{SceneFile: *sceneFile, Seed: *seed}
	cfg.Resolve(config.Flags{Width: *width, Height: *height})

	sc, err := cfg.LoadScene()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if *dump != "" {
		if err := scene.WriteFile(*dump, sc); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scene written to %s\n", *dump)
	}

	cam := sc.Camera
	fmt.Printf("Camera: pos=%v dir=%v aperture=%.3f focal=%.3f samples=%d\n",
		cam.Position, cam.Direction, cam.Aperture, cam.FocalLength, cam.Samples)
	for i, s := range sc.Spheres {
		fmt.Printf("  Sphere[%d]: center=%v radius=%g color=%v\n", i, s.Center, s.Radius, s.Color)
	}
	for i, l := range sc.Lights {
		fmt.Printf("  Light[%d]: position=%v color=%v\n", i, l.Position, l.Color)
	}

	px, py := *x, *y
	if px < 0 {
		px = cfg.Width / 2
	}
	if py < 0 {
		py = cfg.Height / 2
	}
	if px >= cfg.Width || py >= cfg.Height {
		fmt.Printf("Error: pixel (%d,%d) outside %dx%d\n", px, py, cfg.Width, cfg.Height)
		os.Exit(1)
	}

	pt := raster.TracePixel(sc, cam, cfg.Seed, px, py, cfg.Width, cfg.Height)
	fmt.Printf("\nPixel (%d,%d) of %dx%d: base direction %.4f\n", px, py, cfg.Width, cfg.Height, pt.Base)

	// The ray a pinhole camera would trace for this pixel.
	pinhole := cam
	pinhole.Aperture = 0
	center := lens.New(cfg.Seed).RayDirection(pinhole, pt.Base.X(), pt.Base.Y())
	if hit, ok := trace.Nearest(cam.Position, center, sc.Spheres); ok {
		fmt.Printf("  Center ray: dir=%.4f sphere %d at t=%.4f\n", center, hit.Index, hit.T)
	} else {
		fmt.Printf("  Center ray: dir=%.4f miss\n", center)
	}

	for i, dir := range pt.Rays {
		fmt.Printf("  Sample %2d: dir=%.4f color=%.4f\n", i, dir, pt.Colors[i])
	}

	fb := raster.NewFrameBuffer(1, 1)
	fb.Set(0, 0, pt.Color)
	p := fb.At(0, 0)
	fmt.Printf("  Average: %.4f → RGB(%d, %d, %d)\n", pt.Color, p.R, p.G, p.B)
}
