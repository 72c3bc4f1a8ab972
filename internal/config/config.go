package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"sphere-dof-renderer/internal/scene"
)

// Config holds the scene source, output location and render settings.
type Config struct {
	// Paths
	SceneFile string `json:"scene_file"`
	Output    string `json:"output"`

	// Render settings
	Width        int   `json:"width"`
	Height       int   `json:"height"`
	Workers      int   `json:"workers"`
	Seed         int64 `json:"seed"`
	PreviewWidth int   `json:"preview_width"`

	// Camera overrides; nil keeps the scene's value.
	Samples     *int     `json:"samples,omitempty"`
	Aperture    *float64 `json:"aperture,omitempty"`
	FocalLength *float64 `json:"focal_length,omitempty"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.SceneFile != "" && !filepath.IsAbs(cfg.SceneFile) {
		cfg.SceneFile = filepath.Join(filepath.Dir(path), cfg.SceneFile)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values and nil pointers mean "not set".
type Flags struct {
	SceneFile    string
	Output       string
	Width        int
	Height       int
	Workers      int
	Seed         int64
	PreviewWidth int
	Samples      *int
	Aperture     *float64
	FocalLength  *float64
}

// Resolve applies CLI overrides and fills in defaults.
// A zero seed after overrides is replaced by one taken from the clock.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.SceneFile != "" {
		c.SceneFile = flags.SceneFile
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.PreviewWidth > 0 {
		c.PreviewWidth = flags.PreviewWidth
	}
	if flags.Samples != nil {
		c.Samples = flags.Samples
	}
	if flags.Aperture != nil {
		c.Aperture = flags.Aperture
	}
	if flags.FocalLength != nil {
		c.FocalLength = flags.FocalLength
	}

	// Defaults
	if c.Output == "" {
		c.Output = "render.webp"
	}
	if c.Width <= 0 {
		c.Width = scene.DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = scene.DefaultHeight
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
}

// LoadScene returns the configured scene file, or the built-in scene when
// none is set, with camera overrides applied and validated.
func (c *Config) LoadScene() (*scene.Scene, error) {
	var sc *scene.Scene
	if c.SceneFile == "" {
		sc = scene.Default()
	} else {
		var err error
		sc, err = scene.LoadFile(c.SceneFile)
		if err != nil {
			return nil, err
		}
	}

	if c.Samples != nil {
		sc.Camera.Samples = *c.Samples
	}
	if c.Aperture != nil {
		sc.Camera.Aperture = *c.Aperture
	}
	if c.FocalLength != nil {
		sc.Camera.FocalLength = *c.FocalLength
	}
	if err := sc.Camera.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return sc, nil
}
