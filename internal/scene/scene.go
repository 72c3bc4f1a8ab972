package scene

import (
	"errors"
	"fmt"

	"sphere-dof-renderer/internal/mathutil"
)

var (
	ErrInvalidRadius      = errors.New("radius must be positive")
	ErrInvalidSamples     = errors.New("sample count must be positive")
	ErrInvalidAperture    = errors.New("aperture must not be negative")
	ErrInvalidFocalLength = errors.New("focal length must be at least 1")
)

// Sphere is an analytic sphere primitive with a flat diffuse color.
type Sphere struct {
	Center mathutil.Vec3 `json:"center"`
	Radius float64       `json:"radius"`
	Color  mathutil.Vec3 `json:"color"`
}

// Light is a point light. Color is carried for configuration completeness;
// shading uses the sphere color only.
type Light struct {
	Position mathutil.Vec3 `json:"position"`
	Color    mathutil.Vec3 `json:"color"`
}

// Camera is a thin-lens pinhole looking down -Z from Position.
// Direction is informational: ray generation always uses the -Z view axis.
type Camera struct {
	Position    mathutil.Vec3 `json:"position"`
	Direction   mathutil.Vec3 `json:"direction"`
	Aperture    float64       `json:"aperture"`
	FocalLength float64       `json:"focal_length"`
	Samples     int           `json:"samples"`
}

// Scene is the per-frame immutable input to the renderer.
type Scene struct {
	Spheres []Sphere `json:"spheres"`
	Lights  []Light  `json:"lights"`
	Camera  Camera   `json:"camera"`
}

// NewSphere validates the radius and returns a Sphere.
func NewSphere(center mathutil.Vec3, radius float64, color mathutil.Vec3) (Sphere, error) {
	if !(radius > 0) {
		return Sphere{}, fmt.Errorf("scene: sphere at %v radius %g: %w", center, radius, ErrInvalidRadius)
	}
	return Sphere{Center: center, Radius: radius, Color: color}, nil
}

// NewCamera validates the lens parameters and sample count.
func NewCamera(pos, dir mathutil.Vec3, aperture, focalLength float64, samples int) (Camera, error) {
	c := Camera{
		Position:    pos,
		Direction:   dir,
		Aperture:    aperture,
		FocalLength: focalLength,
		Samples:     samples,
	}
	if err := c.Validate(); err != nil {
		return Camera{}, err
	}
	return c, nil
}

// Validate reports the first invalid camera parameter.
func (c Camera) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("scene: camera samples %d: %w", c.Samples, ErrInvalidSamples)
	}
	if c.Aperture < 0 {
		return fmt.Errorf("scene: camera aperture %g: %w", c.Aperture, ErrInvalidAperture)
	}
	if c.FocalLength < 1 {
		return fmt.Errorf("scene: camera focal length %g: %w", c.FocalLength, ErrInvalidFocalLength)
	}
	return nil
}

// Validate checks every sphere and the camera. Lights need no validation.
func (s *Scene) Validate() error {
	for i, sp := range s.Spheres {
		if !(sp.Radius > 0) {
			return fmt.Errorf("scene: sphere %d radius %g: %w", i, sp.Radius, ErrInvalidRadius)
		}
	}
	return s.Camera.Validate()
}
