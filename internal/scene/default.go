package scene

import "sphere-dof-renderer/internal/mathutil"

// Default output resolution.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Default returns the built-in scene: red, green and blue unit spheres five
// units in front of the camera, lit by one white light above the origin.
func Default() *Scene {
	return &Scene{
		Spheres: []Sphere{
			{Center: mathutil.Vec3{-1, 0, -5}, Radius: 1, Color: mathutil.Vec3{1, 0, 0}},
			{Center: mathutil.Vec3{1, 0, -5}, Radius: 1, Color: mathutil.Vec3{0, 1, 0}},
			{Center: mathutil.Vec3{0, -1, -5}, Radius: 1, Color: mathutil.Vec3{0, 0, 1}},
		},
		Lights: []Light{
			{Position: mathutil.Vec3{0, 5, 0}, Color: mathutil.Vec3{1, 1, 1}},
		},
		Camera: Camera{
			Position:    mathutil.Vec3{0, 0, 0},
			Direction:   mathutil.Vec3{0, 0, -1},
			Aperture:    0.1,
			FocalLength: 5,
			Samples:     10,
		},
	}
}
