package trace

import (
	"math"

	"sphere-dof-renderer/internal/mathutil"
	"sphere-dof-renderer/internal/scene"
)

// Background is returned for rays that hit nothing.
var Background = mathutil.Vec3{0, 0, 0}

// Shade sums the Lambertian contribution of every light at the hit point.
// The result is unclamped; there is no ambient, specular or shadow term.
func Shade(origin, dir mathutil.Vec3, t float64, s scene.Sphere, lights []scene.Light) mathutil.Vec3 {
	p := origin.Add(dir.Scale(t))
	n := p.Sub(s.Center).Normalize()

	var c mathutil.Vec3
	for _, l := range lights {
		ld := l.Position.Sub(p).Normalize()
		diffuse := math.Max(n.Dot(ld), 0)
		c = c.Add(s.Color.Scale(diffuse))
	}
	return c
}

// TraceRay returns the shaded color of the nearest sphere along the ray, or
// Background when nothing is hit.
func TraceRay(origin, dir mathutil.Vec3, sc *scene.Scene) mathutil.Vec3 {
	hit, ok := Nearest(origin, dir, sc.Spheres)
	if !ok {
		return Background
	}
	return Shade(origin, dir, hit.T, sc.Spheres[hit.Index], sc.Lights)
}
