// Package trace implements ray–sphere intersection and direct diffuse shading.
package trace

import (
	"math"

	"sphere-dof-renderer/internal/mathutil"
	"sphere-dof-renderer/internal/scene"
)

// Hit describes the nearest intersection found by Nearest.
// Index refers into the sphere slice passed to Nearest and is only
// meaningful while that slice is alive.
type Hit struct {
	T     float64
	Index int
}

// IntersectSphere solves |o + t·d − c|² = r² and returns the near root.
// The hit is rejected when the near root is negative, which includes every
// ray whose origin lies inside the sphere.
func IntersectSphere(origin, dir mathutil.Vec3, s scene.Sphere) (float64, bool) {
	oc := origin.Sub(s.Center)
	a := dir.Dot(dir)
	b := 2 * oc.Dot(dir)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	t := (-b - math.Sqrt(disc)) / (2 * a)
	return t, t >= 0
}

// Nearest scans spheres in order and keeps the smallest accepted t.
// On equal t the first sphere seen wins.
func Nearest(origin, dir mathutil.Vec3, spheres []scene.Sphere) (Hit, bool) {
	best := Hit{T: math.MaxFloat64, Index: -1}
	for i := range spheres {
		t, ok := IntersectSphere(origin, dir, spheres[i])
		if ok && t < best.T {
			best = Hit{T: t, Index: i}
		}
	}
	return best, best.Index >= 0
}
