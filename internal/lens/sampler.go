// Package lens generates jittered primary rays for a thin-lens camera.
package lens

import (
	"math"
	"math/rand"

	"sphere-dof-renderer/internal/mathutil"
	"sphere-dof-renderer/internal/scene"
)

// Sampler owns the random stream used for lens jitter.
// A Sampler is not safe for concurrent use; give each goroutine its own.
type Sampler struct {
	random *rand.Rand
}

// New returns a Sampler with a deterministic stream for the given seed.
func New(seed int64) *Sampler {
	return &Sampler{random: rand.New(rand.NewSource(seed))}
}

// RandomInUnitDisk returns a point distributed uniformly over a disk of the
// given radius in the lens (XY) plane. Z is always zero.
func (s *Sampler) RandomInUnitDisk(radius float64) mathutil.Vec3 {
	theta := 2 * math.Pi * s.random.Float64()
	r := radius * math.Sqrt(s.random.Float64())
	return mathutil.Vec3{r * math.Cos(theta), r * math.Sin(theta), 0}
}

// RayDirection returns the unit direction from a jittered lens position to the
// focal point of the nominal ray through (u, v, -1). All jittered rays for one
// (u, v) converge at FocalLength along the nominal ray.
func (s *Sampler) RayDirection(cam scene.Camera, u, v float64) mathutil.Vec3 {
	nominal := mathutil.Vec3{u, v, -1}.Normalize()
	focal := cam.Position.Add(nominal.Scale(cam.FocalLength))

	origin := cam.Position.Add(s.RandomInUnitDisk(cam.Aperture))
	return focal.Sub(origin).Normalize()
}
