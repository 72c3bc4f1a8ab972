package lens

import (
	"math"
	"testing"

	"sphere-dof-renderer/internal/mathutil"
	"sphere-dof-renderer/internal/scene"
)

func TestRandomInUnitDiskBounds(t *testing.T) {
	s := New(1)
	for _, radius := range []float64{0, 0.01, 0.5, 1, 3} {
		for i := 0; i < 5000; i++ {
			p := s.RandomInUnitDisk(radius)
			if p[2] != 0 {
				t.Fatalf("z = %v, want 0", p[2])
			}
			if d := p[0]*p[0] + p[1]*p[1]; d > radius*radius+1e-12 {
				t.Fatalf("radius %v: x²+y² = %v exceeds r²", radius, d)
			}
		}
	}
}

func TestRandomInUnitDiskCoversDisk(t *testing.T) {
	s := New(7)
	var quadrants [4]int
	var inner int
	const n = 20000
	for i := 0; i < n; i++ {
		p := s.RandomInUnitDisk(1)
		q := 0
		if p[0] < 0 {
			q |= 1
		}
		if p[1] < 0 {
			q |= 2
		}
		quadrants[q]++
		if p[0]*p[0]+p[1]*p[1] < 0.25 {
			inner++
		}
	}
	for q, c := range quadrants {
		if c < n/4-n/20 || c > n/4+n/20 {
			t.Errorf("quadrant %d has %d samples, want about %d", q, c, n/4)
		}
	}
	// Uniform area density puts a quarter of the samples inside r = 0.5.
	if inner < n/4-n/20 || inner > n/4+n/20 {
		t.Errorf("inner disk has %d samples, want about %d", inner, n/4)
	}
}

func TestSamplerDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		if pa, pb := a.RandomInUnitDisk(1), b.RandomInUnitDisk(1); pa != pb {
			t.Fatalf("sample %d differs: %v vs %v", i, pa, pb)
		}
	}
}

func TestRayDirectionPinhole(t *testing.T) {
	cam := scene.Camera{Direction: mathutil.Vec3{0, 0, -1}, Aperture: 0, FocalLength: 5, Samples: 1}
	s := New(3)

	want := mathutil.Vec3{0.2, -0.1, -1}.Normalize()
	for i := 0; i < 10; i++ {
		d := s.RayDirection(cam, 0.2, -0.1)
		for k := range d {
			if math.Abs(d[k]-want[k]) > 1e-12 {
				t.Fatalf("direction = %v, want %v", d, want)
			}
		}
	}
}

func TestRayDirectionConvergesAtFocalPoint(t *testing.T) {
	cam := scene.Camera{
		Position:    mathutil.Vec3{0.5, -0.25, 1},
		Direction:   mathutil.Vec3{0, 0, -1},
		Aperture:    0.4,
		FocalLength: 3,
		Samples:     1,
	}
	u, v := 0.1, 0.3
	focal := cam.Position.Add(mathutil.Vec3{u, v, -1}.Normalize().Scale(cam.FocalLength))

	// Replaying the same stream reproduces the lens offset used by RayDirection.
	s, replay := New(11), New(11)
	for i := 0; i < 200; i++ {
		d := s.RayDirection(cam, u, v)
		origin := cam.Position.Add(replay.RandomInUnitDisk(cam.Aperture))

		if math.Abs(d.Len()-1) > 1e-12 {
			t.Fatalf("|d| = %v, want 1", d.Len())
		}
		toFocal := focal.Sub(origin)
		// d must be parallel to origin→focal and point the same way.
		if c := d.Cross(toFocal); c.Len() > 1e-9 {
			t.Fatalf("sample %d misses focal point by %v", i, c.Len())
		}
		if d.Dot(toFocal) <= 0 {
			t.Fatalf("sample %d points away from the focal point", i)
		}
	}
}
