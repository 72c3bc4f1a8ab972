package scene

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"sphere-dof-renderer/internal/mathutil"
)

func TestNewSphere(t *testing.T) {
	tests := []struct {
		name    string
		radius  float64
		wantErr bool
	}{
		{"unit", 1, false},
		{"small", 1e-6, false},
		{"zero", 0, true},
		{"negative", -2, true},
		{"nan", math.NaN(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSphere(mathutil.Vec3{0, 0, -5}, tt.radius, mathutil.Vec3{1, 0, 0})
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRadius) {
					t.Fatalf("err = %v, want ErrInvalidRadius", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Radius != tt.radius {
				t.Errorf("Radius = %v, want %v", s.Radius, tt.radius)
			}
		})
	}
}

func TestNewCamera(t *testing.T) {
	pos := mathutil.Vec3{}
	dir := mathutil.Vec3{0, 0, -1}

	tests := []struct {
		name     string
		aperture float64
		focal    float64
		samples  int
		want     error
	}{
		{"valid", 0.1, 5, 10, nil},
		{"pinhole", 0, 1, 1, nil},
		{"zero samples", 0.1, 5, 0, ErrInvalidSamples},
		{"negative samples", 0.1, 5, -3, ErrInvalidSamples},
		{"negative aperture", -0.1, 5, 10, ErrInvalidAperture},
		{"short focal", 0.1, 0.5, 10, ErrInvalidFocalLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCamera(pos, dir, tt.aperture, tt.focal, tt.samples)
			if tt.want != nil {
				if !errors.Is(err, tt.want) {
					t.Fatalf("err = %v, want %v", err, tt.want)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Samples != tt.samples || c.Aperture != tt.aperture || c.FocalLength != tt.focal {
				t.Errorf("camera = %+v", c)
			}
		})
	}
}

func TestDefaultSceneIsValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("default scene invalid: %v", err)
	}
	if len(s.Spheres) != 3 || len(s.Lights) != 1 {
		t.Errorf("default scene has %d spheres and %d lights", len(s.Spheres), len(s.Lights))
	}
	if s.Camera.Samples != 10 || s.Camera.FocalLength != 5 {
		t.Errorf("default camera = %+v", s.Camera)
	}
}

func TestSceneValidateReportsSphereIndex(t *testing.T) {
	s := Default()
	s.Spheres[1].Radius = 0
	err := s.Validate()
	if !errors.Is(err, ErrInvalidRadius) {
		t.Fatalf("err = %v, want ErrInvalidRadius", err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	want := Default()
	if err := WriteFile(path, want); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Spheres) != len(want.Spheres) {
		t.Fatalf("spheres = %d, want %d", len(got.Spheres), len(want.Spheres))
	}
	for i := range want.Spheres {
		if got.Spheres[i] != want.Spheres[i] {
			t.Errorf("sphere %d = %+v, want %+v", i, got.Spheres[i], want.Spheres[i])
		}
	}
	if got.Camera != want.Camera {
		t.Errorf("camera = %+v, want %+v", got.Camera, want.Camera)
	}
}

func TestLoadFileRejectsInvalidScene(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	body := `{"spheres":[{"center":[0,0,-5],"radius":1,"color":[1,0,0]}],
		"camera":{"position":[0,0,0],"direction":[0,0,-1],"aperture":0.1,"focal_length":5,"samples":0}}`
	if err := os.WriteFile(bad, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); !errors.Is(err, ErrInvalidSamples) {
		t.Errorf("err = %v, want ErrInvalidSamples", err)
	}

	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(broken); err == nil {
		t.Error("expected parse error")
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}
