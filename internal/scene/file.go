package scene

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads a JSON scene description and validates it.
//
//	{
//	  "spheres": [{"center": [0, 0, -5], "radius": 1, "color": [1, 0, 0]}],
//	  "lights":  [{"position": [0, 5, 0], "color": [1, 1, 1]}],
//	  "camera":  {"position": [0, 0, 0], "direction": [0, 0, -1],
//	              "aperture": 0.1, "focal_length": 5, "samples": 10}
//	}
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	return &s, nil
}

// WriteFile stores s as indented JSON.
func WriteFile(path string, s *Scene) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
