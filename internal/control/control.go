// Package control turns camera control events into new Camera values.
// Events are applied between frames; a Camera is never mutated in place.
package control

import (
	"fmt"
	"math"

	"sphere-dof-renderer/internal/scene"
)

// Event is a single camera adjustment.
type Event int

const (
	DecreaseAperture Event = iota
	IncreaseAperture
	DecreaseFocalLength
	IncreaseFocalLength
)

// Step sizes and floors for camera adjustment.
const (
	ApertureStep    = 0.01
	FocalLengthStep = 0.5
	MinAperture     = 0.01
	MinFocalLength  = 1.0
)

func (e Event) String() string {
	switch e {
	case DecreaseAperture:
		return "decrease-aperture"
	case IncreaseAperture:
		return "increase-aperture"
	case DecreaseFocalLength:
		return "decrease-focal-length"
	case IncreaseFocalLength:
		return "increase-focal-length"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// Apply returns cam adjusted by e. Decreases saturate at MinAperture and
// MinFocalLength; increases have no ceiling.
func Apply(cam scene.Camera, e Event) scene.Camera {
	switch e {
	case DecreaseAperture:
		cam.Aperture = math.Max(cam.Aperture-ApertureStep, MinAperture)
	case IncreaseAperture:
		cam.Aperture += ApertureStep
	case DecreaseFocalLength:
		cam.FocalLength = math.Max(cam.FocalLength-FocalLengthStep, MinFocalLength)
	case IncreaseFocalLength:
		cam.FocalLength += FocalLengthStep
	}
	return cam
}

// ApplyAll applies events in order.
func ApplyAll(cam scene.Camera, events []Event) scene.Camera {
	for _, e := range events {
		cam = Apply(cam, e)
	}
	return cam
}

// KeyEvent maps the interactive key bindings: q/e change the aperture,
// r/f change the focal length.
func KeyEvent(key rune) (Event, bool) {
	switch key {
	case 'q', 'Q':
		return DecreaseAperture, true
	case 'e', 'E':
		return IncreaseAperture, true
	case 'r', 'R':
		return DecreaseFocalLength, true
	case 'f', 'F':
		return IncreaseFocalLength, true
	}
	return 0, false
}

// ParseKeys converts a key sequence such as "qqef" into events. Whitespace
// is ignored; any other unbound key is an error.
func ParseKeys(keys string) ([]Event, error) {
	var events []Event
	for i, k := range keys {
		switch k {
		case ' ', '\t', '\n', ',':
			continue
		}
		e, ok := KeyEvent(k)
		if !ok {
			return nil, fmt.Errorf("control: unbound key %q at offset %d", k, i)
		}
		events = append(events, e)
	}
	return events, nil
}
