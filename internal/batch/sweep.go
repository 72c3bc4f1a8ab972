package batch

import (
	"fmt"
	"path/filepath"

	"sphere-dof-renderer/internal/control"
	"sphere-dof-renderer/internal/scene"
)

// Param selects the camera parameter varied by a sweep.
type Param string

const (
	SweepAperture    Param = "aperture"
	SweepFocalLength Param = "focal"
)

// Sweep builds steps frames that vary param linearly from from to to.
// Values are clamped to the same floors as interactive control. Frames are
// written to dir as frame_NNN.<ext>.
func Sweep(base scene.Camera, param Param, from, to float64, steps int, dir, ext string) ([]Frame, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("batch: sweep steps %d must be positive", steps)
	}

	frames := make([]Frame, steps)
	for i := range frames {
		v := from
		if steps > 1 {
			v = from + (to-from)*float64(i)/float64(steps-1)
		}

		cam := base
		switch param {
		case SweepAperture:
			cam.Aperture = max(v, control.MinAperture)
		case SweepFocalLength:
			cam.FocalLength = max(v, control.MinFocalLength)
		default:
			return nil, fmt.Errorf("batch: unknown sweep parameter %q", param)
		}

		frames[i] = Frame{
			Index:  i,
			Camera: cam,
			Path:   filepath.Join(dir, fmt.Sprintf("frame_%03d.%s", i, ext)),
		}
	}
	return frames, nil
}

// Replay builds one frame per prefix of events: frame 0 uses base and frame
// i uses base with the first i events applied, mirroring what an interactive
// window shows after each key press.
func Replay(base scene.Camera, events []control.Event, path func(int) string) []Frame {
	frames := make([]Frame, 0, len(events)+1)
	cam := base
	frames = append(frames, Frame{Index: 0, Camera: cam, Path: path(0)})
	for i, e := range events {
		cam = control.Apply(cam, e)
		frames = append(frames, Frame{Index: i + 1, Camera: cam, Path: path(i + 1)})
	}
	return frames
}
