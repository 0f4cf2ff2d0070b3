package scene

import (
	"errors"
	"fmt"

	"github.com/Olluo/renderman-bottle/asset/material"
	"github.com/Olluo/renderman-bottle/types"
)

var (
	ErrInvalidDimensions = errors.New("scene: invalid dimensions")
	ErrInvalidSettings   = errors.New("scene: invalid render settings")
)

// The Camera is placed by translating the world away from the viewer.
type Camera struct {
	Translate types.Vec3
	FOV       float32
}

func DefaultCamera() Camera {
	return Camera{
		Translate: types.XYZ(0, 0, 3),
		FOV:       90,
	}
}

// A Layout describes everything placed in the world.
type Layout struct {
	Camera  Camera
	Light   DomeLight
	Bottles []Bottle
	Table   Table
}

// DefaultLayout returns two bottles of the given size standing on a table.
// The first bottle is 80% of the height of the second.
func DefaultLayout(height, radius float32) Layout {
	small := DefaultBottle()
	small.Height = height * 0.8
	small.Radius = radius
	small.Translate[0] = -0.5
	small.Rotate[1] = 30

	large := DefaultBottle()
	large.Height = height
	large.Radius = radius
	large.Translate[0] = 0.4
	large.Rotate[1] = -5

	return Layout{
		Camera:  DefaultCamera(),
		Light:   DefaultDomeLight(),
		Bottles: []Bottle{small, large},
		Table:   DefaultTable(),
	}
}

// Validate every object in the layout.
func (l Layout) Validate() error {
	if l.Camera.FOV <= 0 || l.Camera.FOV >= 180 {
		return fmt.Errorf("%w: camera fov must be in the (0, 180) range; got %g", ErrInvalidSettings, l.Camera.FOV)
	}
	for i, b := range l.Bottles {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("bottle %d: %w", i, err)
		}
	}
	return l.Table.Validate()
}

// Shaders returns the distinct shader names referenced by the materials of
// the layout, in first use order.
func (l Layout) Shaders() []string {
	var finishes []material.Finish
	for _, b := range l.Bottles {
		for _, c := range bottleComponents(b) {
			finishes = append(finishes, c.finishes...)
		}
	}
	finishes = append(finishes, tableFinishes...)

	seen := make(map[string]bool)
	var out []string
	for _, f := range finishes {
		for _, name := range material.Layered(f).Shaders() {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

// Settings control how the frame is rendered.
type Settings struct {
	// Image name and display driver (e.g. "it" or "openexr").
	Display  string
	Driver   string
	Channels string

	Width       int
	Height      int
	PixelAspect float32

	// Maximum samples per pixel for the incremental raytrace hider.
	Samples       int
	PixelVariance float32
	Integrator    string

	// Directory holding the compiled custom shaders. It is prepended to the
	// renderer's shader search path.
	ShaderPath string

	// Indent nested blocks in generated RIB.
	Indented bool
}

func DefaultSettings() Settings {
	return Settings{
		Display:       "Bottle.exr",
		Driver:        "it",
		Channels:      "rgba",
		Width:         1920,
		Height:        1080,
		PixelAspect:   1,
		Samples:       512,
		PixelVariance: 0.01,
		Integrator:    "PxrPathTracer",
		ShaderPath:    "shaders",
		Indented:      true,
	}
}

// Validate the settings.
func (s Settings) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: resolution must be positive; got %dx%d", ErrInvalidSettings, s.Width, s.Height)
	case s.Samples <= 0:
		return fmt.Errorf("%w: samples must be positive; got %d", ErrInvalidSettings, s.Samples)
	case s.PixelAspect <= 0:
		return fmt.Errorf("%w: pixel aspect must be positive; got %g", ErrInvalidSettings, s.PixelAspect)
	case s.PixelVariance < 0:
		return fmt.Errorf("%w: pixel variance cannot be negative; got %g", ErrInvalidSettings, s.PixelVariance)
	case s.Display == "" || s.Driver == "":
		return fmt.Errorf("%w: display name and driver are required", ErrInvalidSettings)
	case s.Integrator == "":
		return fmt.Errorf("%w: integrator is required", ErrInvalidSettings)
	}
	return nil
}
