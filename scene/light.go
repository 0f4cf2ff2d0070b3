package scene

import (
	"errors"

	"github.com/Olluo/renderman-bottle/ri"
)

// A DomeLight lights the scene from an environment map.
type DomeLight struct {
	Exposure float32

	// Path to the prepared (.tex) environment map.
	ColorMap string

	// Rotation about Y that selects the visible part of the map.
	Rotation float32
}

func DefaultDomeLight() DomeLight {
	return DomeLight{
		Exposure: 0,
		ColorMap: "../img/lookout_4k.tex",
		Rotation: 50,
	}
}

// AddHdrLight adds an HDR dome light to the scene.
func AddHdrLight(r ri.Interface, l DomeLight) error {
	if l.ColorMap == "" {
		return errors.New("scene: dome light requires a color map")
	}

	r.ArchiveRecord(ri.Comment, "Adding HDR Light")
	r.AttributeBegin()
	r.TransformBegin()

	r.Rotate(l.Rotation, 0, 1, 0)
	// Environment maps are Y-up; turn the dome the right way up
	r.Rotate(-90, 1, 0, 0)
	// and undo the mirroring of the map.
	r.Scale(1, -1, 1)

	r.Light("PxrDomeLight", "hdrLight", ri.Params{
		ri.Float("exposure", l.Exposure),
		ri.String("lightColorMap", l.ColorMap),
	})

	r.TransformEnd()
	r.AttributeEnd()
	return r.Err()
}
