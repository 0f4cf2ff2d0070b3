package scene

import (
	"github.com/Olluo/renderman-bottle/ri"
	"github.com/Olluo/renderman-bottle/types"
)

// A Transform positions an object. It is applied as a translation followed
// by a scale and then rotations about the X, Y and Z axes, in degrees.
type Transform struct {
	Translate types.Vec3
	Rotate    types.Vec3
	Scale     types.Vec3
}

// Identity returns a transform that leaves objects unchanged.
func Identity() Transform {
	return Transform{Scale: types.XYZ(1, 1, 1)}
}

// Apply issues the transform against r.
func (t Transform) Apply(r ri.Interface) {
	r.Translate(t.Translate[0], t.Translate[1], t.Translate[2])

	r.Scale(t.Scale[0], t.Scale[1], t.Scale[2])

	r.Rotate(t.Rotate[0], 1, 0, 0)
	r.Rotate(t.Rotate[1], 0, 1, 0)
	r.Rotate(t.Rotate[2], 0, 0, 1)
}
