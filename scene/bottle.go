package scene

import (
	"fmt"

	"github.com/Olluo/renderman-bottle/asset/material"
	"github.com/Olluo/renderman-bottle/log"
	"github.com/Olluo/renderman-bottle/ri"
	"github.com/Olluo/renderman-bottle/types"
)

const (
	bodyHeightRatio = 0.8
	capHeight       = 0.2
	capInset        = 0.01
	capLockRadius   = 0.25
	capLockOffset   = 1.1
)

// A Bottle is a water bottle with a cylindrical body and a two-part cap with
// a lock on its back.
type Bottle struct {
	// Overall height; the body takes 80% of it.
	Height float32

	// Body radius; the cap is slightly narrower.
	Radius float32

	Transform
}

// DefaultBottle returns the default bottle standing on the default table.
func DefaultBottle() Bottle {
	return Bottle{
		Height: 2.5,
		Radius: 0.4,
		Transform: Transform{
			Translate: types.XYZ(0, -1.5, 0),
			Scale:     types.XYZ(1, 1, 1),
		},
	}
}

// BodyHeight returns the height of the bottle body.
func (b Bottle) BodyHeight() float32 {
	return b.Height * bodyHeightRatio
}

// CapRadius returns the radius of both cap parts.
func (b Bottle) CapRadius() float32 {
	return b.Radius - capInset
}

// Validate the bottle dimensions.
func (b Bottle) Validate() error {
	if b.Height <= 0 {
		return fmt.Errorf("%w: bottle height must be positive; got %g", ErrInvalidDimensions, b.Height)
	}
	if b.Radius <= 0 {
		return fmt.Errorf("%w: bottle radius must be positive; got %g", ErrInvalidDimensions, b.Radius)
	}
	if b.CapRadius() <= 0 {
		return fmt.Errorf("%w: bottle radius %g leaves no room for the cap", ErrInvalidDimensions, b.Radius)
	}
	return nil
}

// A BottleMaker draws bottles against a rendering interface.
type BottleMaker struct {
	ri     ri.Interface
	logger log.Logger
}

func NewBottleMaker(r ri.Interface) *BottleMaker {
	return &BottleMaker{
		ri:     r,
		logger: log.New("bottle maker"),
	}
}

// Draw a bottle. The cap always sits on top of the body and the lock is
// attached to the back of the cap.
func (bm *BottleMaker) Draw(b Bottle) error {
	if err := b.Validate(); err != nil {
		return err
	}
	bm.logger.Debugf("drawing bottle (height %g, radius %g) at %v", b.Height, b.Radius, b.Translate)

	bm.ri.ArchiveRecord(ri.Comment, "Drawing bottle")
	bm.ri.TransformBegin()
	b.Transform.Apply(bm.ri)

	for _, c := range bottleComponents(b) {
		if err := c.draw(bm.ri); err != nil {
			return err
		}
	}

	bm.ri.ArchiveRecord(ri.Comment, "End of bottle drawing")
	bm.ri.TransformEnd()
	return bm.ri.Err()
}

// The body, both cap parts and the lock, in drawing order.
func bottleComponents(b Bottle) []cylinder {
	bodyHeight := b.BodyHeight()
	capRadius := b.CapRadius()

	components := []cylinder{
		{
			name:      "bottleBody",
			coordSys:  "bodyCoordinates",
			finishes:  []material.Finish{material.Plastic},
			radius:    b.Radius,
			height:    bodyHeight,
			transform: componentTransform(0, 0, 0),
		},
		{
			name:      "bottleCapBottom",
			coordSys:  "capBottomCoordinates",
			finishes:  []material.Finish{material.Rubber, material.BlackPlastic},
			radius:    capRadius,
			height:    capHeight,
			transform: componentTransform(0, bodyHeight, 0),
		},
		{
			name:      "bottleCapTop",
			coordSys:  "capTopCoordinates",
			finishes:  []material.Finish{material.ClearPlastic},
			radius:    capRadius,
			height:    capHeight,
			transform: componentTransform(0, bodyHeight+capHeight, 0),
		},
	}

	lock := cylinder{
		name:      "bottleCapLock",
		coordSys:  "capLockCoordinates",
		finishes:  []material.Finish{material.CapLock},
		radius:    capLockRadius,
		height:    capHeight,
		transform: componentTransform(0, bodyHeight+capHeight, -capRadius*capLockOffset),
	}
	lock.transform.Scale = types.XYZ(0.4, 0.6, 1)
	lock.transform.Rotate[0] = 0
	return append(components, lock)
}

// Cylinders are modelled along Z, so components are rotated to stand upright
// by default.
func componentTransform(x, y, z float32) Transform {
	return Transform{
		Translate: types.XYZ(x, y, z),
		Rotate:    types.XYZ(-90, 0, 0),
		Scale:     types.XYZ(1, 1, 1),
	}
}

// A cylinder is a capped cylindrical part with its own shading.
type cylinder struct {
	name      string
	coordSys  string
	finishes  []material.Finish
	radius    float32
	height    float32
	transform Transform
}

func (c cylinder) draw(r ri.Interface) error {
	r.ArchiveRecord(ri.Comment, "Drawing "+c.name)
	r.AttributeBegin()
	r.Attribute("identifier", ri.Params{ri.String("name", c.name)})

	if err := applyShading(r, c.coordSys, c.finishes); err != nil {
		return fmt.Errorf("%s: %w", c.name, err)
	}

	r.TransformBegin()
	c.transform.Apply(r)

	r.Disk(0, c.radius, 360)
	r.Cylinder(c.radius, 0, c.height, 360)
	r.Disk(c.height, c.radius, 360)

	r.TransformEnd()
	r.AttributeEnd()
	return nil
}

// Declare the shading coordinate system and emit a network per finish.
func applyShading(r ri.Interface, coordSys string, finishes []material.Finish) error {
	r.CoordinateSystem(coordSys)
	for _, f := range finishes {
		f.CoordSys = coordSys
		if err := material.Layered(f).Emit(r); err != nil {
			return err
		}
	}
	return nil
}
