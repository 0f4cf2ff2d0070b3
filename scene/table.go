package scene

import (
	"fmt"

	"github.com/Olluo/renderman-bottle/asset/material"
	"github.com/Olluo/renderman-bottle/log"
	"github.com/Olluo/renderman-bottle/ri"
	"github.com/Olluo/renderman-bottle/types"
)

// A Table is a box shaped table top.
type Table struct {
	Width  float32
	Height float32
	Depth  float32

	Transform
}

func DefaultTable() Table {
	return Table{
		Width:  3.75,
		Height: 0.3,
		Depth:  3,
		Transform: Transform{
			Translate: types.XYZ(0, -1.65, 0),
			Rotate:    types.XYZ(0, 70, 0),
			Scale:     types.XYZ(1, 1, 1),
		},
	}
}

// Validate the table dimensions.
func (t Table) Validate() error {
	if t.Width <= 0 || t.Height <= 0 || t.Depth <= 0 {
		return fmt.Errorf("%w: table dimensions must be positive; got %gx%gx%g", ErrInvalidDimensions, t.Width, t.Height, t.Depth)
	}
	return nil
}

const tableCoordSys = "tableCoordinates"

var tableFinishes = []material.Finish{material.Wood}

// A TableMaker draws tables against a rendering interface.
type TableMaker struct {
	ri     ri.Interface
	logger log.Logger
}

func NewTableMaker(r ri.Interface) *TableMaker {
	return &TableMaker{
		ri:     r,
		logger: log.New("table maker"),
	}
}

// Draw a table.
func (tm *TableMaker) Draw(t Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	tm.logger.Debugf("drawing table (%gx%gx%g) at %v", t.Width, t.Height, t.Depth, t.Translate)

	tm.ri.ArchiveRecord(ri.Comment, "Drawing table")
	tm.ri.AttributeBegin()
	tm.ri.Attribute("identifier", ri.Params{ri.String("name", "table")})

	if err := applyShading(tm.ri, tableCoordSys, tableFinishes); err != nil {
		return fmt.Errorf("table: %w", err)
	}

	tm.ri.TransformBegin()
	t.Transform.Apply(tm.ri)

	for _, face := range CubeFaces(t.Width, t.Height, t.Depth) {
		tm.ri.Patch(ri.Bilinear, ri.Params{ri.Points(ri.P, face[:])})
	}

	tm.ri.ArchiveRecord(ri.Comment, "End of table drawing")
	tm.ri.TransformEnd()
	tm.ri.AttributeEnd()
	return tm.ri.Err()
}

// CubeFaces returns the four corner points of each face of a box centred on
// the origin, in rear, front, left, right, bottom and top order. Each face is
// suitable for a bilinear patch.
func CubeFaces(width, height, depth float32) [6][12]float32 {
	w := width / 2.0
	h := height / 2.0
	d := depth / 2.0

	return [6][12]float32{
		// rear
		{-w, -h, d, -w, h, d, w, -h, d, w, h, d},
		// front
		{-w, -h, -d, -w, h, -d, w, -h, -d, w, h, -d},
		// left
		{-w, -h, -d, -w, h, -d, -w, -h, d, -w, h, d},
		// right
		{w, -h, -d, w, h, -d, w, -h, d, w, h, d},
		// bottom
		{w, -h, d, w, -h, -d, -w, -h, d, -w, -h, -d},
		// top
		{w, h, d, w, h, -d, -w, h, d, -w, h, -d},
	}
}
