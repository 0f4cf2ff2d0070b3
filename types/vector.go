package types

import (
	"golang.org/x/image/math/f32"
)

type Vec3 f32.Vec3

// Define a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Slice returns the components as a slice suitable for a parameter list.
func (v Vec3) Slice() []float32 {
	return []float32{v[0], v[1], v[2]}
}

// An RGB colour with components in the [0, 1] range.
type Color Vec3

// RGB defines a colour from normalized components.
func RGB(r, g, b float32) Color {
	return Color{r, g, b}
}

// RGB8 defines a colour from 8-bit components.
func RGB8(r, g, b uint8) Color {
	return Color{float32(r) / 255.0, float32(g) / 255.0, float32(b) / 255.0}
}

// Scale all channels.
func (c Color) Mul(s float32) Color {
	return Color(Vec3(c).Mul(s))
}

// Clamp all channels to the [0, 1] range.
func (c Color) Clamp() Color {
	for i := range c {
		if c[i] < 0 {
			c[i] = 0
		} else if c[i] > 1 {
			c[i] = 1
		}
	}
	return c
}

// Slice returns the channels as a slice suitable for a parameter list.
func (c Color) Slice() []float32 {
	return Vec3(c).Slice()
}
