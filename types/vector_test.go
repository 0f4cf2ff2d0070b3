package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Ops(t *testing.T) {
	v := XYZ(1, -2, 3)

	assert.Equal(t, XYZ(2, -4, 6), v.Mul(2))
	assert.Equal(t, []float32{1, -2, 3}, v.Slice())
}

func TestColors(t *testing.T) {
	c := RGB8(255, 0, 51)
	assert.Equal(t, float32(1), c[0])
	assert.Equal(t, float32(0), c[1])
	assert.InDelta(t, 0.2, c[2], 1e-6)

	assert.Equal(t, RGB(0.5, 0, 0.1), RGB(1, 0, 0.2).Mul(0.5))
	assert.Len(t, c.Slice(), 3)
	assert.Equal(t, RGB(1, 0, 0.5), RGB(2, -1, 0.5).Clamp())
}
