package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-10

func TestVector3Arithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)

	assert.Equal(t, NewVector3(5, 7, 9), a.Add(b))
	assert.Equal(t, NewVector3(3, 3, 3), b.Sub(a))
	assert.Equal(t, NewVector3(2, 4, 6), a.Mul(2))
	assert.InDelta(t, 32.0, a.Dot(b), tol)
	assert.Equal(t, NewVector3(0, 0, 1), NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0)))
	assert.Equal(t, NewVector3(1, 2, 3), a.Min(b).Min(a))
	assert.Equal(t, NewVector3(4, 5, 6), a.Max(b))
}

func TestVector3Length(t *testing.T) {
	assert.InDelta(t, 5.0, NewVector3(3, 4, 0).Length(), tol)
	assert.InDelta(t, 5.0, NewVector3(0, 0, 0).Distance(NewVector3(3, 4, 0)), tol)
	assert.InDelta(t, 1.0, NewVector3(3, 4, 0).Normalize().Length(), tol)
	assert.Equal(t, Vector3{}, Vector3{}.Normalize())
}

func TestFromFloat32(t *testing.T) {
	coords := []float32{0, 0, 0, 1.5, 2.5, -3}
	v := FromFloat32(coords, 1)

	assert.Equal(t, NewVector3(1.5, 2.5, -3), v)
	assert.Equal(t, [3]float32{1.5, 2.5, -3}, v.Float32())
}
