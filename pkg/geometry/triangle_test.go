package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rightTriangle() Triangle {
	return NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)
}

func TestTriangleMeasures(t *testing.T) {
	tri := rightTriangle()

	assert.InDelta(t, 6.0, tri.Area(), tol)
	assert.Equal(t, NewVector3(0, 0, 1), tri.CalculateNormal())

	flipped := NewTriangle(tri.Normal, tri.V1, tri.V3, tri.V2)
	assert.Equal(t, NewVector3(0, 0, -1), flipped.CalculateNormal())
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(Vector3{}, NewVector3(0, 0, 0), NewVector3(3, 0, 0), NewVector3(0, 3, 0))
	c := tri.Center()

	assert.InDelta(t, 1.0, c.X, tol)
	assert.InDelta(t, 1.0, c.Y, tol)
	assert.InDelta(t, 0.0, c.Z, tol)
}

func TestBoundingBox(t *testing.T) {
	bbox := NewBoundingBox()
	assert.True(t, bbox.IsEmpty())
	assert.Equal(t, Vector3{}, bbox.Size())

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	assert.False(t, bbox.IsEmpty())
	assert.Equal(t, NewVector3(-1, 0, 2), bbox.Min)
	assert.Equal(t, NewVector3(4, 5, 6), bbox.Max)
	assert.Equal(t, NewVector3(5, 5, 4), bbox.Size())
	assert.Equal(t, NewVector3(1.5, 2.5, 4), bbox.Center())
	assert.InDelta(t, 100.0, bbox.Volume(), tol)
}
