package wrl

import (
	"testing"

	"github.com/philipparndt/goifs/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quad() *IndexedFaceSet {
	ifs := NewIndexedFaceSet("quad")
	ifs.Coord = []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}
	ifs.CoordIndex = []int{0, 1, 2, 3, -1}
	return ifs
}

func TestSingleIndexedFaceSet(t *testing.T) {
	sg := NewSceneGraph()
	_, err := sg.SingleIndexedFaceSet()
	assert.ErrorIs(t, err, ErrChildCount)

	sg.AddChild(&Appearance{})
	_, err = sg.SingleIndexedFaceSet()
	assert.ErrorIs(t, err, ErrNotShape)

	sg.Clear()
	sg.AddChild(&Shape{})
	_, err = sg.SingleIndexedFaceSet()
	assert.ErrorIs(t, err, ErrNoIndexedFaceSet)

	sg.Clear()
	want := quad()
	sg.AddChild(NewShape(want))
	got, err := sg.SingleIndexedFaceSet()
	require.NoError(t, err)
	assert.Same(t, want, got)

	sg.AddChild(NewShape(quad()))
	_, err = sg.SingleIndexedFaceSet()
	assert.ErrorIs(t, err, ErrChildCount)
}

func TestNewShapeDefaults(t *testing.T) {
	s := NewShape(quad())
	require.NotNil(t, s.Appearance)
	require.NotNil(t, s.Appearance.Material)
	assert.Equal(t, [3]float32{0.8, 0.8, 0.8}, s.Appearance.Material.DiffuseColor)
}

func TestIndexedFaceSetQueries(t *testing.T) {
	ifs := quad()

	assert.Equal(t, 4, ifs.NumberOfCoords())
	assert.False(t, ifs.IsTriangleMesh())

	p, ok := ifs.Point(2)
	assert.True(t, ok)
	assert.Equal(t, geometry.NewVector3(1, 1, 0), p)
	_, ok = ifs.Point(4)
	assert.False(t, ok)
	_, ok = ifs.Point(-1)
	assert.False(t, ok)

	fs := ifs.Faces()
	assert.Equal(t, 1, fs.FaceCount())
	assert.Len(t, ifs.FacePoints(fs, 0), 4)
	assert.Equal(t, geometry.NewVector3(0, 0, 1), ifs.FaceNormal(fs, 0))

	ifs.CoordIndex = []int{0, 1, 2, -1, 0, 2, 3, -1}
	assert.True(t, ifs.IsTriangleMesh())

	ifs.CoordIndex = nil
	assert.False(t, ifs.IsTriangleMesh())
}

func TestNormalBinding(t *testing.T) {
	ifs := quad()
	assert.Equal(t, BindingNone, ifs.NormalBinding())

	ifs.Normal = []float32{0, 0, -1}
	assert.Equal(t, BindingPerVertex, ifs.NormalBinding())

	ifs.NormalIndex = []int{0, 0, 0, 0, -1}
	assert.Equal(t, BindingPerCorner, ifs.NormalBinding())

	ifs.NormalIndex = nil
	ifs.NormalPerVertex = false
	assert.Equal(t, BindingPerFace, ifs.NormalBinding())
	assert.Equal(t, "per-face", ifs.NormalBinding().String())

	// stored per-face normal wins over the computed one
	fs := ifs.Faces()
	assert.Equal(t, geometry.NewVector3(0, 0, -1), ifs.FaceNormal(fs, 0))
}
