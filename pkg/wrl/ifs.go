package wrl

import (
	"github.com/philipparndt/goifs/pkg/faces"
	"github.com/philipparndt/goifs/pkg/geometry"
)

// Binding describes how normals map onto a face set
type Binding int

const (
	BindingNone Binding = iota
	BindingPerFace
	BindingPerVertex
	BindingPerCorner
)

func (b Binding) String() string {
	switch b {
	case BindingPerFace:
		return "per-face"
	case BindingPerVertex:
		return "per-vertex"
	case BindingPerCorner:
		return "per-corner"
	default:
		return "none"
	}
}

// IndexedFaceSet is polygon geometry: flat xyz coordinates, a coordinate index
// of -1 terminated faces, and optional normals.
type IndexedFaceSet struct {
	Name            string
	Coord           []float32
	CoordIndex      []int
	Normal          []float32
	NormalIndex     []int
	NormalPerVertex bool
}

// NewIndexedFaceSet creates an empty face set with per-vertex normal binding,
// the VRML default
func NewIndexedFaceSet(name string) *IndexedFaceSet {
	return &IndexedFaceSet{Name: name, NormalPerVertex: true}
}

func (ifs *IndexedFaceSet) NodeName() string { return "IndexedFaceSet" }

// NumberOfCoords returns the number of xyz triples in Coord
func (ifs *IndexedFaceSet) NumberOfCoords() int {
	return len(ifs.Coord) / 3
}

// NumberOfNormals returns the number of xyz triples in Normal
func (ifs *IndexedFaceSet) NumberOfNormals() int {
	return len(ifs.Normal) / 3
}

// Point returns coordinate i; the second result is false when i is out of range
func (ifs *IndexedFaceSet) Point(i int) (geometry.Vector3, bool) {
	if i < 0 || i >= ifs.NumberOfCoords() {
		return geometry.Vector3{}, false
	}
	return geometry.FromFloat32(ifs.Coord, i), true
}

// Faces builds the connectivity index of the coordinate index
func (ifs *IndexedFaceSet) Faces() *faces.Faces {
	return faces.New(ifs.NumberOfCoords(), ifs.CoordIndex)
}

// IsTriangleMesh reports whether there is at least one face and every face has
// three corners
func (ifs *IndexedFaceSet) IsTriangleMesh() bool {
	return isTriangleMesh(ifs.Faces())
}

func isTriangleMesh(fs *faces.Faces) bool {
	if fs.FaceCount() == 0 {
		return false
	}
	for f := 0; f < fs.FaceCount(); f++ {
		if fs.FaceDegree(f) != 3 {
			return false
		}
	}
	return true
}

// NormalBinding reports how Normal relates to the geometry
func (ifs *IndexedFaceSet) NormalBinding() Binding {
	switch {
	case len(ifs.Normal) == 0:
		return BindingNone
	case !ifs.NormalPerVertex:
		return BindingPerFace
	case len(ifs.NormalIndex) > 0:
		return BindingPerCorner
	default:
		return BindingPerVertex
	}
}

// FacePoints returns the coordinates of the corners of face f in order.
// Corners referencing missing coordinates are skipped.
func (ifs *IndexedFaceSet) FacePoints(fs *faces.Faces, f int) []geometry.Vector3 {
	pts := make([]geometry.Vector3, 0, fs.FaceDegree(f))
	for j := 0; j < fs.FaceDegree(f); j++ {
		if p, ok := ifs.Point(fs.FaceVertex(f, j)); ok {
			pts = append(pts, p)
		}
	}
	return pts
}

// FaceNormal returns the stored normal of face f when normals are bound per
// face, and otherwise the normal computed from the face's coordinates.
func (ifs *IndexedFaceSet) FaceNormal(fs *faces.Faces, f int) geometry.Vector3 {
	if ifs.NormalBinding() == BindingPerFace {
		i := f
		if f >= 0 && f < len(ifs.NormalIndex) {
			i = ifs.NormalIndex[f]
		}
		if i >= 0 && i < ifs.NumberOfNormals() {
			return geometry.FromFloat32(ifs.Normal, i)
		}
	}
	return geometry.PolygonNormal(ifs.FacePoints(fs, f))
}
