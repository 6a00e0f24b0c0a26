// Package faces indexes the connectivity of a polygon mesh stored as a flat
// coordinate index, the VRML/X3D IndexedFaceSet convention where each face
// lists its vertex ids in order and is terminated by -1.
//
// A corner is a position in the coordinate index. Corner ids span the whole
// index, terminator slots included, so CornerCount always equals the length
// of the input. Terminator slots belong to no face.
//
// A Faces value is immutable after New returns and is safe for concurrent
// readers. Every query is total: invalid arguments yield -1 for ids and 0 for
// counts.
package faces

import "iter"

// Sentinel terminates a face in a coordinate index.
const Sentinel = -1

// noOwner marks terminator slots in the per-corner tables.
const noOwner = -1

// Faces is a read-only corner table built from a coordinate index.
type Faces struct {
	numVertices int
	coordIndex  []int

	// Face f occupies vertices[offsets[f]:offsets[f+1]] and the same range
	// of corners.
	offsets  []int
	vertices []int
	corners  []int

	owner []int
	next  []int
}

// New builds the face table for coordIndex. vertexCountHint is a lower bound
// on the vertex count, used when trailing vertices are referenced by no face.
// The input slice is copied.
func New(vertexCountHint int, coordIndex []int) *Faces {
	n := len(coordIndex)
	fs := &Faces{
		coordIndex: make([]int, n),
		offsets:    make([]int, 1, n/3+2),
		vertices:   make([]int, 0, n),
		corners:    make([]int, 0, n),
		owner:      make([]int, n),
		next:       make([]int, n),
	}
	copy(fs.coordIndex, coordIndex)
	for c := range fs.owner {
		fs.owner[c] = noOwner
		fs.next[c] = noOwner
	}

	maxVertex := -1
	start := 0 // arena position of the face under construction
	for c, v := range fs.coordIndex {
		if v < 0 {
			if len(fs.vertices) > start {
				fs.seal(start)
				start = len(fs.vertices)
			}
			continue
		}
		if v > maxVertex {
			maxVertex = v
		}
		fs.vertices = append(fs.vertices, v)
		fs.corners = append(fs.corners, c)
	}
	if len(fs.vertices) > start {
		fs.seal(start)
	}

	fs.numVertices = max(vertexCountHint, maxVertex+1)
	return fs
}

// seal closes the pending face starting at arena position start and fills the
// owner and next tables for its corners.
func (fs *Faces) seal(start int) {
	f := len(fs.offsets) - 1
	end := len(fs.corners)
	fs.offsets = append(fs.offsets, end)

	first := fs.corners[start]
	for i := start; i < end; i++ {
		c := fs.corners[i]
		fs.owner[c] = f
		if i+1 < end {
			fs.next[c] = fs.corners[i+1]
		} else {
			fs.next[c] = first
		}
	}
}

// VertexCount returns the larger of the construction hint and one past the
// largest referenced vertex id.
func (fs *Faces) VertexCount() int {
	return fs.numVertices
}

// FaceCount returns the number of non-empty faces.
func (fs *Faces) FaceCount() int {
	return len(fs.offsets) - 1
}

// CornerCount returns the length of the coordinate index, terminators included.
func (fs *Faces) CornerCount() int {
	return len(fs.coordIndex)
}

func (fs *Faces) validFace(f int) bool {
	return f >= 0 && f < fs.FaceCount()
}

func (fs *Faces) validCorner(c int) bool {
	return c >= 0 && c < len(fs.coordIndex) && fs.owner[c] != noOwner
}

// FaceDegree returns the number of corners of face f, or 0 if f is not a face.
func (fs *Faces) FaceDegree(f int) int {
	if !fs.validFace(f) {
		return 0
	}
	return fs.offsets[f+1] - fs.offsets[f]
}

// FirstCorner returns the corner at local position 0 of face f, or -1.
func (fs *Faces) FirstCorner(f int) int {
	if fs.FaceDegree(f) == 0 {
		return -1
	}
	return fs.corners[fs.offsets[f]]
}

// FaceVertex returns the vertex id at local position j of face f, or -1.
func (fs *Faces) FaceVertex(f, j int) int {
	if j < 0 || j >= fs.FaceDegree(f) {
		return -1
	}
	return fs.vertices[fs.offsets[f]+j]
}

// FaceCorner returns the corner id at local position j of face f, or -1.
func (fs *Faces) FaceCorner(f, j int) int {
	if j < 0 || j >= fs.FaceDegree(f) {
		return -1
	}
	return fs.corners[fs.offsets[f]+j]
}

// FaceVertices returns a copy of the vertex ids of face f in order, or nil.
func (fs *Faces) FaceVertices(f int) []int {
	if !fs.validFace(f) {
		return nil
	}
	out := make([]int, fs.FaceDegree(f))
	copy(out, fs.vertices[fs.offsets[f]:fs.offsets[f+1]])
	return out
}

// Corners iterates over the local positions and corner ids of face f.
// Nothing is yielded for an invalid face.
func (fs *Faces) Corners(f int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if !fs.validFace(f) {
			return
		}
		for j, c := range fs.corners[fs.offsets[f]:fs.offsets[f+1]] {
			if !yield(j, c) {
				return
			}
		}
	}
}

// CornerOwner returns the face that owns corner c. It returns -1 when c is
// out of range or is a terminator slot.
func (fs *Faces) CornerOwner(c int) int {
	if !fs.validCorner(c) {
		return -1
	}
	return fs.owner[c]
}

// NextCorner returns the corner after c in its face, wrapping from the last
// corner to the first. It returns -1 under the same conditions as CornerOwner.
func (fs *Faces) NextCorner(c int) int {
	if !fs.validCorner(c) {
		return -1
	}
	return fs.next[c]
}

// CornerVertex returns the vertex id stored at corner c, or -1 when c is out
// of range or is a terminator slot.
func (fs *Faces) CornerVertex(c int) int {
	if !fs.validCorner(c) {
		return -1
	}
	return fs.coordIndex[c]
}
