package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/goifs/pkg/geometry"
	"github.com/philipparndt/goifs/pkg/wrl"
)

// EdgeInfo is one directed face edge, from a corner to the next corner of the
// same face
type EdgeInfo struct {
	Start     geometry.Vector3
	End       geometry.Vector3
	Length    float64
	Face      int
	Corner    int
	FromIndex int
	ToIndex   int
}

// MeasurementResult holds connectivity and metric statistics of a face set
type MeasurementResult struct {
	Name          string
	VertexCount   int
	FaceCount     int
	CornerCount   int
	UnusedCorners int
	Degrees       map[int]int
	TriangleMesh  bool
	NormalBinding wrl.Binding

	BoundingBox    geometry.BoundingBox
	Dimensions     geometry.Vector3
	BoundingVolume float64
	SurfaceArea    float64
	// SurfaceCentroid is the area-weighted center of all faces
	SurfaceCentroid geometry.Vector3
	// DegenerateFaces have at least three corners but no area
	DegenerateFaces int
	// FlippedNormals counts faces whose stored normal points against
	// their winding order
	FlippedNormals int

	EdgeCount         int
	UniqueEdgeCount   int
	BoundaryEdgeCount int
	MinEdgeLength     float64
	MaxEdgeLength     float64
	AvgEdgeLength     float64
	AllEdges          []EdgeInfo
}

// degenerateArea is the face area below which a face counts as collapsed
const degenerateArea = 1e-12

type edgeKey struct{ a, b int }

func undirected(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Analyze measures a face set. Edges are collected by walking each face's
// corner cycle, so every corner contributes exactly one edge. Corners that
// reference a missing coordinate are counted but produce no edge.
func Analyze(ifs *wrl.IndexedFaceSet) *MeasurementResult {
	fs := ifs.Faces()
	result := &MeasurementResult{
		Name:          ifs.Name,
		VertexCount:   fs.VertexCount(),
		FaceCount:     fs.FaceCount(),
		CornerCount:   fs.CornerCount(),
		Degrees:       make(map[int]int),
		NormalBinding: ifs.NormalBinding(),
		BoundingBox:   geometry.NewBoundingBox(),
		AllEdges:      make([]EdgeInfo, 0, fs.CornerCount()),
	}

	for i := 0; i < ifs.NumberOfCoords(); i++ {
		p, _ := ifs.Point(i)
		result.BoundingBox.Extend(p)
	}
	result.Dimensions = result.BoundingBox.Size()
	result.BoundingVolume = result.BoundingBox.Volume()
	stored := result.NormalBinding == wrl.BindingPerFace
	var weighted geometry.Vector3
	fanArea := 0.0

	uses := make(map[edgeKey]int)
	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	owned := 0
	for f := 0; f < fs.FaceCount(); f++ {
		degree := fs.FaceDegree(f)
		result.Degrees[degree]++
		owned += degree
		points := ifs.FacePoints(fs, f)
		result.SurfaceArea += geometry.PolygonArea(points)

		// Triangulate to weight the centroid and check winding
		if len(points) >= 3 {
			faceArea := 0.0
			flipped := false
			for _, tri := range geometry.FanTriangles(ifs.FaceNormal(fs, f), points) {
				area := tri.Area()
				faceArea += area
				weighted = weighted.Add(tri.Center().Mul(area))
				if stored && tri.Normal.Dot(tri.CalculateNormal()) < 0 {
					flipped = true
				}
			}
			fanArea += faceArea
			if faceArea < degenerateArea {
				result.DegenerateFaces++
			}
			if flipped {
				result.FlippedNormals++
			}
		}

		c := fs.FirstCorner(f)
		for j := 0; j < degree; j++ {
			next := fs.NextCorner(c)
			from, to := fs.CornerVertex(c), fs.CornerVertex(next)
			start, okStart := ifs.Point(from)
			end, okEnd := ifs.Point(to)
			if okStart && okEnd {
				length := start.Distance(end)
				result.AllEdges = append(result.AllEdges, EdgeInfo{
					Start:     start,
					End:       end,
					Length:    length,
					Face:      f,
					Corner:    c,
					FromIndex: from,
					ToIndex:   to,
				})
				totalLength += length
				minLength = math.Min(minLength, length)
				maxLength = math.Max(maxLength, length)
			}
			if degree > 1 {
				uses[undirected(from, to)]++
			}
			c = next
		}
	}
	result.UnusedCorners = fs.CornerCount() - owned
	if fanArea > 0 {
		result.SurfaceCentroid = weighted.Mul(1 / fanArea)
	}
	result.TriangleMesh = fs.FaceCount() > 0 && result.Degrees[3] == fs.FaceCount()

	result.EdgeCount = len(result.AllEdges)
	result.UniqueEdgeCount = len(uses)
	for _, n := range uses {
		if n == 1 {
			result.BoundaryEdgeCount++
		}
	}
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// SortedDegrees returns the face degrees present, ascending
func (r *MeasurementResult) SortedDegrees() []int {
	degrees := make([]int, 0, len(r.Degrees))
	for d := range r.Degrees {
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)
	return degrees
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)
	sort.SliceStable(edges, func(i, j int) bool { return less(edges[i], edges[j]) })

	count = max(0, min(count, len(edges)))
	return edges[:count]
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
