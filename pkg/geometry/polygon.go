package geometry

// newell returns the Newell vector of a closed polygon: its direction is the
// polygon normal and its length is twice the area of the planar projection.
func newell(points []Vector3) Vector3 {
	var n Vector3
	for i, cur := range points {
		nxt := points[(i+1)%len(points)]
		n.X += (cur.Y - nxt.Y) * (cur.Z + nxt.Z)
		n.Y += (cur.Z - nxt.Z) * (cur.X + nxt.X)
		n.Z += (cur.X - nxt.X) * (cur.Y + nxt.Y)
	}
	return n
}

// PolygonNormal returns the unit normal of a polygon given in counter-clockwise
// order, or the zero vector for fewer than three points or a degenerate polygon.
func PolygonNormal(points []Vector3) Vector3 {
	if len(points) < 3 {
		return Vector3{}
	}
	return newell(points).Normalize()
}

// PolygonArea returns the area of a planar polygon. Non-planar input yields
// the area of its best-fit projection.
func PolygonArea(points []Vector3) float64 {
	if len(points) < 3 {
		return 0
	}
	return newell(points).Length() / 2
}

// FanTriangles splits a polygon into a triangle fan around its first point.
// Each triangle carries the given normal.
func FanTriangles(normal Vector3, points []Vector3) []Triangle {
	if len(points) < 3 {
		return nil
	}
	tris := make([]Triangle, 0, len(points)-2)
	for i := 1; i+1 < len(points); i++ {
		tris = append(tris, NewTriangle(normal, points[0], points[i], points[i+1]))
	}
	return tris
}
