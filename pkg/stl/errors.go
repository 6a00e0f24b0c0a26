package stl

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is wrapped by every ASCII parse failure.
	ErrSyntax = errors.New("stl syntax error")
	// ErrNotTriangleMesh is returned when saving polygons without AllowPolygons.
	ErrNotTriangleMesh = errors.New("geometry is not a triangle mesh")
	// ErrNormalBinding is returned when normals are bound per vertex or corner.
	ErrNormalBinding = errors.New("normals must be bound per face")
	// ErrCoordIndex is returned when a face references a missing coordinate.
	ErrCoordIndex = errors.New("coordinate index out of range")
)

// ParseError reports where an ASCII STL stream diverged from the grammar.
type ParseError struct {
	Line     int
	Expected string
	Got      string
}

func (e *ParseError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("line %d: expected %s, got end of file", e.Line, e.Expected)
	}
	return fmt.Sprintf("line %d: expected %s, got %q", e.Line, e.Expected, e.Got)
}

func (e *ParseError) Unwrap() error {
	return ErrSyntax
}
