package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/goifs/pkg/faces"
	"github.com/philipparndt/goifs/pkg/geometry"
	"github.com/philipparndt/goifs/pkg/wrl"
)

// DefaultName is the solid name used when neither the geometry nor the
// options provide one
const DefaultName = "goifs"

// SaveOptions controls STL output
type SaveOptions struct {
	// Name of the solid when the IndexedFaceSet has none
	Name string
	// Binary selects the binary encoding
	Binary bool
	// AllowPolygons accepts faces with more than three corners. ASCII output
	// writes them as a single loop, binary output as a triangle fan.
	AllowPolygons bool
}

// NameFromPath returns the file name without directory and extension
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SaveFile writes the scene graph to filename
func SaveFile(filename string, sg *wrl.SceneGraph, opts SaveOptions) error {
	if opts.Name == "" {
		opts.Name = NameFromPath(filename)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if opts.Binary {
		err = SaveBinary(file, sg, opts)
	} else {
		err = Save(file, sg, opts)
	}
	if cerr := file.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to close file: %w", cerr)
	}
	if err != nil {
		os.Remove(filename)
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}
	return nil
}

// solid is a validated face set ready to be written
type solid struct {
	name string
	ifs  *wrl.IndexedFaceSet
	fs   *faces.Faces
}

func prepare(sg *wrl.SceneGraph, opts SaveOptions) (*solid, error) {
	ifs, err := sg.SingleIndexedFaceSet()
	if err != nil {
		return nil, err
	}

	fs := ifs.Faces()
	for f := 0; f < fs.FaceCount(); f++ {
		if !opts.AllowPolygons && fs.FaceDegree(f) != 3 {
			return nil, fmt.Errorf("%w: face %d has %d corners", ErrNotTriangleMesh, f, fs.FaceDegree(f))
		}
		for j := 0; j < fs.FaceDegree(f); j++ {
			if v := fs.FaceVertex(f, j); v >= ifs.NumberOfCoords() {
				return nil, fmt.Errorf("%w: face %d references vertex %d of %d", ErrCoordIndex, f, v, ifs.NumberOfCoords())
			}
		}
	}

	switch b := ifs.NormalBinding(); b {
	case wrl.BindingNone, wrl.BindingPerFace:
	default:
		return nil, fmt.Errorf("%w: found %s", ErrNormalBinding, b)
	}

	name := ifs.Name
	if name == "" {
		name = opts.Name
	}
	if name == "" {
		name = DefaultName
	}
	return &solid{name: name, ifs: ifs, fs: fs}, nil
}

// Save writes the scene graph as ASCII STL. Faces with fewer than three
// corners are skipped. Missing face normals are computed from the geometry.
func Save(w io.Writer, sg *wrl.SceneGraph, opts SaveOptions) error {
	s, err := prepare(sg, opts)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", s.name)
	for f := 0; f < s.fs.FaceCount(); f++ {
		n := s.fs.FaceDegree(f)
		if n < 3 {
			continue
		}
		normal := s.ifs.FaceNormal(s.fs, f)
		fmt.Fprintf(bw, " facet normal %f %f %f\n", normal.X, normal.Y, normal.Z)
		fmt.Fprintf(bw, "  outer loop\n")
		for j := 0; j < n; j++ {
			p, _ := s.ifs.Point(s.fs.FaceVertex(f, j))
			fmt.Fprintf(bw, "   vertex %f %f %f\n", p.X, p.Y, p.Z)
		}
		fmt.Fprintf(bw, "  endloop\n")
		fmt.Fprintf(bw, " endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", s.name)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write STL: %w", err)
	}
	return nil
}

// SaveBinary writes the scene graph as binary STL
func SaveBinary(w io.Writer, sg *wrl.SceneGraph, opts SaveOptions) error {
	s, err := prepare(sg, opts)
	if err != nil {
		return err
	}

	var tris []geometry.Triangle
	for f := 0; f < s.fs.FaceCount(); f++ {
		if s.fs.FaceDegree(f) < 3 {
			continue
		}
		normal := s.ifs.FaceNormal(s.fs, f)
		tris = append(tris, geometry.FanTriangles(normal, s.ifs.FacePoints(s.fs, f))...)
	}

	bw := bufio.NewWriter(w)
	var header [binaryHeaderSize]byte
	copy(header[:], s.name)
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(tris))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}
	for i, t := range tris {
		rec := binaryFacet{
			Normal:   t.Normal.Float32(),
			Vertices: [3][3]float32{t.V1.Float32(), t.V2.Float32(), t.V3.Float32()},
		}
		if err := binary.Write(bw, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write STL: %w", err)
	}
	return nil
}
