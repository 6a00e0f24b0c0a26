// Package source opens model files given on the command line, rendering
// OpenSCAD sources to STL first.
package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/goifs/pkg/openscad"
	"github.com/philipparndt/goifs/pkg/stl"
	"github.com/philipparndt/goifs/pkg/wrl"
)

// ErrUnsupported is returned for files that are neither .stl nor .scad
var ErrUnsupported = errors.New("unsupported file type")

// Loader resolves input paths to scene graphs
type Loader struct {
	Log *slog.Logger
	// OpenSCAD is the binary used for .scad files; empty means "openscad"
	OpenSCAD string
}

func (l *Loader) logger() *slog.Logger {
	if l.Log == nil {
		return slog.Default()
	}
	return l.Log
}

func (l *Loader) renderer(path string) *openscad.Renderer {
	r := openscad.NewRenderer(filepath.Dir(path))
	if l.OpenSCAD != "" {
		r.Binary = l.OpenSCAD
	}
	return r
}

func isSCAD(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".scad")
}

// Open loads an STL file, or renders a .scad file to a temporary STL and
// loads that. The returned scene graph's URL is always path.
func (l *Loader) Open(ctx context.Context, path string) (*wrl.SceneGraph, error) {
	switch {
	case strings.EqualFold(filepath.Ext(path), ".stl"):
		return stl.LoadFile(path)
	case isSCAD(path):
		return l.openSCAD(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %s (expected .stl or .scad)", ErrUnsupported, filepath.Ext(path))
	}
}

func (l *Loader) openSCAD(ctx context.Context, path string) (*wrl.SceneGraph, error) {
	tmp, err := os.CreateTemp("", "goifs-*.stl")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	l.logger().Info("rendering OpenSCAD file", "path", path)
	if err := l.renderer(path).RenderToSTL(ctx, path, tmp.Name()); err != nil {
		return nil, fmt.Errorf("failed to render OpenSCAD file: %w", err)
	}

	sg, err := stl.LoadFile(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered STL: %w", err)
	}
	sg.URL = path
	if ifs, err := sg.SingleIndexedFaceSet(); err == nil && ifs.Name == "" {
		ifs.Name = stl.NameFromPath(path)
	}
	return sg, nil
}

// WatchList returns the files whose changes affect path: path itself and,
// for .scad sources, everything it uses or includes
func (l *Loader) WatchList(path string) ([]string, error) {
	if !isSCAD(path) {
		return []string{path}, nil
	}
	deps, err := l.renderer(path).ResolveDependencies(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
	}
	return deps, nil
}
