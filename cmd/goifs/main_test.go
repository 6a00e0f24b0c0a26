package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/goifs/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadSTL = `solid quad
 facet normal 0 0 1
  outer loop
   vertex 0 0 0
   vertex 1 0 0
   vertex 1 1 0
  endloop
 endfacet
 facet normal 0 0 1
  outer loop
   vertex 0 0 0
   vertex 1 1 0
   vertex 0 1 0
  endloop
 endfacet
endsolid quad
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeQuad(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "quad.stl")
	require.NoError(t, os.WriteFile(path, []byte(quadSTL), 0o644))
	return path
}

func TestInfo(t *testing.T) {
	path := writeQuad(t)

	out, err := execute(t, "info", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Name: quad")
	assert.Contains(t, out, "Faces: 2")
	assert.Contains(t, out, "Corners: 8 (2 sentinel)")
	assert.Contains(t, out, "Normal binding: per-face")
	assert.Contains(t, out, "Unique: 6")
	assert.Contains(t, out, "Boundary: 6")
	assert.Contains(t, out, "Area: 1.000000 square units")
	assert.Contains(t, out, "Flipped normals: 0")
}

func TestFacesCorners(t *testing.T) {
	path := writeQuad(t)

	out, err := execute(t, "faces", path, "--corners")
	require.NoError(t, err)
	assert.Contains(t, out, "face 1  degree 3  vertices [3 4 5]")
	assert.Contains(t, out, "[2] corner 6  vertex 5  next 4 (vertex 3)")
}

func TestConvertBinary(t *testing.T) {
	path := writeQuad(t)
	output := filepath.Join(filepath.Dir(path), "out.stl")

	_, err := execute(t, "convert", path, output, "--binary")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Len(t, data, 80+4+2*50)

	sg, err := stl.LoadFile(output)
	require.NoError(t, err)
	ifs, err := sg.SingleIndexedFaceSet()
	require.NoError(t, err)
	assert.Equal(t, 2, ifs.Faces().FaceCount())
}

func TestPreview(t *testing.T) {
	path := writeQuad(t)
	output := filepath.Join(filepath.Dir(path), "quad.png")

	_, err := execute(t, "preview", path, output, "--width", "64", "--height", "48")
	require.NoError(t, err)
	assert.FileExists(t, output)
}

func TestUnsupportedInput(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	_, err := execute(t, "info", filepath.Join(dir, "part.obj"))
	assert.Error(t, err)
}
