package preview

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/philipparndt/goifs/pkg/geometry"
	"github.com/philipparndt/goifs/pkg/wrl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cube() *wrl.IndexedFaceSet {
	ifs := wrl.NewIndexedFaceSet("cube")
	ifs.Coord = []float32{
		0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0,
		0, 0, 1, 1, 0, 1, 1, 1, 1, 0, 1, 1,
	}
	ifs.CoordIndex = []int{
		0, 3, 2, 1, -1, 4, 5, 6, 7, -1,
		0, 1, 5, 4, -1, 2, 3, 7, 6, -1,
		1, 2, 6, 5, -1, 0, 4, 7, 3, -1,
	}
	return ifs
}

func TestCameraProjectsTargetToCenter(t *testing.T) {
	bbox := geometry.NewBoundingBox()
	bbox.Extend(geometry.NewVector3(-1, -1, -1))
	bbox.Extend(geometry.NewVector3(1, 1, 1))

	cam := NewCamera(bbox)
	cam.Rotate(0.3, 0.2)
	m := cam.Matrix(640, 480)

	x, y, depth, ok := Project(m, bbox.Center(), 640, 480)
	require.True(t, ok)
	assert.InDelta(t, 320, x, 1e-6)
	assert.InDelta(t, 240, y, 1e-6)
	assert.InDelta(t, cam.Distance, depth, 1e-6)

	eye := cam.Eye()
	_, _, _, ok = Project(m, geometry.NewVector3(eye.X()*2, eye.Y()*2, eye.Z()*2), 640, 480)
	assert.False(t, ok)
}

func TestCameraPitchClamp(t *testing.T) {
	cam := NewCamera(geometry.NewBoundingBox())
	cam.Rotate(0, 10)
	assert.Less(t, cam.Pitch, math.Pi/2)
	cam.Rotate(0, -20)
	assert.Greater(t, cam.Pitch, -math.Pi/2)
	assert.Equal(t, 1.1/math.Sin(math.Pi/8), cam.Distance)
}

func TestRenderDrawsEdges(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 160, 120
	img := Render(cube(), opts)

	require.Equal(t, 160, img.Bounds().Dx())
	require.Equal(t, 120, img.Bounds().Dy())

	drawn := 0
	for y := 0; y < 120; y++ {
		for x := 0; x < 160; x++ {
			if img.RGBAAt(x, y) != opts.Background {
				drawn++
			}
		}
	}
	assert.Greater(t, drawn, 100)
	assert.Equal(t, opts.Background, img.RGBAAt(0, 0))
}

func TestRenderEmpty(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 8, 8
	img := Render(wrl.NewIndexedFaceSet(""), opts)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, opts.Background, img.RGBAAt(x, y))
		}
	}
}

func TestWritePNG(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 32, 24
	img := Render(cube(), opts)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
