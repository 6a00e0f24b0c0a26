// Package preview draws a wireframe image of a face set without a display.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/philipparndt/goifs/pkg/faces"
	"github.com/philipparndt/goifs/pkg/geometry"
	"github.com/philipparndt/goifs/pkg/wrl"
)

// Options controls the rendered image
type Options struct {
	Width, Height int
	Yaw, Pitch    float64
	Background    color.RGBA
	Foreground    color.RGBA
}

// DefaultOptions returns a 800x600 light-on-dark three-quarter view
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     600,
		Yaw:        math.Pi / 4,
		Pitch:      math.Pi / 6,
		Background: color.RGBA{24, 24, 32, 255},
		Foreground: color.RGBA{230, 230, 230, 255},
	}
}

// Render draws every face edge of ifs, walking each face's corner cycle.
// Nearer edges are drawn brighter.
func Render(ifs *wrl.IndexedFaceSet, opts Options) *image.RGBA {
	w, h := max(opts.Width, 1), max(opts.Height, 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = opts.Background.R
		img.Pix[i+1] = opts.Background.G
		img.Pix[i+2] = opts.Background.B
		img.Pix[i+3] = opts.Background.A
	}

	fs := ifs.Faces()
	bbox := boundsOf(ifs, fs)
	if bbox.IsEmpty() {
		return img
	}

	cam := NewCamera(bbox)
	cam.Rotate(opts.Yaw, opts.Pitch)
	m := cam.Matrix(float64(w), float64(h))

	radius := math.Max(bbox.Diagonal()/2, 1e-9)
	nearest := cam.Distance - radius

	for f := 0; f < fs.FaceCount(); f++ {
		for _, c := range fs.Corners(f) {
			a, okA := ifs.Point(fs.CornerVertex(c))
			b, okB := ifs.Point(fs.CornerVertex(fs.NextCorner(c)))
			if !okA || !okB {
				continue
			}
			x1, y1, z1, ok1 := Project(m, a, float64(w), float64(h))
			x2, y2, z2, ok2 := Project(m, b, float64(w), float64(h))
			if !ok1 || !ok2 {
				continue
			}
			t := ((z1+z2)/2 - nearest) / (2 * radius)
			shade := 1 - 0.7*math.Max(0, math.Min(1, t))
			drawLine(img, int(math.Round(x1)), int(math.Round(y1)), int(math.Round(x2)), int(math.Round(y2)),
				scale(opts.Foreground, opts.Background, shade))
		}
	}
	return img
}

// boundsOf covers only referenced coordinates
func boundsOf(ifs *wrl.IndexedFaceSet, fs *faces.Faces) geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for f := 0; f < fs.FaceCount(); f++ {
		for _, p := range ifs.FacePoints(fs, f) {
			bbox.Extend(p)
		}
	}
	return bbox
}

// scale blends fg over bg by t in [0, 1]
func scale(fg, bg color.RGBA, t float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(b) + (float64(a)-float64(b))*t))
	}
	return color.RGBA{mix(fg.R, bg.R), mix(fg.G, bg.G), mix(fg.B, bg.B), 255}
}

// drawLine rasterizes a segment with Bresenham's algorithm, clipping per pixel
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	b := img.Bounds()
	dx, dy := abs(x2-x1), -abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx + dy
	for {
		if image.Pt(x1, y1).In(b) {
			img.SetRGBA(x1, y1, col)
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// WritePNG encodes the image as PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the image to a PNG file
func SavePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := WritePNG(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
