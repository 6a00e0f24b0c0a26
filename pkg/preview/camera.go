package preview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/goifs/pkg/geometry"
)

// Camera orbits a target point at a fixed distance
type Camera struct {
	Target   mgl64.Vec3
	Distance float64
	Yaw      float64 // rotation around the vertical axis, radians
	Pitch    float64 // elevation above the horizontal plane, radians
	FOV      float64 // vertical field of view, radians
}

// NewCamera frames a bounding box so the whole box is visible
func NewCamera(bbox geometry.BoundingBox) *Camera {
	center := bbox.Center()
	radius := bbox.Diagonal() / 2
	if radius == 0 {
		radius = 1
	}
	fov := math.Pi / 4
	return &Camera{
		Target:   mgl64.Vec3{center.X, center.Y, center.Z},
		Distance: 1.1 * radius / math.Sin(fov/2),
		FOV:      fov,
	}
}

// Rotate changes yaw and pitch, keeping pitch short of the poles
func (c *Camera) Rotate(deltaYaw, deltaPitch float64) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch

	limit := math.Pi/2 - 0.1
	c.Pitch = math.Max(-limit, math.Min(limit, c.Pitch))
}

// Eye returns the camera position
func (c *Camera) Eye() mgl64.Vec3 {
	offset := mgl64.Vec3{
		c.Distance * math.Cos(c.Pitch) * math.Sin(c.Yaw),
		c.Distance * math.Sin(c.Pitch),
		c.Distance * math.Cos(c.Pitch) * math.Cos(c.Yaw),
	}
	return c.Target.Add(offset)
}

// Matrix returns the combined projection and view transform
func (c *Camera) Matrix(width, height float64) mgl64.Mat4 {
	near := c.Distance * 0.01
	far := c.Distance * 10
	proj := mgl64.Perspective(c.FOV, width/height, near, far)
	view := mgl64.LookAtV(c.Eye(), c.Target, mgl64.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

// Project maps a point to pixel coordinates and its distance along the view
// direction. ok is false for points behind the camera.
func Project(m mgl64.Mat4, p geometry.Vector3, width, height float64) (x, y, depth float64, ok bool) {
	clip := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	w := clip.W()
	if w <= 1e-9 {
		return 0, 0, 0, false
	}
	x = (clip.X()/w + 1) / 2 * width
	y = (1 - clip.Y()/w) / 2 * height
	return x, y, w, true
}
