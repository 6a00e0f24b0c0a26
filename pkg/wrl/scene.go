// Package wrl holds the scene graph container nodes produced by loaders and
// consumed by savers: a SceneGraph of Shape nodes, each with an Appearance
// and a geometry node.
package wrl

import (
	"errors"
	"fmt"
)

var (
	// ErrChildCount is returned when a scene graph does not hold exactly one child.
	ErrChildCount = errors.New("scene graph must have exactly one child")
	// ErrNotShape is returned when the child node is not a Shape.
	ErrNotShape = errors.New("child node is not a Shape")
	// ErrNoIndexedFaceSet is returned when a Shape has no IndexedFaceSet geometry.
	ErrNoIndexedFaceSet = errors.New("shape geometry is not an IndexedFaceSet")
)

// Node is any scene graph node
type Node interface {
	NodeName() string
}

// SceneGraph is the root group of a scene
type SceneGraph struct {
	URL      string
	Children []Node
}

// NewSceneGraph creates an empty scene graph
func NewSceneGraph() *SceneGraph {
	return &SceneGraph{}
}

// Clear removes all children and the URL
func (sg *SceneGraph) Clear() {
	sg.URL = ""
	sg.Children = nil
}

// AddChild appends a node
func (sg *SceneGraph) AddChild(n Node) {
	sg.Children = append(sg.Children, n)
}

// SingleIndexedFaceSet returns the geometry of a scene holding one Shape with
// an IndexedFaceSet, which is the only layout mesh savers accept.
func (sg *SceneGraph) SingleIndexedFaceSet() (*IndexedFaceSet, error) {
	if len(sg.Children) != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrChildCount, len(sg.Children))
	}
	shape, ok := sg.Children[0].(*Shape)
	if !ok {
		return nil, fmt.Errorf("%w: found %s", ErrNotShape, sg.Children[0].NodeName())
	}
	ifs, ok := shape.Geometry.(*IndexedFaceSet)
	if !ok {
		return nil, ErrNoIndexedFaceSet
	}
	return ifs, nil
}

// Shape binds a geometry node to its appearance
type Shape struct {
	Appearance *Appearance
	Geometry   Node
}

// NewShape creates a Shape with a default Appearance and the given geometry
func NewShape(geometry Node) *Shape {
	return &Shape{
		Appearance: &Appearance{Material: NewMaterial()},
		Geometry:   geometry,
	}
}

func (s *Shape) NodeName() string { return "Shape" }

// Appearance holds the rendering attributes of a Shape
type Appearance struct {
	Material *Material
}

func (a *Appearance) NodeName() string { return "Appearance" }

// Material holds surface color attributes
type Material struct {
	DiffuseColor     [3]float32
	AmbientIntensity float32
	Transparency     float32
}

// NewMaterial returns a material with the VRML default attributes
func NewMaterial() *Material {
	return &Material{
		DiffuseColor:     [3]float32{0.8, 0.8, 0.8},
		AmbientIntensity: 0.2,
	}
}

func (m *Material) NodeName() string { return "Material" }
