package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Shapes       []core.Shape          // Objects in the scene
	TopColor     core.Vec3             // Background color straight up
	BottomColor  core.Vec3             // Background color straight down
	CameraConfig renderer.CameraConfig // Camera and image dimensions
}

// GetCameraConfig implements renderer.Scene
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.CameraConfig
}

// GetBackgroundColors implements renderer.Scene
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetShapes implements renderer.Scene
func (s *Scene) GetShapes() []core.Shape {
	return s.Shapes
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius)
	s.Shapes = append(s.Shapes, sphere)
	return sphere
}
