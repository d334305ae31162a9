package renderer

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCameraConfig() CameraConfig
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetShapes() []core.Shape
}

// RayColor returns the color seen along r: the remapped surface normal of the
// closest shape in front of the ray origin, or the background gradient.
// Components are nominally in [0,1] and are not clamped.
func RayColor(r core.Ray, scene Scene) core.Vec3 {
	hit, isHit := geometry.ShapeList(scene.GetShapes()).Hit(r, 0, math.Inf(1))
	if isHit {
		return normalColor(hit.Normal)
	}
	return backgroundGradient(r, scene)
}

// normalColor maps each normal component from [-1,1] to [0,1]
func normalColor(n core.Vec3) core.Vec3 {
	return n.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}

// backgroundGradient returns a gradient color based on ray direction
func backgroundGradient(r core.Ray, scene Scene) core.Vec3 {
	topColor, bottomColor := scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}
