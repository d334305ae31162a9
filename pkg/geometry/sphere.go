package geometry

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// HitDistance solves the ray/sphere quadratic and returns the near root.
// ok is false only when the discriminant is negative; the returned root
// may be zero or negative when the sphere is behind (or around) the ray origin.
// The far root is never reported.
func (s *Sphere) HitDistance(ray core.Ray) (t float64, ok bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients with b = 2*halfB
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}

	return (-halfB - math.Sqrt(discriminant)) / a, true
}

// Hit tests if a ray intersects with the sphere within (tMin, tMax). A NaN root is a miss.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	root, ok := s.HitDistance(ray)
	if !ok || !(root > tMin && root < tMax) {
		return nil, false
	}

	point := ray.At(root)
	return &core.HitRecord{
		T:      root,
		Point:  point,
		Normal: point.Subtract(s.Center).Normalize(),
	}, true
}
