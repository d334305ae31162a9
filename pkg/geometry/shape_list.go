package geometry

import "github.com/df07/go-sphere-tracer/pkg/core"

// ShapeList is a flat collection of shapes hit by closest-intersection search
type ShapeList []core.Shape

// Hit returns the closest intersection among all shapes within (tMin, tMax)
func (l ShapeList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, shape := range l {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
