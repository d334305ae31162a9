package core

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T      float64 // Parameter t along the ray
	Point  Vec3    // Point of intersection
	Normal Vec3    // Unit outward surface normal
}

// Shape interface for objects that can be hit by rays.
// Hit reports the nearest intersection with tMin < t < tMax.
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}
