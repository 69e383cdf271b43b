package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Sphere represents a sphere shape. A negative radius keeps the same
// intersection but flips the normal inward, which turns the sphere into a
// hollow shell (e.g. the inner wall of a glass bubble).
type Sphere struct {
	Center   core.Vec3
	Radius   float32
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float32, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere.
// Only the nearer root is considered: a ray whose near root falls outside
// (tMin, tMax) misses even if the far root is in range.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float32) (*core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return nil, false
	}

	root := (-halfB - math32.Sqrt(discriminant)) / a
	if root <= tMin || root >= tMax {
		return nil, false
	}

	point := ray.At(root)
	return &core.HitRecord{
		T:        root,
		Point:    point,
		Normal:   point.Subtract(s.Center).Divide(s.Radius),
		Material: s.Material,
	}, true
}
