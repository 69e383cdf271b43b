package core

// DefaultTMin is the smallest ray parameter accepted as a hit. It keeps
// scattered rays from re-hitting the surface they just left (shadow acne).
const DefaultTMin float32 = 0.001

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray Ray, tMin, tMax float32) (*HitRecord, bool)
}

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter returns false when the incoming ray is absorbed
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T        float32  // Parameter t along the ray
	Point    Vec3     // Point of intersection
	Normal   Vec3     // Surface normal, outward for positive radius spheres
	Material Material // Material of the hit object
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}
