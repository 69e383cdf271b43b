package integrator

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray from world
	RayColor(ray core.Ray, world core.Shape, sampler core.Sampler) core.Vec3
}

// SkyGradient is the background seen by rays that escape the scene
type SkyGradient struct {
	Bottom core.Vec3 // Color looking straight down
	Top    core.Vec3 // Color looking straight up
}

// DefaultSkyGradient blends white at the horizon-and-below into light blue overhead
func DefaultSkyGradient() SkyGradient {
	return SkyGradient{
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
		Top:    core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Evaluate returns the gradient color for a ray direction
func (g SkyGradient) Evaluate(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return g.Bottom.Lerp(g.Top, t)
}
