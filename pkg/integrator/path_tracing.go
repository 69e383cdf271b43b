package integrator

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	config     core.SamplingConfig
	background SkyGradient
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config core.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config:     config,
		background: DefaultSkyGradient(),
	}
}

// WithBackground returns a copy of the integrator using a different sky
func (pt *PathTracingIntegrator) WithBackground(background SkyGradient) *PathTracingIntegrator {
	clone := *pt
	clone.background = background
	return &clone
}

// RayColor computes the color for a single ray.
// Equivalent to the recursion color(r) = attenuation ⊙ color(scattered),
// unrolled into a loop that carries the attenuation product. A path that is
// absorbed, or that scatters at bounce MaxDepth, contributes black.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Shape, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for depth := 0; ; depth++ {
		hit, isHit := world.Hit(ray, core.DefaultTMin, math32.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(pt.background.Evaluate(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter || depth >= pt.config.MaxDepth {
			return core.Vec3{X: 0, Y: 0, Z: 0}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}
}
