package material

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float32 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float32) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// Exactly one of reflection or refraction is chosen per call; clear glass
// never absorbs.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	var outwardNormal core.Vec3
	var refractionRatio, cosine float32

	dirDotNormal := rayIn.Direction.Dot(hit.Normal)
	directionLength := rayIn.Direction.Length()
	if dirDotNormal > 0 {
		// Ray travels along the normal: leaving the medium
		outwardNormal = hit.Normal.Negate()
		refractionRatio = d.RefractiveIndex
		cosine = dirDotNormal / directionLength
		cosine = math32.Sqrt(math32.Max(0, 1-d.RefractiveIndex*d.RefractiveIndex*(1-cosine*cosine)))
	} else {
		outwardNormal = hit.Normal
		refractionRatio = 1.0 / d.RefractiveIndex
		cosine = -dirDotNormal / directionLength
	}

	var direction core.Vec3
	refracted, canRefract := Refract(rayIn.Direction, outwardNormal, refractionRatio)
	if canRefract && sampler.Get1D() >= Schlick(cosine, refractionRatio) {
		direction = refracted
	} else {
		// Total internal reflection, or the Fresnel draw chose reflection
		direction = Reflect(rayIn.Direction, hit.Normal)
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}
