package scene

import (
	"math/rand"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// RandomSceneSeed fixes the sphere layout so the scene is reproducible
const RandomSceneSeed int64 = 1

// NewRandomScene creates a field of small random spheres around three large
// ones: roughly 80% diffuse, 15% metal and 5% glass.
func NewRandomScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   1.5,
		Aperture:      0.1,
		FocusDistance: 10,
	}

	sampling := core.DefaultSamplingConfig()
	sampling.Width = 300
	sampling.Height = 200
	sampling.SamplesPerPixel = 50

	s := newScene(defaultCameraConfig, sampling, cameraOverrides)
	random := rand.New(rand.NewSource(RandomSceneSeed))

	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	keepClear := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := random.Float32()
			center := core.NewVec3(float32(a)+0.9*random.Float32(), 0.2, float32(b)+0.9*random.Float32())
			if center.Subtract(keepClear).Length() <= 0.9 {
				continue
			}

			var mat core.Material
			switch {
			case chooseMaterial < 0.8:
				mat = material.NewLambertian(core.NewVec3(
					random.Float32()*random.Float32(),
					random.Float32()*random.Float32(),
					random.Float32()*random.Float32(),
				))
			case chooseMaterial < 0.95:
				mat = material.NewMetal(core.NewVec3(
					0.5*(1+random.Float32()),
					0.5*(1+random.Float32()),
					0.5*(1+random.Float32()),
				), 0.5*random.Float32())
			default:
				mat = material.NewDielectric(1.5)
			}
			s.AddSphere(center, 0.2, mat)
		}
	}

	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5))
	s.AddSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	s.AddSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))

	return s
}
