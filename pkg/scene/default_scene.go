package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// NewDefaultScene creates the showcase scene: diffuse, metal and glass
// spheres on a ground sphere, viewed from above with a wide aperture.
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		LookFrom:      core.NewVec3(3, 3, 2),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		AspectRatio:   2,
		Aperture:      2.0, // Strong depth of field blur
		FocusDistance: 0.0, // Focus on LookAt
	}

	s := newScene(defaultCameraConfig, core.DefaultSamplingConfig(), cameraOverrides)

	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)
	materialGlass := material.NewDielectric(1.5)

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, lambertianBlue)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, metalGold)

	// Hollow glass bubble: the negative radius inner wall has inward normals
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, materialGlass)
	s.AddSphere(core.NewVec3(-1, 0, -1), -0.45, materialGlass)

	return s
}

// NewSimpleScene creates a single diffuse sphere on the ground, seen by the
// axis-aligned default camera.
func NewSimpleScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := newScene(geometry.DefaultCameraConfig(), core.DefaultSamplingConfig(), cameraOverrides)

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))

	return s
}
