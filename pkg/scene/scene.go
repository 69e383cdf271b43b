package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	World          *geometry.HittableList // Objects in the scene, searched linearly
	SamplingConfig core.SamplingConfig
}

// newScene builds an empty scene, applying any camera override on top of defaults
func newScene(defaultCamera geometry.CameraConfig, sampling core.SamplingConfig, cameraOverrides []geometry.CameraConfig) *Scene {
	cameraConfig := defaultCamera
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCamera, cameraOverrides[0])
	}

	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		World:          geometry.NewHittableList(),
		SamplingConfig: sampling,
	}
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float32, material core.Material) {
	s.World.Add(geometry.NewSphere(center, radius, material))
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}

// WithImageSize rebuilds the camera for a new output size, keeping the
// viewport aspect ratio equal to the image's.
func (s *Scene) WithImageSize(width, height int) *Scene {
	clone := *s
	clone.SamplingConfig.Width = width
	clone.SamplingConfig.Height = height
	clone.CameraConfig.AspectRatio = float32(width) / float32(height)
	clone.Camera = geometry.NewCamera(clone.CameraConfig)
	return &clone
}
