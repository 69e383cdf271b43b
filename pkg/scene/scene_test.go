package scene

import (
	"strings"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

func spheres(t *testing.T, s *Scene) []*geometry.Sphere {
	t.Helper()
	var result []*geometry.Sphere
	for _, shape := range s.World.Shapes {
		sphere, ok := shape.(*geometry.Sphere)
		if !ok {
			t.Fatalf("Expected only spheres in scene, got %T", shape)
		}
		result = append(result, sphere)
	}
	return result
}

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()

	if s.GetPrimitiveCount() != 5 {
		t.Fatalf("Expected 5 spheres, got %d", s.GetPrimitiveCount())
	}

	all := spheres(t, s)
	if _, ok := all[0].Material.(*material.Lambertian); !ok {
		t.Errorf("Expected diffuse center sphere, got %T", all[0].Material)
	}
	if all[1].Radius != 100 {
		t.Errorf("Expected ground radius 100, got %v", all[1].Radius)
	}
	if metal, ok := all[2].Material.(*material.Metal); !ok || metal.Fuzz != 0 {
		t.Errorf("Expected polished metal sphere, got %#v", all[2].Material)
	}

	// Hollow bubble: outer shell plus a negative radius inner wall sharing a center
	outer, inner := all[3], all[4]
	if outer.Center != inner.Center {
		t.Errorf("Expected concentric bubble, got %v and %v", outer.Center, inner.Center)
	}
	if outer.Radius != 0.5 || inner.Radius != -0.45 {
		t.Errorf("Expected radii 0.5 and -0.45, got %v and %v", outer.Radius, inner.Radius)
	}
	for _, glass := range []*geometry.Sphere{outer, inner} {
		d, ok := glass.Material.(*material.Dielectric)
		if !ok || d.RefractiveIndex != 1.5 {
			t.Errorf("Expected glass with index 1.5, got %#v", glass.Material)
		}
	}

	if s.CameraConfig.LookFrom != core.NewVec3(3, 3, 2) || s.CameraConfig.Aperture != 2.0 {
		t.Errorf("Unexpected camera config: %+v", s.CameraConfig)
	}
	if s.SamplingConfig.Width != 200 || s.SamplingConfig.Height != 100 || s.SamplingConfig.SamplesPerPixel != 100 {
		t.Errorf("Unexpected sampling config: %+v", s.SamplingConfig)
	}
}

func TestNewDefaultScene_CameraOverride(t *testing.T) {
	s := NewDefaultScene(geometry.CameraConfig{Aperture: 0.5, VFov: 40})

	if s.CameraConfig.Aperture != 0.5 || s.CameraConfig.VFov != 40 {
		t.Errorf("Expected overridden aperture and fov, got %+v", s.CameraConfig)
	}
	if s.CameraConfig.LookFrom != core.NewVec3(3, 3, 2) {
		t.Errorf("Expected default LookFrom kept, got %v", s.CameraConfig.LookFrom)
	}
	if s.Camera.Config() != s.CameraConfig {
		t.Error("Expected camera built from the merged config")
	}
}

func TestNewSimpleScene(t *testing.T) {
	s := NewSimpleScene()

	if s.GetPrimitiveCount() != 2 {
		t.Fatalf("Expected 2 spheres, got %d", s.GetPrimitiveCount())
	}
	if s.CameraConfig != geometry.DefaultCameraConfig() {
		t.Errorf("Expected default camera, got %+v", s.CameraConfig)
	}

	// The center pixel looks straight down -z into the diffuse sphere
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := s.World.Hit(ray, core.DefaultTMin, 1000)
	if !ok {
		t.Fatal("Expected center ray to hit the sphere")
	}
	if !hit.Point.ApproxEqual(core.NewVec3(0, 0, -0.5), 1e-5) {
		t.Errorf("Expected hit at (0,0,-0.5), got %v", hit.Point)
	}
}

func TestNewRandomScene(t *testing.T) {
	a := NewRandomScene()
	b := NewRandomScene()

	if a.GetPrimitiveCount() != b.GetPrimitiveCount() {
		t.Fatalf("Expected reproducible layout, got %d and %d spheres", a.GetPrimitiveCount(), b.GetPrimitiveCount())
	}
	// Ground plus three large spheres plus at most the full 22x22 grid
	if a.GetPrimitiveCount() < 4+400 || a.GetPrimitiveCount() > 4+22*22 {
		t.Errorf("Unexpected sphere count %d", a.GetPrimitiveCount())
	}

	sa, sb := spheres(t, a), spheres(t, b)
	keepClear := core.NewVec3(4, 0.2, 0)
	for i := range sa {
		if sa[i].Center != sb[i].Center || sa[i].Radius != sb[i].Radius {
			t.Fatalf("Sphere %d differs between builds", i)
		}
		if sa[i].Radius == 0.2 && sa[i].Center.Subtract(keepClear).Length() <= 0.9 {
			t.Errorf("Small sphere %d at %v overlaps the large metal sphere", i, sa[i].Center)
		}
	}
}

func TestWithImageSize(t *testing.T) {
	s := NewDefaultScene()
	resized := s.WithImageSize(64, 64)

	if resized.CameraConfig.AspectRatio != 1 {
		t.Errorf("Expected aspect ratio 1, got %v", resized.CameraConfig.AspectRatio)
	}
	if resized.SamplingConfig.Width != 64 || resized.SamplingConfig.Height != 64 {
		t.Errorf("Unexpected sampling config %+v", resized.SamplingConfig)
	}
	if s.CameraConfig.AspectRatio != 2 || s.SamplingConfig.Width != 200 {
		t.Error("Expected original scene to be left untouched")
	}
}

func TestCreate(t *testing.T) {
	for _, name := range SceneNames() {
		t.Run(name, func(t *testing.T) {
			s, err := Create(name)
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", name, err)
			}
			if s.World == nil || s.Camera == nil || s.GetPrimitiveCount() == 0 {
				t.Errorf("Expected a populated scene, got %+v", s)
			}
		})
	}

	_, err := Create("cornell")
	if err == nil {
		t.Fatal("Expected error for unknown scene")
	}
	if !strings.Contains(err.Error(), "default") {
		t.Errorf("Expected error to list available scenes, got %v", err)
	}
}

func TestListScenes(t *testing.T) {
	scenes := ListScenes()

	if len(scenes) != 3 {
		t.Fatalf("Expected 3 scenes, got %d", len(scenes))
	}
	expectedIDs := []string{"default", "random", "simple"}
	for i, info := range scenes {
		if info.ID != expectedIDs[i] {
			t.Errorf("Expected scene %d to be %q, got %q", i, expectedIDs[i], info.ID)
		}
		if info.Description == "" || info.Spheres == 0 || info.Width == 0 {
			t.Errorf("Incomplete scene info: %+v", info)
		}
	}
	if scenes[0].DisplayName != "Default" || scenes[0].Spheres != 5 {
		t.Errorf("Unexpected default scene info: %+v", scenes[0])
	}
}

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"default", "Default"},
		{"sphere-field", "Sphere Field"},
		{"glass_bubble", "Glass Bubble"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if result := titleCase(tc.input); result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}
