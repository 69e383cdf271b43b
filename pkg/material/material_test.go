package material

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func inUnitRange(v core.Vec3) bool {
	return v.X >= 0 && v.X <= 1 && v.Y >= 0 && v.Y <= 1 && v.Z >= 0 && v.Z <= 1
}

func TestLambertian_Scatter(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.3, 0.1))
	hit := core.HitRecord{
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 1, 0),
		T:        1.0,
		Material: lambertian,
	}
	ray := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1))
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 100; i++ {
		result, scattered := lambertian.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Lambertian should always scatter")
		}
		if !inUnitRange(result.Attenuation) {
			t.Errorf("Attenuation %v outside [0,1]", result.Attenuation)
		}
		if result.Scattered.Origin != hit.Point {
			t.Errorf("Scattered ray should start at hit point, got %v", result.Scattered.Origin)
		}
		// Direction lands inside the unit sphere centered on the normal tip
		if result.Scattered.Direction.Subtract(hit.Normal).Length() >= 1.0 {
			t.Errorf("Direction %v outside unit sphere around normal", result.Scattered.Direction)
		}
	}
}

func TestMetal_PerfectMirror(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)
	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}
	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))

	result, scattered := metal.Scatter(ray, hit, core.NewSeededSampler(42))
	if !scattered {
		t.Fatal("Expected mirror reflection to scatter")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	if !result.Scattered.Direction.ApproxEqual(expected, 1e-6) {
		t.Errorf("Expected reflection %v, got %v", expected, result.Scattered.Direction)
	}
	if result.Attenuation != metal.Albedo || !inUnitRange(result.Attenuation) {
		t.Errorf("Expected attenuation %v, got %v", metal.Albedo, result.Attenuation)
	}
}

func TestMetal_FuzzClamped(t *testing.T) {
	tests := []struct {
		input    float32
		expected float32
	}{
		{-0.5, 0},
		{0.3, 0.3},
		{2.0, 1},
	}

	for _, tt := range tests {
		if metal := NewMetal(core.NewVec3(1, 1, 1), tt.input); metal.Fuzz != tt.expected {
			t.Errorf("NewMetal(fuzz=%f): expected %f, got %f", tt.input, tt.expected, metal.Fuzz)
		}
	}
}

func TestMetal_FuzzyGrazingAbsorbs(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 1.0)
	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}
	// Nearly parallel to the surface, so fuzz often pushes it below
	ray := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))
	sampler := core.NewSeededSampler(3)

	absorbed, reflected := 0, 0
	for i := 0; i < 500; i++ {
		result, scattered := metal.Scatter(ray, hit, sampler)
		if !scattered {
			absorbed++
			continue
		}
		reflected++
		if result.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Errorf("Scattered direction %v points into the surface", result.Scattered.Direction)
		}
	}

	if absorbed == 0 || reflected == 0 {
		t.Errorf("Expected both absorption and reflection, got absorbed=%d reflected=%d", absorbed, reflected)
	}
}

func TestDielectric_ChoosesExactlyOneBranch(t *testing.T) {
	glass := NewDielectric(1.5)
	hit := core.HitRecord{
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 1, 0),
		Material: glass,
	}
	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0)) // 45° from outside

	reflected := Reflect(ray.Direction, hit.Normal)
	refracted, ok := Refract(ray.Direction, hit.Normal, 1/1.5)
	if !ok {
		t.Fatal("Expected refraction to be possible entering glass")
	}

	// Schlick reflectance at 45° is about 0.042
	tests := []struct {
		name     string
		draw     float32
		expected core.Vec3
	}{
		{"low draw reflects", 0.01, reflected},
		{"high draw refracts", 0.5, refracted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, scattered := glass.Scatter(ray, hit, core.NewConstantSampler(tt.draw))
			if !scattered {
				t.Fatal("Dielectric should always scatter")
			}
			if result.Attenuation != core.NewVec3(1, 1, 1) {
				t.Errorf("Expected white attenuation, got %v", result.Attenuation)
			}
			if result.Scattered.Direction != tt.expected {
				t.Errorf("Expected direction %v, got %v", tt.expected, result.Scattered.Direction)
			}
		})
	}
}

func TestDielectric_StochasticBranching(t *testing.T) {
	glass := NewDielectric(1.5)
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	// Steep grazing angle raises the reflectance so both outcomes show up
	ray := core.NewRay(core.NewVec3(-1, 0.1, 0), core.NewVec3(1, -0.1, 0))
	sampler := core.NewSeededSampler(11)

	hasReflection, hasRefraction := false, false
	for i := 0; i < 1000 && (!hasReflection || !hasRefraction); i++ {
		result, scattered := glass.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if result.Scattered.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	if !hasReflection || !hasRefraction {
		t.Errorf("Expected both branches, got reflection=%t refraction=%t", hasReflection, hasRefraction)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	// Outward normal, ray inside the glass heading out at a shallow angle
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.NewVec3(-1, -0.2, 0), core.NewVec3(1, 0.2, 0))

	for _, draw := range []float32{0.0, 0.5, 0.99} {
		result, scattered := glass.Scatter(ray, hit, core.NewConstantSampler(draw))
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if result.Scattered.Direction.Y >= 0 {
			t.Errorf("Expected total internal reflection back into the glass, got %v", result.Scattered.Direction)
		}
	}
}

func TestRefract_NormalIncidence(t *testing.T) {
	refracted, ok := Refract(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), 1/1.5)
	if !ok {
		t.Fatal("Expected refraction at normal incidence")
	}
	if !refracted.ApproxEqual(core.NewVec3(0, -1, 0), 1e-6) {
		t.Errorf("Expected straight-through refraction, got %v", refracted)
	}
}

func TestSchlick(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float32
		index    float32
		expected float64
	}{
		{"normal incidence glass", 1.0, 1.5, 0.04},
		{"inverse ratio is symmetric", 1.0, 1 / 1.5, 0.04},
		{"grazing", 0.0, 1.5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Schlick(tt.cosine, tt.index)
			if math.Abs(float64(got)-tt.expected) > 1e-5 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}
