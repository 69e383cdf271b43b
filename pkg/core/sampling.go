package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float32
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float32 in [0, 1)
func (r *RandomSampler) Get1D() float32 {
	return r.random.Float32()
}

// Get2D returns two random float32 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float32(), r.random.Float32())
}

// Get3D returns three random float32 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float32(), r.random.Float32(), r.random.Float32())
}

// RandomInUnitDisk generates a random point in the unit disk (z = 0) by
// rejection sampling the [-1,1]² square. Expected ~1.27 draws; the loop has
// no iteration cap.
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomInUnitSphere generates a random point inside the unit sphere by
// rejection sampling the [-1,1]³ cube. Expected ~1.9 draws; the loop has
// no iteration cap.
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		p := sampler.Get3D().Multiply(2).Subtract(NewVec3(1, 1, 1))
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// ConstantSampler returns the same value for every dimension. Useful for
// reproducing a single deterministic path, e.g. pixel-center rays with a
// pinhole lens. Value must lie in (0.22, 0.78) or the rejection samplers
// above never accept a point.
type ConstantSampler struct {
	Value float32
}

// NewConstantSampler creates a sampler that always returns value
func NewConstantSampler(value float32) *ConstantSampler {
	return &ConstantSampler{Value: value}
}

// Get1D returns the constant value
func (c *ConstantSampler) Get1D() float32 {
	return c.Value
}

// Get2D returns the constant value in both dimensions
func (c *ConstantSampler) Get2D() Vec2 {
	return NewVec2(c.Value, c.Value)
}

// Get3D returns the constant value in all three dimensions
func (c *ConstantSampler) Get3D() Vec3 {
	return NewVec3(c.Value, c.Value, c.Value)
}
