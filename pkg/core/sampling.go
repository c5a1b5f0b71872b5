package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; every tile gets its own instance.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own deterministic source
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// FixedSampler always returns the same sample; used for reproducible sample placement
type FixedSampler struct {
	Value Vec2
}

// Get1D returns the X component of the fixed value
func (f FixedSampler) Get1D() float64 {
	return f.Value.X
}

// Get2D returns the fixed value
func (f FixedSampler) Get2D() Vec2 {
	return f.Value
}

// SampleSymmetric maps a [0,1)² sample to a symmetric offset in [-extent, extent)²
func SampleSymmetric(sample Vec2, extent float64) Vec2 {
	return NewVec2((2*sample.X-1)*extent, (2*sample.Y-1)*extent)
}
