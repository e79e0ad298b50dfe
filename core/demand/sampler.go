// Package demand - demand coefficient sampling
// The sampler models surge pricing: a pseudo-random multiplier drawn
// per request from a configured range. It is abstracted behind an
// interface so deterministic doubles can replace it in tests.
package demand

import (
	"math/rand"
	"sync"
	"time"
)

// Sampler draws a demand coefficient uniformly from [min, max]
type Sampler interface {
	Sample(min, max float64) float64
}

// UniformSampler is the default pseudo-random sampler.
// A single instance may be shared across request handlers; the
// generator state is guarded by a mutex.
type UniformSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewUniformSampler creates a sampler seeded from the wall clock
func NewUniformSampler() *UniformSampler {
	return NewSeededSampler(time.Now().UnixNano())
}

// NewSeededSampler creates a sampler with an explicit seed, for
// reproducible draws
func NewSeededSampler(seed int64) *UniformSampler {
	return &UniformSampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample returns a coefficient uniformly distributed in [min, max].
// A degenerate range (max <= min) collapses to min.
func (s *UniformSampler) Sample(min, max float64) float64 {
	if max <= min {
		return min
	}
	s.mu.Lock()
	f := s.rng.Float64()
	s.mu.Unlock()
	return min + f*(max-min)
}

// FixedSampler always returns the same coefficient and counts how many
// times it was consulted. Used by tests and by the one-shot CLI quote.
type FixedSampler struct {
	Coeff float64

	mu    sync.Mutex
	calls int
}

// Sample returns the fixed coefficient
func (s *FixedSampler) Sample(min, max float64) float64 {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.Coeff
}

// Calls reports how many times Sample was invoked
func (s *FixedSampler) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
