package rng

import "math/rand"

// Seeded is a deterministic generator for tests
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded returns a generator seeded with the given value
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform random int in [0, n)
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}
