package rng

// Generator is a source of random numbers for shuffling card piles
type Generator interface {
	// Intn returns a uniform random int in [0, n)
	Intn(n int) int
}
