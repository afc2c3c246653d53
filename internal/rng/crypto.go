package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto draws its numbers from crypto/rand
type Crypto struct{}

// Intn returns a uniform random int in [0, n)
func (c Crypto) Intn(n int) int {
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(val.Int64())
}
