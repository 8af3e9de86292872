package rabduction

import "math/rand"

// Random is the source of randomness for platform placement, archetype
// choice and bounce sounds. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// NewRandom returns a seeded Random.
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}
