package cave

import "math/rand"

// Rand is the source of randomness threaded through every pipeline stage.
// It is passed explicitly rather than read from ambient state, so a fixed
// seed reproduces the exact draw sequence and tests can substitute a
// scripted double. Reordering draws changes the map non-reproducibly.
type Rand interface {
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
	// IntRange returns a uniform int in [lo, hi).
	IntRange(lo, hi int) int
}

type seededRand struct {
	r *rand.Rand
}

// NewRand creates a deterministic Rand from the given seed.
func NewRand(seed int64) Rand {
	return &seededRand{r: rand.New(rand.NewSource(seed))}
}

func (s *seededRand) Float64() float64 {
	return s.r.Float64()
}

func (s *seededRand) IntRange(lo, hi int) int {
	return lo + s.r.Intn(hi-lo)
}
