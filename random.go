package enumext

import "math/rand/v2"

// Rand is the randomness source consumed by RandomWith. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Random returns a uniformly selected variant using the package-global
// randomness source.
func (e *Enum) Random() Variant {
	return e.tab.variants[rand.IntN(len(e.tab.variants))]
}

// RandomWith returns a uniformly selected variant using the supplied source.
// Deterministic sources make selection reproducible in tests.
func (e *Enum) RandomWith(r Rand) Variant {
	return e.tab.variants[r.IntN(len(e.tab.variants))]
}
