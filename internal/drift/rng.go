package drift

import "math/rand/v2"

// NewRNG returns a deterministic generator for the given seed. Every
// simulation draw (initial shuffle, parent sampling, allele segregation)
// must come from one stream created here; two runs with the same seed and
// parameters then produce identical frequency histories.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
