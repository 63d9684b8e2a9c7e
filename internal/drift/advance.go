package drift

import (
	"fmt"
	"math/rand/v2"
)

// Advance produces the next generation from pop under Wright-Fisher
// reproduction. Each of the len(pop) offspring is bred independently: two
// distinct parents are drawn uniformly by position (without replacement for
// that one offspring only; the same pair may recur across offspring), and
// the offspring receives one uniformly chosen allele from each parent.
//
// The input population is never mutated; every offspring genotype is a fresh
// value. The draw order per offspring is fixed — first parent index, second
// parent index, allele from the first parent, allele from the second — so a
// seeded stream replays identically.
//
// Populations shorter than 2 cannot supply two distinct parents and are
// rejected with ErrInvalidState.
func Advance(pop Population, rng *rand.Rand) (Population, error) {
	n := len(pop)
	if n < 2 {
		return nil, fmt.Errorf("%w: population of %d cannot supply two distinct parents", ErrInvalidState, n)
	}

	next := make(Population, n)
	for k := range next {
		i := rng.IntN(n)
		j := rng.IntN(n - 1)
		if j >= i {
			j++
		}
		next[k] = Genotype{
			pop[i][rng.IntN(2)],
			pop[j][rng.IntN(2)],
		}
	}
	return next, nil
}
