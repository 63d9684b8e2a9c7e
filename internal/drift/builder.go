package drift

import (
	"fmt"
	"math/rand/v2"
)

// BuildInitial constructs a generation-zero population of n individuals from
// target genotype proportions. Counts are derived by truncation:
// n00 = floor(n*p00), n01 = floor(n*p01), and the [1,1] class absorbs the
// remainder, so p11 never contributes to the counts directly. The assembled
// sequence is shuffled uniformly with rng.
//
// Inputs are rejected with ErrInvalidParameter before any work is done:
// n < 1, any proportion outside [0,1], or p00+p01 large enough to drive the
// remainder negative. The proportions are not required to sum to 1.
func BuildInitial(n int, p00, p01, p11 float64, rng *rand.Rand) (Population, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: population size %d, need at least 1", ErrInvalidParameter, n)
	}
	for _, pr := range []struct {
		name  string
		value float64
	}{{"p00", p00}, {"p01", p01}, {"p11", p11}} {
		if pr.value < 0 || pr.value > 1 {
			return nil, fmt.Errorf("%w: proportion %s=%v outside [0,1]", ErrInvalidParameter, pr.name, pr.value)
		}
	}

	n00 := int(float64(n) * p00)
	n01 := int(float64(n) * p01)
	n11 := n - n00 - n01
	if n11 < 0 {
		return nil, fmt.Errorf("%w: p00+p01=%v leaves a negative [1,1] remainder (%d)", ErrInvalidParameter, p00+p01, n11)
	}

	pop := make(Population, 0, n)
	for i := 0; i < n00; i++ {
		pop = append(pop, Genotype{Allele0, Allele0})
	}
	for i := 0; i < n01; i++ {
		pop = append(pop, Genotype{Allele0, Allele1})
	}
	for i := 0; i < n11; i++ {
		pop = append(pop, Genotype{Allele1, Allele1})
	}

	rng.Shuffle(len(pop), func(i, j int) {
		pop[i], pop[j] = pop[j], pop[i]
	})
	return pop, nil
}
