// Package drift implements the Wright-Fisher model of genetic drift at a
// single diploid locus with two alleles. Populations evolve in discrete,
// non-overlapping generations under random mating, with no selection,
// mutation, or migration.
//
// All randomized operations take an explicit *rand.Rand so that a whole
// simulation is a pure function of its seed. Callers that need bit-for-bit
// reproducible runs must route every draw through a single shared stream in
// a fixed order.
package drift

import (
	"errors"
)

// Allele values at the modeled locus. No other values ever appear in a
// reachable population.
const (
	Allele0 uint8 = 0
	Allele1 uint8 = 1
)

// Genotype is the pair of alleles carried by one diploid individual.
// The fixed-size array makes the "exactly two alleles" invariant structural.
type Genotype [2]uint8

// Population is an ordered sequence of genotypes. Order carries no meaning,
// but a concrete slice is required for indexed sampling during reproduction.
type Population []Genotype

// Error kinds surfaced by the simulator. Wrapped errors carry context;
// callers classify with errors.Is.
var (
	// ErrInvalidParameter marks rejected inputs: a non-positive population
	// size, proportions outside [0,1], or proportions whose derived
	// homozygote remainder would be negative.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidState marks operations applied to a state that cannot
	// support them, such as advancing a population too small to supply two
	// distinct parents.
	ErrInvalidState = errors.New("invalid state")
)

// Counts returns the number of individuals per genotype class:
// homozygous for allele 0, heterozygous, and homozygous for allele 1.
// The two heterozygote orderings are counted as one class.
func (p Population) Counts() (n00, n01, n11 int) {
	for _, g := range p {
		switch g[0] + g[1] {
		case 0:
			n00++
		case 1:
			n01++
		default:
			n11++
		}
	}
	return n00, n01, n11
}
