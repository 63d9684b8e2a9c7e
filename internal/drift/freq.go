package drift

// Freq0 returns the frequency of allele 0 across all 2N allele slots of the
// population. Deterministic, no RNG involved. An empty population (never
// produced by BuildInitial, which rejects n < 1) reports 0.
func Freq0(pop Population) float64 {
	if len(pop) == 0 {
		return 0
	}
	n0 := 0
	for _, g := range pop {
		if g[0] == Allele0 {
			n0++
		}
		if g[1] == Allele0 {
			n0++
		}
	}
	return float64(n0) / float64(2*len(pop))
}
