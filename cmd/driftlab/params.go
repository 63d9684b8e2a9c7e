package main

import (
	"github.com/spf13/cobra"

	"driftlab/internal/session"
)

// Simulation parameter flags shared by the commands that start a run.
// Values left at their defaults fall back to the config file.
type paramFlags struct {
	n          int
	seed       uint64
	p00        float64
	p01        float64
	p11        float64
	replicates int
	batchSize  int
}

func (pf *paramFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&pf.n, "n", 0, "population size per replicate")
	cmd.Flags().Uint64Var(&pf.seed, "seed", 0, "RNG seed")
	cmd.Flags().Float64Var(&pf.p00, "p00", 0, "initial proportion of [0,0] homozygotes")
	cmd.Flags().Float64Var(&pf.p01, "p01", 0, "initial proportion of [0,1] heterozygotes")
	cmd.Flags().Float64Var(&pf.p11, "p11", 0, "initial proportion of [1,1] homozygotes")
	cmd.Flags().IntVar(&pf.replicates, "replicates", 0, "number of replicate populations")
	cmd.Flags().IntVar(&pf.batchSize, "batch-size", 0, "generations advanced per batch")
}

// resolve overlays the flags that were actually set on the config defaults.
func (pf *paramFlags) resolve(cmd *cobra.Command, base session.Params) session.Params {
	p := base
	if cmd.Flags().Changed("n") {
		p.N = pf.n
	}
	if cmd.Flags().Changed("seed") {
		p.Seed = pf.seed
	}
	if cmd.Flags().Changed("p00") {
		p.P00 = pf.p00
	}
	if cmd.Flags().Changed("p01") {
		p.P01 = pf.p01
	}
	if cmd.Flags().Changed("p11") {
		p.P11 = pf.p11
	}
	if cmd.Flags().Changed("replicates") {
		p.Replicates = pf.replicates
	}
	if cmd.Flags().Changed("batch-size") {
		p.BatchSize = pf.batchSize
	}
	return p.WithDefaults()
}
