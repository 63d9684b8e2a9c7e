// Package session owns a set of independently drifting replicate
// populations and their frequency histories. A Session is the unit the CLI
// and UI operate on: it is created empty, initialized from parameters, and
// advanced in batches of whole generations. All replicates draw from one
// shared RNG stream in a fixed order (generation-outer, replicate-inner),
// so a session is fully determined by its parameters.
package session

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"driftlab/internal/drift"
)

// Defaults matching the classroom setup: ten replicates, ten generations
// per advance.
const (
	DefaultReplicates = 10
	DefaultBatchSize  = 10
)

// ErrNotInitialized is returned when a batch advance is requested before a
// successful Initialize. It is a drift.ErrInvalidState.
var ErrNotInitialized = fmt.Errorf("%w: session not initialized", drift.ErrInvalidState)

// Params are the inputs of one simulation run. Replicates and BatchSize
// fall back to the classroom defaults when left zero.
type Params struct {
	N          int     `json:"n" yaml:"n"`
	Seed       uint64  `json:"seed" yaml:"seed"`
	P00        float64 `json:"p00" yaml:"p00"`
	P01        float64 `json:"p01" yaml:"p01"`
	P11        float64 `json:"p11" yaml:"p11"`
	Replicates int     `json:"replicates" yaml:"replicates"`
	BatchSize  int     `json:"batch_size" yaml:"batch_size"`
}

// WithDefaults returns a copy of p with zero Replicates/BatchSize replaced
// by the classroom defaults.
func (p Params) WithDefaults() Params {
	if p.Replicates <= 0 {
		p.Replicates = DefaultReplicates
	}
	if p.BatchSize <= 0 {
		p.BatchSize = DefaultBatchSize
	}
	return p
}

// Validate rejects parameter sets the population builder would reject,
// before any session state is touched.
func (p Params) Validate() error {
	if p.N < 1 {
		return fmt.Errorf("%w: population size %d, need at least 1", drift.ErrInvalidParameter, p.N)
	}
	for _, pr := range []struct {
		name  string
		value float64
	}{{"p00", p.P00}, {"p01", p.P01}, {"p11", p.P11}} {
		if pr.value < 0 || pr.value > 1 {
			return fmt.Errorf("%w: proportion %s=%v outside [0,1]", drift.ErrInvalidParameter, pr.name, pr.value)
		}
	}
	// Same truncation rule as the population builder: the [1,1] class
	// absorbs the remainder and must not go negative.
	n00 := int(float64(p.N) * p.P00)
	n01 := int(float64(p.N) * p.P01)
	if p.N-n00-n01 < 0 {
		return fmt.Errorf("%w: p00+p01=%v leaves a negative [1,1] remainder", drift.ErrInvalidParameter, p.P00+p.P01)
	}
	if p.Replicates < 1 {
		return fmt.Errorf("%w: replicate count %d, need at least 1", drift.ErrInvalidParameter, p.Replicates)
	}
	return nil
}

// Replicate is one independently evolving population plus its append-only
// frequency history (one entry per generation, generation 0 included).
type Replicate struct {
	pop     drift.Population
	history []float64
}

// History returns a copy of the replicate's frequency history.
func (r *Replicate) History() []float64 {
	out := make([]float64, len(r.history))
	copy(out, r.history)
	return out
}

// Current returns the replicate's allele-0 frequency at the latest
// generation.
func (r *Replicate) Current() float64 {
	return r.history[len(r.history)-1]
}

// Session holds the replicate set, the shared generation counter, and the
// shared RNG stream. The zero value is unusable; construct with New. Not
// safe for concurrent use: operations are discrete user-triggered steps
// that run to completion.
type Session struct {
	logger     *zap.Logger
	params     Params
	rng        *rand.Rand
	replicates []*Replicate
	generation int
}

// New returns an uninitialized session. A nil logger disables logging.
func New(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{logger: logger}
}

// Initialize builds the replicate populations from p and resets the
// generation counter. Any prior state is discarded only after the new state
// is fully built; a rejected parameter set leaves the session as it was.
func (s *Session) Initialize(p Params) error {
	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		return err
	}

	rng := drift.NewRNG(p.Seed)
	replicates := make([]*Replicate, p.Replicates)
	for i := range replicates {
		pop, err := drift.BuildInitial(p.N, p.P00, p.P01, p.P11, rng)
		if err != nil {
			return fmt.Errorf("replicate %d: %w", i, err)
		}
		replicates[i] = &Replicate{
			pop:     pop,
			history: []float64{drift.Freq0(pop)},
		}
	}

	s.params = p
	s.rng = rng
	s.replicates = replicates
	s.generation = 0

	s.logger.Info("session initialized",
		zap.Int("n", p.N),
		zap.Uint64("seed", p.Seed),
		zap.Int("replicates", p.Replicates),
		zap.Float64("initial_freq0", replicates[0].Current()))
	return nil
}

// Initialized reports whether the session holds a replicate set.
func (s *Session) Initialized() bool {
	return s.replicates != nil
}

// AdvanceBatch advances every replicate by the given number of whole
// generations. Replicates advance in a fixed order within each generation
// and the shared counter increments once per completed sweep, which pins
// the RNG draw order for reproducibility. A failed sweep (possible only
// when N < 2) leaves the session at the last completed generation.
func (s *Session) AdvanceBatch(generations int) error {
	if !s.Initialized() {
		return ErrNotInitialized
	}
	if generations < 1 {
		return fmt.Errorf("%w: batch of %d generations", drift.ErrInvalidParameter, generations)
	}

	for g := 0; g < generations; g++ {
		next := make([]drift.Population, len(s.replicates))
		for i, rep := range s.replicates {
			pop, err := drift.Advance(rep.pop, s.rng)
			if err != nil {
				return fmt.Errorf("replicate %d at generation %d: %w", i, s.generation+1, err)
			}
			next[i] = pop
		}
		for i, rep := range s.replicates {
			rep.pop = next[i]
			rep.history = append(rep.history, drift.Freq0(next[i]))
		}
		s.generation++
	}

	s.logger.Debug("batch advanced",
		zap.Int("generations", generations),
		zap.Int("generation", s.generation))
	return nil
}

// Params returns the parameters the session was initialized with
// (defaults applied).
func (s *Session) Params() Params {
	return s.params
}

// Generation returns the shared generation counter.
func (s *Session) Generation() int {
	return s.generation
}

// Replicates returns the replicate set in its fixed order.
func (s *Session) Replicates() []*Replicate {
	out := make([]*Replicate, len(s.replicates))
	copy(out, s.replicates)
	return out
}

// Histories returns a deep copy of every replicate's frequency history,
// each of length Generation()+1.
func (s *Session) Histories() [][]float64 {
	out := make([][]float64, len(s.replicates))
	for i, rep := range s.replicates {
		out[i] = rep.History()
	}
	return out
}

// Frequencies returns the current allele-0 frequency of each replicate.
func (s *Session) Frequencies() []float64 {
	out := make([]float64, len(s.replicates))
	for i, rep := range s.replicates {
		out[i] = rep.Current()
	}
	return out
}
