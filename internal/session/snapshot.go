package session

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Snapshot is the persisted form of a session: its parameters, generation
// counter, and frequency histories. Populations and RNG state are not
// stored — a run is a pure function of its parameters, so Resume rebuilds
// both by replaying the recorded number of generations.
type Snapshot struct {
	ID         string      `json:"id"`
	Params     Params      `json:"params"`
	Generation int         `json:"generation"`
	Histories  [][]float64 `json:"histories"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Snapshot captures the session under the given ID.
func (s *Session) Snapshot(id string) Snapshot {
	return Snapshot{
		ID:         id,
		Params:     s.params,
		Generation: s.generation,
		Histories:  s.Histories(),
	}
}

// Resume rebuilds a live session from a snapshot by replaying its seed
// through the recorded generation count, then cross-checks the replayed
// histories against the stored ones. Replay is exact: the RNG stream
// depends only on parameters and total generations advanced.
func Resume(snap Snapshot, logger *zap.Logger) (*Session, error) {
	s := New(logger)
	if err := s.Initialize(snap.Params); err != nil {
		return nil, err
	}
	if snap.Generation > 0 {
		if err := s.AdvanceBatch(snap.Generation); err != nil {
			return nil, fmt.Errorf("replaying %d generations: %w", snap.Generation, err)
		}
	}

	for i, rep := range s.replicates {
		if i >= len(snap.Histories) || len(rep.history) != len(snap.Histories[i]) {
			return nil, fmt.Errorf("snapshot %s does not replay: replicate %d history shape mismatch", snap.ID, i)
		}
		for g, f := range rep.history {
			if snap.Histories[i][g] != f {
				return nil, fmt.Errorf("snapshot %s does not replay: replicate %d diverges at generation %d", snap.ID, i, g)
			}
		}
	}
	return s, nil
}
