package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a session ID has no stored snapshot.
var ErrNotFound = errors.New("session not found")

// Store persists session snapshots in SQLite so a classroom run can be
// continued or exported from a later invocation.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// OpenStore opens (creating if needed) the snapshot database at path.
// A nil logger disables logging.
func OpenStore(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	st := &Store{db: db, logger: logger}
	if err := st.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

func (st *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		params TEXT NOT NULL,
		generation INTEGER NOT NULL,
		histories TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_updated ON sessions(updated_at);
	`
	if _, err := st.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close releases the underlying database.
func (st *Store) Close() error {
	return st.db.Close()
}

// Save upserts a snapshot, assigning a fresh ID when none is set, and
// returns the stored form.
func (st *Store) Save(snap Snapshot) (Snapshot, error) {
	if snap.ID == "" {
		snap.ID = uuid.NewString()
	}

	params, err := json.Marshal(snap.Params)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to encode params: %w", err)
	}
	histories, err := json.Marshal(snap.Histories)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to encode histories: %w", err)
	}

	_, err = st.db.Exec(`
		INSERT INTO sessions (id, params, generation, histories)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			params = excluded.params,
			generation = excluded.generation,
			histories = excluded.histories,
			updated_at = CURRENT_TIMESTAMP`,
		snap.ID, string(params), snap.Generation, string(histories))
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to save session %s: %w", snap.ID, err)
	}

	st.logger.Info("session saved",
		zap.String("id", snap.ID),
		zap.Int("generation", snap.Generation))
	return st.Load(snap.ID)
}

// Load fetches one snapshot by ID.
func (st *Store) Load(id string) (Snapshot, error) {
	row := st.db.QueryRow(`
		SELECT id, params, generation, histories, created_at, updated_at
		FROM sessions WHERE id = ?`, id)

	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return snap, err
}

// List returns every stored snapshot, most recently updated first.
func (st *Store) List() ([]Snapshot, error) {
	rows, err := st.db.Query(`
		SELECT id, params, generation, histories, created_at, updated_at
		FROM sessions ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// Delete removes one snapshot by ID.
func (st *Store) Delete(id string) error {
	res, err := st.db.Exec(`DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	st.logger.Info("session deleted", zap.String("id", id))
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (Snapshot, error) {
	var (
		snap      Snapshot
		params    string
		histories string
	)
	if err := row.Scan(&snap.ID, &params, &snap.Generation, &histories,
		&snap.CreatedAt, &snap.UpdatedAt); err != nil {
		return Snapshot{}, err
	}
	if err := json.Unmarshal([]byte(params), &snap.Params); err != nil {
		return Snapshot{}, fmt.Errorf("corrupt params for session %s: %w", snap.ID, err)
	}
	if err := json.Unmarshal([]byte(histories), &snap.Histories); err != nil {
		return Snapshot{}, fmt.Errorf("corrupt histories for session %s: %w", snap.ID, err)
	}
	return snap, nil
}
