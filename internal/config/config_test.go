package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driftlab/internal/drift"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Simulation.N)
	assert.Equal(t, uint64(1234), cfg.Simulation.Seed)
	assert.Equal(t, 0.50, cfg.Simulation.P00)
	assert.Equal(t, "data/driftlab.db", cfg.Storage.DatabasePath)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "driftlab.yaml")
	content := `
simulation:
  n: 100
  seed: 7
  p00: 0.25
  p01: 0.25
  p11: 0.5
storage:
  database_path: /tmp/custom.db
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Simulation.N)
	assert.Equal(t, uint64(7), cfg.Simulation.Seed)
	assert.Equal(t, 0.5, cfg.Simulation.P11)
	assert.Equal(t, "/tmp/custom.db", cfg.Storage.DatabasePath)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DRIFTLAB_DB", "/tmp/env.db")
	t.Setenv("DRIFTLAB_SEED", "99")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.Storage.DatabasePath)
	assert.Equal(t, uint64(99), cfg.Simulation.Seed)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation: ["), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestValidate_RejectsBadSimulationDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Simulation.P00 = 0.8
	cfg.Simulation.P01 = 0.8
	assert.ErrorIs(t, cfg.Validate(), drift.ErrInvalidParameter)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "driftlab.yaml")

	cfg := DefaultConfig()
	cfg.Simulation.N = 42
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.Simulation.N)
}
