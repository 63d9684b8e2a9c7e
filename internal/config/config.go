// Package config holds driftlab configuration: simulation defaults, the
// snapshot database location, and logging settings. Configuration is a YAML
// file with environment-variable overrides; a missing file yields the
// classroom defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"driftlab/internal/session"
)

// Config holds all driftlab configuration.
type Config struct {
	// Simulation defaults applied when flags leave a parameter unset.
	Simulation session.Params `yaml:"simulation"`

	// Snapshot storage.
	Storage StorageConfig `yaml:"storage"`

	// Logging.
	Logging LoggingConfig `yaml:"logging"`
}

// StorageConfig configures the snapshot store.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the classroom defaults: ten individuals, ten
// replicates, ten generations per step, genotype mix 50/40/10.
func DefaultConfig() *Config {
	return &Config{
		Simulation: session.Params{
			N:          10,
			Seed:       1234,
			P00:        0.50,
			P01:        0.40,
			P11:        0.10,
			Replicates: session.DefaultReplicates,
			BatchSize:  session.DefaultBatchSize,
		},
		Storage: StorageConfig{
			DatabasePath: "data/driftlab.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults when
// the file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("DRIFTLAB_DB"); path != "" {
		c.Storage.DatabasePath = path
	}
	if seed := os.Getenv("DRIFTLAB_SEED"); seed != "" {
		if v, err := strconv.ParseUint(seed, 10, 64); err == nil {
			c.Simulation.Seed = v
		}
	}
	if level := os.Getenv("DRIFTLAB_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Validate checks the simulation defaults so a bad config file is caught at
// startup rather than on the first initialize.
func (c *Config) Validate() error {
	return c.Simulation.WithDefaults().Validate()
}
