// Package main implements the driftlab command line interface: a
// finite-population Wright-Fisher genetic-drift simulator with replicate
// tracking, snapshot persistence, and tabular export.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"driftlab/internal/config"
	"driftlab/internal/session"
	"driftlab/internal/ui"
)

var (
	// Global flags
	cfgPath string
	dbPath  string
	verbose bool

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "driftlab",
	Short: "driftlab - Wright-Fisher genetic drift simulator",
	Long: `driftlab simulates genetic drift at a single diploid locus in a finite
population: discrete non-overlapping generations, random mating, and no
selection, mutation, or migration. Ten replicate populations evolve from
the same starting proportions so the spread of outcomes is visible.

Run without arguments to open the interactive drift panel.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config %s: %w", cfgPath, err)
		}

		// The interactive panel owns the terminal; logging would garble it.
		if isInteractiveInvocation(cmd) {
			logger = zap.NewNop()
			return nil
		}
		logger, err = buildLogger()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// isInteractiveInvocation reports whether the bare root command (the drift
// panel) is running, as opposed to one of its subcommands. Checked via the
// command tree rather than the rootCmd variable so the composite literal
// does not reference itself.
func isInteractiveInvocation(cmd *cobra.Command) bool {
	return cmd.Parent() == nil
}

func buildLogger() (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Logging.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// openStore opens the snapshot database, honoring the --db override.
func openStore() (*session.Store, error) {
	path := cfg.Storage.DatabasePath
	if dbPath != "" {
		path = dbPath
	}
	return session.OpenStore(path, logger)
}

func runInteractive() error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	model := ui.New(cfg.Simulation, store, logger)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "driftlab.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "snapshot database path (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(runCmd, initCmd, advanceCmd, exportCmd, sessionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
