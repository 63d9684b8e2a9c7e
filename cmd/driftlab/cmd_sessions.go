// Package main: session inventory commands over the snapshot database.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"driftlab/internal/ui"
)

// sessionsCmd manages stored sessions
var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage stored driftlab sessions",
	Long: `List and inspect stored sessions.

Subcommands:
  list   - List all stored sessions
  show   - Show one session's drift traces
  delete - Delete a stored session`,
	RunE: runSessionsList,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored sessions",
	RunE:  runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show one session's drift traces",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsShow,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a stored session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsDelete,
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	snaps, err := store.List()
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Println("No stored sessions.")
		return nil
	}

	fmt.Println(strings.Repeat("─", 72))
	for _, snap := range snaps {
		fmt.Printf("%s  gen %-4d N=%-5d seed=%-10d updated %s\n",
			snap.ID, snap.Generation, snap.Params.N, snap.Params.Seed,
			snap.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("Total: %d sessions\n", len(snaps))
	return nil
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	snap, err := store.Load(args[0])
	if err != nil {
		return err
	}

	p := snap.Params
	fmt.Printf("session %s\n", snap.ID)
	fmt.Printf("  N=%d seed=%d p00=%g p01=%g p11=%g replicates=%d\n",
		p.N, p.Seed, p.P00, p.P01, p.P11, p.Replicates)
	fmt.Printf("  generation %d\n\n", snap.Generation)

	for i, history := range snap.Histories {
		fmt.Println(formatTrace(i, history))
	}
	return nil
}

// formatTrace renders one replicate's drift trace line. A history can be
// empty only in a hand-edited database; render a placeholder instead of
// indexing past the end.
func formatTrace(i int, history []float64) string {
	if len(history) == 0 {
		return fmt.Sprintf("rep_%-2d (no data)", i+1)
	}
	return fmt.Sprintf("rep_%-2d %s %.3f",
		i+1, ui.Sparkline(history, 60), history[len(history)-1])
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

func init() {
	sessionsCmd.AddCommand(sessionsListCmd, sessionsShowCmd, sessionsDeleteCmd)
}
