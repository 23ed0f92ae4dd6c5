// Package cli wires the branchkit commands. Each command parses its flags
// and delegates to internal/actions.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	branchkiterrors "branchkit.dev/branchkit/internal/errors"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "branchkit",
		Short: "Branchkit is a set of interactive helpers for everyday git branch workflows",
		Long: `Branchkit is a set of interactive helpers for everyday git branch workflows:
pulling the canonical working branch, pushing with upstream-aware retry,
generating a change summary from a branch's stable fork point, and an
interactive branch selector.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", branchkiterrors.ErrInvalidArguments, err)
	})

	rootCmd.AddCommand(newPullCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newNoteCmd())
	rootCmd.AddCommand(newCheckoutCmd())

	return rootCmd
}
