package cli

import (
	"github.com/spf13/cobra"

	"branchkit.dev/branchkit/internal/actions"
	"branchkit.dev/branchkit/internal/runtime"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd() *cobra.Command {
	var (
		noCleanup bool
		force     bool
		useTUI    bool
		width     string
	)

	cmd := &cobra.Command{
		Use:     "checkout",
		Aliases: []string{"co"},
		Short:   "Interactively select and check out a branch",
		Long: `Interactively select and check out a branch.

Synchronizes the canonical working branch first, prunes remote-tracking
references that no longer exist upstream, and offers to delete local
branches whose upstream is gone. Then lists every local and remote branch
in a numbered menu.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			opts := actions.CheckoutOptions{
				SkipCleanup: noCleanup,
				Force:       force,
				TUI:         useTUI,
				MenuWidth:   width,
			}
			return actions.CheckoutAction(rctx, opts)
		},
	}

	cmd.Flags().BoolVar(&noCleanup, "no-cleanup", false, "Skip deleting local branches whose upstream is gone")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete gone branches without asking")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "Use the full-screen filterable picker")
	cmd.Flags().StringVar(&width, "width", "", "Truncate menu items to this many characters")

	return cmd
}
