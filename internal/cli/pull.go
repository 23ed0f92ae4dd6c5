package cli

import (
	"github.com/spf13/cobra"

	"branchkit.dev/branchkit/internal/actions"
	"branchkit.dev/branchkit/internal/output"
	"branchkit.dev/branchkit/internal/runtime"
)

// newPullCmd creates the pull command
func newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Check out the canonical working branch and synchronize it with its remote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			result, err := actions.PullAction(rctx)
			if err != nil {
				return err
			}

			if result.Output != "" {
				rctx.Splog.Info("%s", result.Output)
			}
			rctx.Splog.Info("Synchronized %s.", output.ColorBranchName(result.Branch, false))
			return nil
		},
	}
}
