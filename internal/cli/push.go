package cli

import (
	"github.com/spf13/cobra"

	"branchkit.dev/branchkit/internal/actions"
	"branchkit.dev/branchkit/internal/runtime"
)

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Push the current branch, setting its upstream when git suggests it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			output, err := actions.PushAction(rctx, actions.PushOptions{})
			if output != "" {
				rctx.Splog.Info("%s", output)
			}
			return err
		},
	}
}
