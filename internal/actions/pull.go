package actions

import (
	"context"

	"branchkit.dev/branchkit/internal/git"
	"branchkit.dev/branchkit/internal/runtime"
)

// PullResult contains the result of pulling the canonical working branch
type PullResult struct {
	Branch string
	Output string
}

// PullAction resolves the canonical working branch, checks it out and
// synchronizes it with its remote counterpart. Checkout and pull failures
// are surfaced, not retried.
func PullAction(rctx *runtime.Context) (*PullResult, error) {
	branch, err := ResolveBaseline(rctx)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := git.CheckoutBranch(ctx, branch); err != nil {
		return nil, err
	}

	output, err := git.Pull(ctx)
	if err != nil {
		return nil, err
	}
	rctx.Splog.Debug("pulled %s:\n%s", branch, output)

	return &PullResult{Branch: branch, Output: output}, nil
}
