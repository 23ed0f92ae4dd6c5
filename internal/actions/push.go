package actions

import (
	"context"
	"fmt"

	branchkiterrors "branchkit.dev/branchkit/internal/errors"
	"branchkit.dev/branchkit/internal/git"
	"branchkit.dev/branchkit/internal/runtime"
)

// gitPusher is the narrow seam the push orchestrator needs from the git
// layer, so tests can fake failure signatures without a remote.
type gitPusher interface {
	CurrentBranch() (string, error)
	Push(ctx context.Context) (string, bool)
	RunSuggested(ctx context.Context, args []string) (string, bool)
}

type realPusher struct{}

func (realPusher) CurrentBranch() (string, error) { return git.GetCurrentBranch() }
func (realPusher) Push(ctx context.Context) (string, bool) {
	return git.Push(ctx)
}
func (realPusher) RunSuggested(ctx context.Context, args []string) (string, bool) {
	return git.RunSuggested(ctx, args)
}

// PushOptions contains options for the push orchestrator
type PushOptions struct {
	parser git.SuggestionParser
	pusher gitPusher
}

// PushAction pushes the current branch to its remote. Pushes to protected
// branches are refused before any network operation. A failed push whose
// output carries git's set-upstream suggestion is retried exactly once by
// running the suggested command verbatim; that outcome is final. Any other
// failure output is surfaced unchanged.
func PushAction(rctx *runtime.Context, opts PushOptions) (string, error) {
	pusher := opts.pusher
	if pusher == nil {
		pusher = realPusher{}
	}
	parser := opts.parser
	if parser == nil {
		parser = git.NewSuggestionParser()
	}

	branch, err := pusher.CurrentBranch()
	if err != nil {
		return "", err
	}
	if rctx.Config.IsProtected(branch) {
		return "", branchkiterrors.NewProtectedBranchError(branch)
	}

	ctx := context.Background()
	output, ok := pusher.Push(ctx)
	if ok {
		return output, nil
	}
	rctx.Splog.Debug("push failed:\n%s", output)

	if args, found := parser.ParseSuggestion(output); found {
		rctx.Splog.Debug("running suggested command: git %v", args)
		retryOutput, retryOK := pusher.RunSuggested(ctx, args)
		if retryOK {
			return retryOutput, nil
		}
		return retryOutput, fmt.Errorf("push failed")
	}

	return output, fmt.Errorf("push failed")
}
