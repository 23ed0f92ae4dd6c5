package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	branchkiterrors "branchkit.dev/branchkit/internal/errors"
	"branchkit.dev/branchkit/internal/git"
)

type fakePusher struct {
	branch      string
	pushOutput  string
	pushOK      bool
	pushCalls   int
	retryOutput string
	retryOK     bool
	retryArgs   [][]string
}

func (f *fakePusher) CurrentBranch() (string, error) { return f.branch, nil }

func (f *fakePusher) Push(ctx context.Context) (string, bool) {
	f.pushCalls++
	return f.pushOutput, f.pushOK
}

func (f *fakePusher) RunSuggested(ctx context.Context, args []string) (string, bool) {
	f.retryArgs = append(f.retryArgs, args)
	return f.retryOutput, f.retryOK
}

type fakeParser struct {
	args  []string
	found bool
}

func (f fakeParser) ParseSuggestion(output string) ([]string, bool) {
	return f.args, f.found
}

func TestPushActionRefusesProtectedBranch(t *testing.T) {
	pusher := &fakePusher{branch: "main"}
	rctx, _, _ := newTestContext(nil)

	_, err := PushAction(rctx, PushOptions{pusher: pusher, parser: fakeParser{}})
	require.ErrorIs(t, err, branchkiterrors.ErrProtectedBranch)
	require.Contains(t, err.Error(), "main")
	require.Zero(t, pusher.pushCalls, "no push should be attempted for a protected branch")
}

func TestPushActionSuccess(t *testing.T) {
	pusher := &fakePusher{branch: "feature", pushOutput: "Everything up-to-date", pushOK: true}
	rctx, _, _ := newTestContext(nil)

	out, err := PushAction(rctx, PushOptions{pusher: pusher, parser: fakeParser{}})
	require.NoError(t, err)
	require.Equal(t, "Everything up-to-date", out)
	require.Empty(t, pusher.retryArgs)
}

func TestPushActionRetriesSuggestionOnce(t *testing.T) {
	pusher := &fakePusher{
		branch:      "feature",
		pushOutput:  "fatal: The current branch feature has no upstream branch.",
		retryOutput: "branch 'feature' set up to track 'origin/feature'.",
		retryOK:     true,
	}
	parser := fakeParser{args: []string{"push", "--set-upstream", "origin", "feature"}, found: true}
	rctx, _, _ := newTestContext(nil)

	out, err := PushAction(rctx, PushOptions{pusher: pusher, parser: parser})
	require.NoError(t, err)
	require.Equal(t, pusher.retryOutput, out)
	require.Len(t, pusher.retryArgs, 1)
	require.Equal(t, parser.args, pusher.retryArgs[0])
	require.Equal(t, 1, pusher.pushCalls)
}

func TestPushActionRetryFailureIsFinal(t *testing.T) {
	pusher := &fakePusher{
		branch:      "feature",
		pushOutput:  "fatal: The current branch feature has no upstream branch.",
		retryOutput: "error: failed to push some refs",
	}
	parser := fakeParser{args: []string{"push", "--set-upstream", "origin", "feature"}, found: true}
	rctx, _, _ := newTestContext(nil)

	out, err := PushAction(rctx, PushOptions{pusher: pusher, parser: parser})
	require.Error(t, err)
	require.Equal(t, pusher.retryOutput, out)
	require.Len(t, pusher.retryArgs, 1, "the suggested command runs exactly once")
}

func TestPushActionNoSuggestionSurfacesOutput(t *testing.T) {
	pusher := &fakePusher{
		branch:     "feature",
		pushOutput: "error: failed to push some refs to 'origin'",
	}
	rctx, _, _ := newTestContext(nil)

	out, err := PushAction(rctx, PushOptions{pusher: pusher, parser: fakeParser{}})
	require.Error(t, err)
	require.Equal(t, pusher.pushOutput, out)
	require.Empty(t, pusher.retryArgs)
}

func TestPushActionWithRealParser(t *testing.T) {
	pusher := &fakePusher{
		branch: "feature",
		pushOutput: "fatal: The current branch feature has no upstream branch.\n" +
			"To push the current branch and set the remote as upstream, use\n" +
			"\n" +
			"    git push --set-upstream origin feature\n",
		retryOutput: "branch 'feature' set up to track 'origin/feature'.",
		retryOK:     true,
	}
	rctx, _, _ := newTestContext(nil)

	out, err := PushAction(rctx, PushOptions{pusher: pusher, parser: git.NewSuggestionParser()})
	require.NoError(t, err)
	require.Equal(t, pusher.retryOutput, out)
	require.Equal(t, [][]string{{"push", "--set-upstream", "origin", "feature"}}, pusher.retryArgs)
}
