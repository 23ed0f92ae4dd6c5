package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"branchkit.dev/branchkit/testhelpers"
)

func TestPullActionSynchronizesBaseline(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)

	// Start on a side branch; the pull must move us to the baseline.
	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))

	// The origin advances after the clone.
	require.NoError(t, scene.Remote.CreateChangeAndCommit("update.txt", "upstream change"))
	remoteTip, err := scene.Remote.Revision("main")
	require.NoError(t, err)

	useRepo(t, scene.Dir)
	rctx, _, _ := newTestContext(nil)

	result, err := PullAction(rctx)
	require.NoError(t, err)
	require.Equal(t, "main", result.Branch)

	current, err := scene.Repo.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "main", current)

	localTip, err := scene.Repo.Revision("main")
	require.NoError(t, err)
	require.Equal(t, remoteTip, localTip)
}

func TestPullActionFailsWithoutBaseline(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	useRepo(t, scene.Dir)

	rctx, _, _ := newTestContext(nil)
	rctx.Config.BaselineBranches = []string{"trunk"}

	_, err := PullAction(rctx)
	require.Error(t, err)

	// Nothing was checked out or pulled.
	current, cerr := scene.Repo.CurrentBranch()
	require.NoError(t, cerr)
	require.Equal(t, "main", current)
}
