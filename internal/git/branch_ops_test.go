package git_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"branchkit.dev/branchkit/internal/git"
	"branchkit.dev/branchkit/testhelpers"
)

func TestGoneBranches(t *testing.T) {
	scene := testhelpers.NewScene(t, func(remote *testhelpers.GitRepo) error {
		if err := remote.CreateAndCheckoutBranch("old"); err != nil {
			return err
		}
		return remote.CheckoutBranch("main")
	})

	require.NoError(t, scene.Repo.CheckoutBranch("old"))
	require.NoError(t, scene.Repo.CheckoutBranch("main"))
	require.NoError(t, scene.Remote.DeleteBranch("old"))
	require.NoError(t, scene.Repo.RunGitCommand("remote", "prune", "origin"))

	initRepo(t, scene.Dir)

	gone, err := git.GoneBranches(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"old"}, gone)
}

func TestGoneBranchesInLinkedWorktree(t *testing.T) {
	scene := testhelpers.NewScene(t, func(remote *testhelpers.GitRepo) error {
		if err := remote.CreateAndCheckoutBranch("old"); err != nil {
			return err
		}
		return remote.CheckoutBranch("main")
	})

	require.NoError(t, scene.Repo.CheckoutBranch("old"))
	require.NoError(t, scene.Repo.CheckoutBranch("main"))

	// Check the branch out in a linked worktree, which flips its listing
	// marker from "  " to "+ ".
	worktreeDir := filepath.Join(t.TempDir(), "worktree")
	require.NoError(t, scene.Repo.RunGitCommand("worktree", "add", worktreeDir, "old"))

	require.NoError(t, scene.Remote.DeleteBranch("old"))
	require.NoError(t, scene.Repo.RunGitCommand("remote", "prune", "origin"))

	initRepo(t, scene.Dir)

	gone, err := git.GoneBranches(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"old"}, gone)
}
