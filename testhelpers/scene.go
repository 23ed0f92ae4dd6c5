package testhelpers

import (
	"path/filepath"
	"testing"
)

// Scene is a working clone wired to a local origin repository.
type Scene struct {
	// Dir is the working clone's directory.
	Dir string

	// Repo is the working clone.
	Repo *GitRepo

	// Remote is the origin repository.
	Remote *GitRepo
}

// NewScene builds an origin with an initial commit on main and a local
// clone of it. The setup callback runs against the origin before cloning.
func NewScene(t *testing.T, setup func(remote *GitRepo) error) *Scene {
	t.Helper()

	remoteDir := filepath.Join(t.TempDir(), "origin")
	remote, err := NewGitRepo(remoteDir)
	if err != nil {
		t.Fatalf("failed to create origin repo: %v", err)
	}
	if err := remote.CreateChangeAndCommit("README.md", "initial"); err != nil {
		t.Fatalf("failed to create initial commit: %v", err)
	}
	// The origin is non-bare; allow pushes to its checked-out branch.
	if err := remote.RunGitCommand("config", "receive.denyCurrentBranch", "ignore"); err != nil {
		t.Fatalf("failed to configure origin: %v", err)
	}

	if setup != nil {
		if err := setup(remote); err != nil {
			t.Fatalf("scene setup failed: %v", err)
		}
	}

	dir := filepath.Join(t.TempDir(), "clone")
	repo, err := NewGitRepoFromTemplate(dir, remoteDir)
	if err != nil {
		t.Fatalf("failed to clone origin: %v", err)
	}

	return &Scene{
		Dir:    dir,
		Repo:   repo,
		Remote: remote,
	}
}

// NewLocalScene builds a standalone repository with an initial commit on
// main and no origin.
func NewLocalScene(t *testing.T) *Scene {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "repo")
	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("failed to create repo: %v", err)
	}
	if err := repo.CreateChangeAndCommit("README.md", "initial"); err != nil {
		t.Fatalf("failed to create initial commit: %v", err)
	}

	return &Scene{Dir: dir, Repo: repo}
}
