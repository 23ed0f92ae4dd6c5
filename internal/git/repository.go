package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	branchkiterrors "branchkit.dev/branchkit/internal/errors"
)

// shortShaLen is the length of commit identifiers reported for detached HEAD.
const shortShaLen = 7

// Repository wraps a go-git repository
type Repository struct {
	*gogit.Repository
	path string
}

// OpenRepository opens the git repository containing the given path.
// Fails with ErrNotARepository when the path is not inside one.
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", branchkiterrors.ErrNotARepository, absPath)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", branchkiterrors.ErrNotARepository, absPath)
	}

	return &Repository{
		Repository: repo,
		path:       worktree.Filesystem.Root(),
	}, nil
}

// Root returns the root directory of the repository
func (r *Repository) Root() string {
	return r.path
}

// CurrentBranch returns the current branch name, or the short commit
// identifier when HEAD is detached.
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if head.Name().IsBranch() {
		return head.Name().Short(), nil
	}
	return head.Hash().String()[:shortShaLen], nil
}

// HasLocalBranch checks whether a local branch with the given name exists
func (r *Repository) HasLocalBranch(name string) (bool, error) {
	_, err := r.Reference(plumbing.NewBranchReferenceName(name), true)
	if err == plumbing.ErrReferenceNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up branch %s: %w", name, err)
	}
	return true, nil
}

// RemoteURL returns the fetch URL of the origin remote, or an empty string
// when the repository has no origin.
func (r *Repository) RemoteURL() string {
	remote, err := r.Remote("origin")
	if err != nil {
		return ""
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}
