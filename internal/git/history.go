package git

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	branchkiterrors "branchkit.dev/branchkit/internal/errors"
)

// FirstParentHistory returns the commit identifiers reachable from a branch
// tip by always following the first parent, most-recent-first. Merged-in
// side branches are ignored, which is what makes fork-point computation
// stable after a branch has been merged back into its baseline.
func FirstParentHistory(branchName string) ([]string, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return nil, err
	}
	return repo.FirstParentHistory(branchName)
}

// FirstParentHistory returns the first-parent commit sequence of a branch,
// most-recent-first. Fails with ErrUnknownBranch when the name does not
// resolve.
func (r *Repository) FirstParentHistory(branchName string) ([]string, error) {
	hash, err := r.ResolveRevision(plumbing.Revision(branchName))
	if err != nil {
		return nil, branchkiterrors.NewUnknownBranchError(branchName)
	}

	commit, err := r.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to read commit %s: %w", hash, err)
	}

	var history []string
	for {
		history = append(history, commit.Hash.String())
		if commit.NumParents() == 0 {
			return history, nil
		}
		commit, err = commit.Parent(0)
		if err == object.ErrParentNotFound {
			return history, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to walk first-parent history of %s: %w", branchName, err)
		}
	}
}
