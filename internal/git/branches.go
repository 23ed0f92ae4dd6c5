package git

import (
	branchkiterrors "branchkit.dev/branchkit/internal/errors"
)

var defaultRepo *Repository

// InitDefaultRepo initializes the default repository from the runner's
// working directory (the process working directory when unset).
func InitDefaultRepo() error {
	if defaultRepo != nil {
		return nil
	}
	dir := defaultRunner.workingDir
	if dir == "" {
		dir = "."
	}
	repo, err := OpenRepository(dir)
	if err != nil {
		return err
	}
	defaultRepo = repo
	return nil
}

// InitDefaultRepoInDir initializes the default repository and runner from a
// specific directory. Used by tests and by commands run outside the cwd.
func InitDefaultRepoInDir(dir string) error {
	repo, err := OpenRepository(dir)
	if err != nil {
		return err
	}
	defaultRepo = repo
	defaultRunner.workingDir = dir
	return nil
}

// ResetDefaultRepo clears the default repository and runner state.
func ResetDefaultRepo() {
	defaultRepo = nil
	defaultRunner.workingDir = ""
}

// GetDefaultRepo returns the default repository (must call InitDefaultRepo first)
func GetDefaultRepo() (*Repository, error) {
	if defaultRepo == nil {
		return nil, branchkiterrors.ErrNotARepository
	}
	return defaultRepo, nil
}

// GetCurrentBranch returns the current branch name or detached-HEAD commit id
func GetCurrentBranch() (string, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return "", err
	}
	return repo.CurrentBranch()
}

// HasLocalBranch checks whether a local branch exists
func HasLocalBranch(name string) (bool, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return false, err
	}
	return repo.HasLocalBranch(name)
}

// GetRemoteURL returns the origin fetch URL, or empty when there is none
func GetRemoteURL() string {
	repo, err := GetDefaultRepo()
	if err != nil {
		return ""
	}
	return repo.RemoteURL()
}
