// Package testhelpers builds throwaway git repositories for tests. A Scene
// pairs a working clone with a local origin so push, pull and prune work
// without a network.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	// Use git -c flags to avoid reading global config and pin the default branch
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	if err := repo.configureUser(); err != nil {
		return nil, err
	}
	return repo, nil
}

// NewGitRepoFromTemplate clones a repository from a local template using
// 'git clone --local'. The template becomes the clone's origin.
func NewGitRepoFromTemplate(dir string, templatePath string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	cmd := exec.Command("git", "clone", "--local", templatePath, dir)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to clone from template: %w", err)
	}

	if err := repo.configureUser(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *GitRepo) configureUser() error {
	if err := r.RunGitCommand("config", "user.name", "Test User"); err != nil {
		return err
	}
	return r.RunGitCommand("config", "user.email", "test@example.com")
}

// RunGitCommand executes a git command in the repository directory.
func (r *GitRepo) RunGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	return cmd.Run()
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CreateChangeAndCommit writes a file and commits it.
func (r *GitRepo) CreateChangeAndCommit(fileName, message string) error {
	path := filepath.Join(r.Dir, fileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(message+"\n"), 0o644); err != nil {
		return err
	}
	if err := r.RunGitCommand("add", "."); err != nil {
		return err
	}
	return r.RunGitCommand("commit", "-m", message)
}

// CreateAndCheckoutBranch creates and checks out a new branch.
func (r *GitRepo) CreateAndCheckoutBranch(name string) error {
	return r.RunGitCommand("checkout", "-b", name)
}

// CheckoutBranch checks out a branch. A remote-tracking branch of the same
// name is vivified into a local branch, like plain git checkout does.
func (r *GitRepo) CheckoutBranch(name string) error {
	return r.RunGitCommand("checkout", name)
}

// MergeBranch merges source into target with a merge commit.
func (r *GitRepo) MergeBranch(target, source string) error {
	if err := r.CheckoutBranch(target); err != nil {
		return err
	}
	return r.RunGitCommand("merge", "--no-ff", "-m", fmt.Sprintf("merge %s into %s", source, target), source)
}

// DeleteBranch force-deletes a local branch.
func (r *GitRepo) DeleteBranch(name string) error {
	return r.RunGitCommand("branch", "-D", name)
}

// CurrentBranch returns the checked-out branch name.
func (r *GitRepo) CurrentBranch() (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", "--abbrev-ref", "HEAD")
}

// Revision returns the commit id a revision resolves to.
func (r *GitRepo) Revision(rev string) (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", rev)
}
