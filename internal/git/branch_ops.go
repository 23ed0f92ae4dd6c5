package git

import (
	"context"
	"fmt"
	"strings"
)

// CheckoutBranch checks out an existing branch
func CheckoutBranch(ctx context.Context, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "checkout", branchName)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// DeleteBranch deletes a local branch. Uses the safe form, so a branch with
// unmerged work fails to delete; cleanup callers swallow that failure.
func DeleteBranch(ctx context.Context, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "branch", "-d", branchName)
	if err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", branchName, err)
	}
	return nil
}

// GoneBranches lists local branches whose configured upstream no longer
// exists, in listing order. These are candidates for cleanup after a prune.
func GoneBranches(ctx context.Context) ([]string, error) {
	lines, err := RunGitCommandLines("branch", "-vv")
	if err != nil {
		return nil, err
	}

	var gone []string
	for _, line := range lines {
		if !strings.Contains(line, ": gone]") {
			continue
		}
		// "* " marks the current branch, "+ " one checked out in a
		// linked worktree.
		name := strings.TrimSpace(line)
		name = strings.TrimPrefix(name, "* ")
		name = strings.TrimPrefix(name, "+ ")
		if fields := strings.Fields(name); len(fields) > 0 {
			gone = append(gone, fields[0])
		}
	}
	return gone, nil
}

// ListBranchOptions returns the branch names offered by the interactive
// selector: every local and remote-tracking branch in git's listing order,
// excluding the currently-checked-out marker line and the remote
// "HEAD -> ..." alias.
func ListBranchOptions(ctx context.Context) ([]string, error) {
	lines, err := RunGitCommandLines("branch", "--all")
	if err != nil {
		return nil, err
	}

	var options []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "* ") {
			continue
		}
		if strings.Contains(trimmed, "HEAD ->") {
			continue
		}
		trimmed = strings.TrimPrefix(trimmed, "+ ")
		options = append(options, strings.TrimSpace(trimmed))
	}
	return options, nil
}
