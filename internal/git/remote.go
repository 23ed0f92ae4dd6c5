package git

import (
	"context"
	"strings"
)

// GetRemote returns the remote configured for the current branch, falling
// back to "origin".
func GetRemote() string {
	branch, err := GetCurrentBranch()
	if err == nil {
		remote, err := RunGitCommand("config", "--get", "branch."+branch+".remote")
		if err == nil && remote != "" {
			return remote
		}
	}
	return "origin"
}

// PruneRemote drops remote-tracking references that no longer exist
// upstream. Prune failures are not critical and are swallowed.
func PruneRemote(ctx context.Context, remote string) {
	_, _ = RunGitCommandWithContext(ctx, "remote", "prune", remote)
}

// RepoDisplayName derives the short repository name from a remote URL:
// the final path segment with any .git suffix removed. Handles both
// https://host/owner/repo.git and git@host:owner/repo.git forms.
func RepoDisplayName(remoteURL string) string {
	name := strings.TrimSuffix(remoteURL, "/")
	name = strings.TrimSuffix(name, ".git")
	if idx := strings.LastIndexAny(name, "/:"); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
