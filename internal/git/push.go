package git

import "context"

// Push pushes the current branch to its remote. The combined stdout/stderr
// is returned in both outcomes so the caller can surface git's own messages
// or scan them for a suggested remediation command.
func Push(ctx context.Context) (string, bool) {
	return RunGitCommandCombined(ctx, "push")
}

// RunSuggested executes a parsed remediation argv verbatim and returns its
// combined output plus success. The outcome is final; there is no further
// retry.
func RunSuggested(ctx context.Context, args []string) (string, bool) {
	return RunGitCommandCombined(ctx, args...)
}
