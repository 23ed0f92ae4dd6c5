package git

import (
	"context"
	"fmt"
)

// Pull synchronizes the checked-out branch with its remote counterpart.
// Failures are surfaced, never retried.
func Pull(ctx context.Context) (string, error) {
	output, err := RunGitCommandWithContext(ctx, "pull")
	if err != nil {
		return "", fmt.Errorf("pull failed: %w", err)
	}
	return output, nil
}
