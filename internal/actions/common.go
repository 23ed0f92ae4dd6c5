// Package actions implements the branchkit workflow orchestrators. Commands
// parse flags and delegate here; actions return plain results and leave
// formatting to the output layer.
package actions

import (
	"fmt"
	"strings"

	branchkiterrors "branchkit.dev/branchkit/internal/errors"
	"branchkit.dev/branchkit/internal/git"
	"branchkit.dev/branchkit/internal/runtime"
)

// ResolveBaseline returns the canonical working branch: the first configured
// baseline candidate (dvlp, then main, by default) that exists locally.
// Fails with ErrNoCanonicalBranch when none do.
func ResolveBaseline(ctx *runtime.Context) (string, error) {
	for _, name := range ctx.Config.BaselineBranches {
		exists, err := git.HasLocalBranch(name)
		if err != nil {
			return "", err
		}
		if exists {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: none of %s exist",
		branchkiterrors.ErrNoCanonicalBranch,
		strings.Join(ctx.Config.BaselineBranches, ", "))
}
