package actions

import (
	"context"
	"fmt"

	branchkiterrors "branchkit.dev/branchkit/internal/errors"
	"branchkit.dev/branchkit/internal/git"
	"branchkit.dev/branchkit/internal/github"
	"branchkit.dev/branchkit/internal/runtime"
)

// emptyTreeHash is git's well-known empty tree object. Diffing against it
// lists every file on a branch, which is what a dev note degrades to when
// the branch shares no history with its baseline.
const emptyTreeHash = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

// NoteOptions contains options for generating a dev note
type NoteOptions struct {
	// Branch is the target branch; empty means the current branch.
	Branch string

	// NoGitHub skips the best-effort pull request lookup.
	NoGitHub bool
}

// Note is the change summary for a branch against its baseline
type Note struct {
	RepoName  string
	Branch    string
	Baseline  string
	ForkPoint string
	Files     []string
	Completed bool
	PR        *github.PullRequestInfo
}

// NoteAction produces the dev note for a branch: the files that differ
// between the stable fork point and the branch tip, plus repository
// metadata. Fails with ErrNoDifferences when there is nothing to report.
func NoteAction(rctx *runtime.Context, opts NoteOptions) (*Note, error) {
	target := opts.Branch
	if target == "" {
		current, err := git.GetCurrentBranch()
		if err != nil {
			return nil, err
		}
		target = current
	} else {
		exists, err := git.HasLocalBranch(target)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, branchkiterrors.NewUnknownBranchError(target)
		}
	}

	baseline, err := ResolveBaseline(rctx)
	if err != nil {
		return nil, err
	}

	forkPoint, err := git.StableForkPoint(target, baseline)
	if err != nil {
		return nil, err
	}

	diffBase := forkPoint
	if diffBase == "" {
		diffBase = emptyTreeHash
	}

	files, err := git.ChangedFiles(diffBase, target)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w between %s and %s", branchkiterrors.ErrNoDifferences, baseline, target)
	}

	repoName := git.RepoDisplayName(git.GetRemoteURL())

	note := &Note{
		RepoName:  repoName,
		Branch:    target,
		Baseline:  baseline,
		ForkPoint: forkPoint,
		Files:     files,
		Completed: rctx.Config.IsCompletedRepo(repoName),
	}

	if !opts.NoGitHub {
		note.PR = lookupPullRequest(target)
	}

	return note, nil
}

// lookupPullRequest is best-effort enrichment: no token, a non-GitHub
// remote or an API failure all degrade to no PR line.
func lookupPullRequest(branch string) *github.PullRequestInfo {
	owner, repo, ok := github.ParseOwnerRepo(git.GetRemoteURL())
	if !ok {
		return nil
	}

	ctx := context.Background()
	client, err := github.NewClient(ctx)
	if err != nil {
		return nil
	}

	pr, err := client.PullRequestForBranch(ctx, owner, repo, branch)
	if err != nil {
		return nil
	}
	return pr
}
