// Package github provides the minimal GitHub API surface branchkit needs:
// looking up the open pull request for a branch to enrich dev notes.
package github

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// PullRequestInfo contains the subset of pull request data used in dev notes.
// Only open pull requests are looked up, so no state is carried.
type PullRequestInfo struct {
	Number  int
	Title   string
	HTMLURL string
}

// Client is an interface for GitHub API interactions
type Client interface {
	// PullRequestForBranch returns the open pull request whose head is the
	// given branch, or nil when there is none.
	PullRequestForBranch(ctx context.Context, owner, repo, branch string) (*PullRequestInfo, error)
}

type realClient struct {
	gh *github.Client
}

// NewClient creates a client authenticated from the GITHUB_TOKEN
// environment variable. Fails when no token is set.
func NewClient(ctx context.Context) (Client, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN is not set")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, ts)
	return &realClient{gh: github.NewClient(httpClient)}, nil
}

func (c *realClient) PullRequestForBranch(ctx context.Context, owner, repo, branch string) (*PullRequestInfo, error) {
	prs, _, err := c.gh.PullRequests.List(ctx, owner, repo, &github.PullRequestListOptions{
		State: "open",
		Head:  owner + ":" + branch,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}
	if len(prs) == 0 {
		return nil, nil
	}

	pr := prs[0]
	return &PullRequestInfo{
		Number:  pr.GetNumber(),
		Title:   pr.GetTitle(),
		HTMLURL: pr.GetHTMLURL(),
	}, nil
}

// ParseOwnerRepo extracts the owner and repository name from a GitHub remote
// URL. Returns ok=false for non-GitHub remotes.
func ParseOwnerRepo(remoteURL string) (owner, repo string, ok bool) {
	url := strings.TrimSuffix(remoteURL, ".git")

	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.Contains(url, "github.com/"):
		path = url[strings.Index(url, "github.com/")+len("github.com/"):]
	default:
		return "", "", false
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
