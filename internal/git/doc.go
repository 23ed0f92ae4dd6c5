// Package git provides the repository access layer for branchkit. Read
// queries (branch resolution, ref listing, first-parent history) go through
// go-git; mutations (checkout, push, pull, prune, branch deletion) shell out
// to the git CLI so their behavior and messages match what users see.
package git
