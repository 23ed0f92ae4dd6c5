// Package runtime provides the context type that carries the logger, input
// stream and configuration through every command. This avoids passing
// multiple parameters around.
package runtime

import (
	"io"
	"os"
	"path/filepath"

	"branchkit.dev/branchkit/internal/config"
	"branchkit.dev/branchkit/internal/git"
	"branchkit.dev/branchkit/internal/output"
)

// Context provides access to output, input and configuration for commands
type Context struct {
	Splog    *output.Splog
	In       io.Reader
	Config   *config.Config
	RepoRoot string
}

// GetContext opens the repository from the current working directory and
// loads its configuration. Fails with ErrNotARepository outside one, before
// any branch resolution happens.
func GetContext() (*Context, error) {
	if err := git.InitDefaultRepo(); err != nil {
		return nil, err
	}

	repo, err := git.GetDefaultRepo()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(repo.Root())
	if err != nil {
		return nil, err
	}

	splog := output.NewSplog()
	if os.Getenv("BRANCHKIT_DEBUG") != "" {
		splog.EnableDebugLog(filepath.Join(repo.Root(), ".git", "branchkit", "debug.log"))
	}

	return &Context{
		Splog:    splog,
		In:       os.Stdin,
		Config:   cfg,
		RepoRoot: repo.Root(),
	}, nil
}
