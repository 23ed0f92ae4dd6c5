// Package config reads the optional per-repository branchkit configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-repository configuration file, looked up at the repo root.
const FileName = ".branchkit.yml"

// Config represents the branchkit configuration for a repository
type Config struct {
	// ProtectedBranches are branch names that may never be pushed to
	// directly and are never auto-deleted during cleanup.
	ProtectedBranches []string `yaml:"protectedBranches"`

	// BaselineBranches are canonical working branch candidates, in
	// preference order. The first one that exists locally wins.
	BaselineBranches []string `yaml:"baselineBranches"`

	// CompletedRepos are repository display names for which the dev note
	// prints the "development is complete" banner.
	CompletedRepos []string `yaml:"completedRepos"`

	// MenuWidth truncates interactive menu items to this many characters.
	// Kept as a string so a bad value surfaces as an invalid-length error
	// instead of a YAML type error.
	MenuWidth string `yaml:"menuWidth"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ProtectedBranches: []string{"dvlp", "acct", "sit", "main"},
		BaselineBranches:  []string{"dvlp", "main"},
	}
}

// Load reads the configuration file from the repository root, falling back
// to defaults when the file does not exist. Unset keys keep their defaults.
func Load(repoRoot string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(repoRoot, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	if len(file.ProtectedBranches) > 0 {
		cfg.ProtectedBranches = file.ProtectedBranches
	}
	if len(file.BaselineBranches) > 0 {
		cfg.BaselineBranches = file.BaselineBranches
	}
	if len(file.CompletedRepos) > 0 {
		cfg.CompletedRepos = file.CompletedRepos
	}
	if file.MenuWidth != "" {
		cfg.MenuWidth = file.MenuWidth
	}

	return cfg, nil
}

// IsProtected checks whether a branch name is in the protected set
func (c *Config) IsProtected(branchName string) bool {
	return contains(c.ProtectedBranches, branchName)
}

// IsCompletedRepo checks whether a repository display name gets the
// completion banner in dev notes.
func (c *Config) IsCompletedRepo(repoName string) bool {
	return contains(c.CompletedRepos, repoName)
}

func contains(list []string, item string) bool {
	for _, s := range list {
		if s == item {
			return true
		}
	}
	return false
}
