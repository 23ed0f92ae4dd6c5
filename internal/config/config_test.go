package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults when file is missing", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		require.Equal(t, []string{"dvlp", "acct", "sit", "main"}, cfg.ProtectedBranches)
		require.Equal(t, []string{"dvlp", "main"}, cfg.BaselineBranches)
		require.Empty(t, cfg.CompletedRepos)
		require.Empty(t, cfg.MenuWidth)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		dir := t.TempDir()
		content := "protectedBranches: [release]\ncompletedRepos: [billing-api]\nmenuWidth: \"40\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))

		cfg, err := Load(dir)
		require.NoError(t, err)
		require.Equal(t, []string{"release"}, cfg.ProtectedBranches)
		require.Equal(t, []string{"dvlp", "main"}, cfg.BaselineBranches)
		require.True(t, cfg.IsCompletedRepo("billing-api"))
		require.Equal(t, "40", cfg.MenuWidth)
	})

	t.Run("fails on malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not yaml"), 0o644))

		_, err := Load(dir)
		require.Error(t, err)
	})
}

func TestIsProtected(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.True(t, cfg.IsProtected("main"))
	require.True(t, cfg.IsProtected("dvlp"))
	require.True(t, cfg.IsProtected("acct"))
	require.True(t, cfg.IsProtected("sit"))
	require.False(t, cfg.IsProtected("feature/login"))
}
