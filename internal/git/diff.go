package git

// ChangedFiles lists the paths that differ between a commit and a branch tip
func ChangedFiles(from, to string) ([]string, error) {
	return RunGitCommandLines("diff", "--name-only", from, to)
}
