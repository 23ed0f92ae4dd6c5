package main

import (
	"os"

	"branchkit.dev/branchkit/internal/cli"
	branchkiterrors "branchkit.dev/branchkit/internal/errors"
	"branchkit.dev/branchkit/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		output.NewSplog().Error("%v", err)
		os.Exit(branchkiterrors.ExitCode(err))
	}
}
