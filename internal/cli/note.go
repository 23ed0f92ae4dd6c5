package cli

import (
	"github.com/spf13/cobra"

	"branchkit.dev/branchkit/internal/actions"
	"branchkit.dev/branchkit/internal/runtime"
)

// newNoteCmd creates the note command
func newNoteCmd() *cobra.Command {
	var noGitHub bool

	cmd := &cobra.Command{
		Use:   "note [branch]",
		Short: "Generate a dev note: the files changed on a branch since its stable fork point",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			opts := actions.NoteOptions{NoGitHub: noGitHub}
			if len(args) > 0 {
				opts.Branch = args[0]
			}

			note, err := actions.NoteAction(rctx, opts)
			if err != nil {
				return err
			}

			printNote(rctx, note)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noGitHub, "no-github", false, "Skip the pull request lookup")

	return cmd
}

func printNote(rctx *runtime.Context, note *actions.Note) {
	splog := rctx.Splog

	if note.RepoName != "" {
		splog.Summary("%s", note.RepoName)
	}
	splog.Summary("Changes on %s compared to %s:", note.Branch, note.Baseline)
	for _, file := range note.Files {
		splog.Summary("  %s", file)
	}
	if note.PR != nil {
		splog.Summary("Pull request: #%d %s (%s)", note.PR.Number, note.PR.Title, note.PR.HTMLURL)
	}
	if note.Completed {
		splog.Newline()
		splog.Summary("*** development is complete ***")
	}
}
