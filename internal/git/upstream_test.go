package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const noUpstreamOutput = `fatal: The current branch feature/login has no upstream branch.
To push the current branch and set the remote as upstream, use

    git push --set-upstream origin feature/login
`

func TestParseSuggestion(t *testing.T) {
	t.Parallel()

	parser := NewSuggestionParser()

	t.Run("extracts the set-upstream suggestion", func(t *testing.T) {
		args, ok := parser.ParseSuggestion(noUpstreamOutput)
		require.True(t, ok)
		require.Equal(t, []string{"push", "--set-upstream", "origin", "feature/login"}, args)
	})

	t.Run("no suggestion in unrelated failure output", func(t *testing.T) {
		output := `error: failed to push some refs to 'origin'
hint: Updates were rejected because the remote contains work that you do not have locally.`
		args, ok := parser.ParseSuggestion(output)
		require.False(t, ok)
		require.Nil(t, args)
	})

	t.Run("ignores HEAD-ref qualified suggestions", func(t *testing.T) {
		output := "    git push --set-upstream origin HEAD:feature/login\n"
		_, ok := parser.ParseSuggestion(output)
		require.False(t, ok)
	})

	t.Run("empty output", func(t *testing.T) {
		_, ok := parser.ParseSuggestion("")
		require.False(t, ok)
	})
}
