package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForkPoint(t *testing.T) {
	t.Parallel()

	// Sequences are most-recent-first, like git log.
	tests := []struct {
		name     string
		forked   []string
		original []string
		want     string
	}{
		{
			name:     "branch ahead of its baseline",
			forked:   []string{"f2", "f1", "c3", "c2", "c1"},
			original: []string{"c3", "c2", "c1"},
			want:     "c3",
		},
		{
			name:     "both sides moved after the fork",
			forked:   []string{"f1", "c2", "c1"},
			original: []string{"c4", "c3", "c2", "c1"},
			want:     "c2",
		},
		{
			name: "baseline merged the branch back",
			// The merge commit m is on original's first-parent chain; the
			// branch commits f1/f2 are not. The fork point stays c2.
			forked:   []string{"f2", "f1", "c2", "c1"},
			original: []string{"m", "c3", "c2", "c1"},
			want:     "c2",
		},
		{
			name:     "identical branches",
			forked:   []string{"c2", "c1"},
			original: []string{"c2", "c1"},
			want:     "c2",
		},
		{
			name:     "no shared history",
			forked:   []string{"f2", "f1"},
			original: []string{"c2", "c1"},
			want:     "",
		},
		{
			name:     "empty sequences",
			forked:   nil,
			original: []string{"c1"},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ForkPoint(tt.forked, tt.original))
		})
	}
}

func TestForkPointStableAcrossMerge(t *testing.T) {
	t.Parallel()

	// The property from the design: for a branch created from a baseline and
	// later merged back, the fork point is identical before and after the
	// merge.
	original := []string{"c3", "c2", "c1"}
	forked := []string{"f2", "f1", "c3", "c2", "c1"}

	before := ForkPoint(forked, original)

	// Merging forked back adds a merge commit to the tip of original's
	// first-parent sequence; forked is unchanged.
	mergedOriginal := append([]string{"m"}, original...)
	after := ForkPoint(forked, mergedOriginal)

	require.Equal(t, "c3", before)
	require.Equal(t, before, after)
}
