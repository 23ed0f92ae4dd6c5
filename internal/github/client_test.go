package github

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOwnerRepo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantOK    bool
	}{
		{name: "ssh url", url: "git@github.com:acme/billing-api.git", wantOwner: "acme", wantRepo: "billing-api", wantOK: true},
		{name: "https url", url: "https://github.com/acme/billing-api.git", wantOwner: "acme", wantRepo: "billing-api", wantOK: true},
		{name: "https url without suffix", url: "https://github.com/acme/billing-api", wantOwner: "acme", wantRepo: "billing-api", wantOK: true},
		{name: "non-github remote", url: "https://gitlab.com/acme/billing-api.git", wantOK: false},
		{name: "local path", url: "/srv/git/billing-api.git", wantOK: false},
		{name: "empty", url: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, ok := ParseOwnerRepo(tt.url)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.Equal(t, tt.wantOwner, owner)
				require.Equal(t, tt.wantRepo, repo)
			}
		})
	}
}
