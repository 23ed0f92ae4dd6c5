package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepoDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "https url", url: "https://github.com/acme/billing-api.git", want: "billing-api"},
		{name: "https url without suffix", url: "https://github.com/acme/billing-api", want: "billing-api"},
		{name: "ssh url", url: "git@github.com:acme/billing-api.git", want: "billing-api"},
		{name: "trailing slash", url: "https://github.com/acme/billing-api/", want: "billing-api"},
		{name: "local path", url: "/srv/git/billing-api.git", want: "billing-api"},
		{name: "empty", url: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RepoDisplayName(tt.url))
		})
	}
}
