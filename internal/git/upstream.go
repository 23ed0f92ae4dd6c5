package git

import (
	"regexp"
	"strings"
)

// SuggestionParser extracts a remediation command from failed push output.
// It is an interface so the parsing strategy can be swapped when git changes
// its message format; "no match" is the normal fallback path, not an error.
type SuggestionParser interface {
	// ParseSuggestion returns the suggested git argv (without the leading
	// "git") and whether a suggestion was found.
	ParseSuggestion(output string) ([]string, bool)
}

// upstreamSuggestionParser parses the hint git has emitted since 1.8 when a
// branch has no configured upstream:
//
//	fatal: The current branch feature has no upstream branch.
//	To push the current branch and set the remote as upstream, use
//
//	    git push --set-upstream origin feature
//
// Suggestions pushing a HEAD ref qualifier (origin HEAD:feature) are not
// this failure signature and are deliberately not matched.
type upstreamSuggestionParser struct{}

var upstreamSuggestionRe = regexp.MustCompile(`(?m)^\s*git push --set-upstream (\S+) (\S+)\s*$`)

// NewSuggestionParser returns the parser for the current known git message format.
func NewSuggestionParser() SuggestionParser {
	return &upstreamSuggestionParser{}
}

func (p *upstreamSuggestionParser) ParseSuggestion(output string) ([]string, bool) {
	match := upstreamSuggestionRe.FindStringSubmatch(output)
	if match == nil {
		return nil, false
	}
	remote, branch := match[1], match[2]
	if strings.Contains(branch, "HEAD:") {
		return nil, false
	}
	return []string{"push", "--set-upstream", remote, branch}, true
}
