package git

// ForkPoint computes the stable fork point between two first-parent commit
// sequences, both ordered most-recent-first. It returns the most recent
// commit the two sequences had in common before they diverged: walking both
// sequences from their oldest commits, the last identifier at which they
// still agree. A later merge of forked back into original only appends to
// the tip of original's first-parent sequence, so the result does not change
// after the merge, unlike a plain merge-base query.
//
// Returns the empty string when the sequences share no history, which
// callers must treat as "no baseline" rather than an error.
func ForkPoint(forked, original []string) string {
	forkPoint := ""
	i, j := len(forked)-1, len(original)-1
	for i >= 0 && j >= 0 && forked[i] == original[j] {
		forkPoint = forked[i]
		i--
		j--
	}
	return forkPoint
}

// StableForkPoint computes the fork point between two branches of the
// default repository. Either name failing to resolve is an ErrUnknownBranch.
func StableForkPoint(forked, original string) (string, error) {
	forkedHistory, err := FirstParentHistory(forked)
	if err != nil {
		return "", err
	}
	originalHistory, err := FirstParentHistory(original)
	if err != nil {
		return "", err
	}
	return ForkPoint(forkedHistory, originalHistory), nil
}
