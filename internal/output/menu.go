package output

import (
	"fmt"
	"io"
	"strconv"

	"branchkit.dev/branchkit/internal/errors"
)

// ellipsis marks a menu item that was cut to the configured width.
const ellipsis = "..."

// ParseMenuWidth parses a menu truncation width. An empty string means
// no truncation. Anything that is not a non-negative integer fails with
// ErrInvalidLength.
func ParseMenuWidth(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	width, err := strconv.Atoi(value)
	if err != nil || width < 0 {
		return 0, fmt.Errorf("%w: %q is not a valid menu width", errors.ErrInvalidLength, value)
	}
	return width, nil
}

// Truncate cuts item to width characters and appends an ellipsis marker.
// A width of zero disables truncation, as does an item that already fits.
// Counts runes, not bytes, so multibyte names are never cut mid-character.
func Truncate(item string, width int) string {
	if width <= 0 {
		return item
	}
	runes := []rune(item)
	if len(runes) <= width {
		return item
	}
	return string(runes[:width]) + ellipsis
}

// RenderMenu writes a prompt followed by numbered options. The first element
// of items is the prompt, printed as-is; every following element is printed
// as "  N)  <item>", 1-indexed. Fails with ErrNoOptions when there is
// nothing to choose from.
func RenderMenu(w io.Writer, items []string, width int) error {
	if len(items) < 2 {
		return errors.ErrNoOptions
	}
	fmt.Fprintln(w, items[0])
	for i, item := range items[1:] {
		fmt.Fprintf(w, "  %d)  %s\n", i+1, Truncate(item, width))
	}
	return nil
}
