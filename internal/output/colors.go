package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// colorEnabled is decided once at startup. NO_COLOR disables styling, as
// does a non-terminal stdout.
var colorEnabled = detectColor()

func detectColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

// ColorError colors error text
func ColorError(text string) string {
	return render(errorStyle, text)
}

// ColorSummary colors dev-note summary text
func ColorSummary(text string) string {
	return render(summaryStyle, text)
}

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return render(currentStyle, branchName+" (current)")
	}
	return render(branchStyle, branchName)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return render(dimStyle, text)
}
