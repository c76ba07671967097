package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RunSummary is what a finished scenario reports.
type RunSummary struct {
	Scenario  string
	Clicks    int
	Deletes   int
	Responses []string
	Files     []string
}

// RunRenderer renders the outcome of a scenario run.
type RunRenderer struct {
	theme *Theme
}

func NewRunRenderer(theme *Theme) *RunRenderer {
	return &RunRenderer{theme: theme}
}

func (r *RunRenderer) Render(s RunSummary) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	lines := []string{
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconPlay), r.theme.Title.Render(s.Scenario), r.theme.Subtle.Render("finished")),
		fmt.Sprintf("  %s %d", r.theme.Subtle.Render("clicks"), s.Clicks),
	}
	if s.Deletes > 0 {
		lines = append(lines, fmt.Sprintf("  %s %d", r.theme.Subtle.Render("close requests"), s.Deletes))
	}
	if len(s.Responses) > 0 {
		lines = append(lines, fmt.Sprintf("  %s %s", r.theme.Subtle.Render("responses"), strings.Join(s.Responses, ", ")))
	}
	for _, f := range s.Files {
		lines = append(lines, fmt.Sprintf("  %s %s", r.theme.Subtle.Render("selected"), r.theme.Normal.Render(f)))
	}
	return strings.Join(lines, "\n")
}
