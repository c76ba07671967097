package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

type DoctorReport struct {
	OverallOK bool
	Prefix    string
	Backend   string
	Checks    []DoctorCheck
}

type DoctorCheck struct {
	Name            string
	PkgConfigName   string
	Installed       bool
	Version         string
	RequiredVersion string
	OK              bool
	Error           string
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	header := r.renderHeader(report.OverallOK)

	lines := make([]string, 0, len(report.Checks)+2)
	if report.Backend != "" {
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.Subtle.Render("Backend"), r.theme.Normal.Render(report.Backend)))
	}
	if strings.TrimSpace(report.Prefix) != "" {
		lines = append(lines, fmt.Sprintf(
			"%s %s %s",
			r.theme.Subtle.Render("Prefix"),
			r.theme.Normal.Render(report.Prefix),
			r.theme.Subtle.Render("(pkg-config override)"),
		))
	}
	for _, c := range report.Checks {
		lines = append(lines, r.renderCheck(c))
	}

	body := strings.Join(lines, "\n")
	box := r.theme.Box.Render(r.theme.BoxHeader.Render(fmt.Sprintf("%s Native libraries", r.theme.Highlight.Render(IconPackage))) + "\n" + body)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", box)
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderCheck(c DoctorCheck) string {
	icon := IconCheck
	statusStyle := r.theme.SuccessStyle
	status := "OK"

	var summary string
	switch {
	case !c.Installed:
		icon = IconX
		statusStyle = r.theme.ErrorStyle
		status = "Missing"
		summary = c.Error
	case !c.OK:
		icon = IconWarning
		statusStyle = r.theme.WarningStyle
		status = "Too old"
		summary = fmt.Sprintf("have %s, need >= %s", c.Version, c.RequiredVersion)
	default:
		summary = fmt.Sprintf("%s (>= %s)", c.Version, c.RequiredVersion)
	}

	name := r.theme.Normal.Render(c.Name)
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(status))
	info := r.theme.Subtle.Render(c.PkgConfigName + ": " + summary)

	return fmt.Sprintf("%s %s %s\n  %s", statusStyle.Render(icon), name, badge, info)
}
