package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the path of the config file in use.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	if path == "" {
		return fmt.Sprintf("\n  %s Config %s\n",
			iconStyle.Render(IconConfig),
			r.theme.Subtle.Render("(no file, using defaults)"),
		)
	}
	return fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
}

// RenderWritten renders the success message after writing the default file.
func (r *ConfigRenderer) RenderWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Wrote default config to %s\n", iconStyle.Render(IconCheck), r.theme.Subtle.Render(path))
}

// RenderExists renders the message shown when init finds a config file.
func (r *ConfigRenderer) RenderExists(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	return fmt.Sprintf(
		"\n  %s Config %s already exists\n  %s\n",
		iconStyle.Render(IconInfo),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Run 'gtkbridge-demo config init --force' to overwrite it."),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s Config error: %v\n", iconStyle.Render(IconX), err)
}
