package styles_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gtkbridge/internal/cli/styles"
)

func TestDoctorRenderer_Render(t *testing.T) {
	r := styles.NewDoctorRenderer(styles.NewTheme())

	out := r.Render(styles.DoctorReport{
		OverallOK: false,
		Prefix:    "/opt/gtk",
		Backend:   "headless",
		Checks: []styles.DoctorCheck{
			{Name: "GTK+ 3", PkgConfigName: "gtk+-3.0", Installed: true, Version: "3.24.41", RequiredVersion: "3.22", OK: true},
			{Name: "GLib", PkgConfigName: "glib-2.0", Installed: true, Version: "2.40", RequiredVersion: "2.56"},
			{Name: "Cairo", PkgConfigName: "cairo", Error: "pkg-config (package_missing): cairo"},
		},
	})

	assert.Contains(t, out, "Needs attention")
	assert.Contains(t, out, "/opt/gtk")
	assert.Contains(t, out, "3.24.41 (>= 3.22)")
	assert.Contains(t, out, "have 2.40, need >= 2.56")
	assert.Contains(t, out, "Missing")
	assert.Contains(t, out, "headless")
}

func TestTypesRenderer_Render(t *testing.T) {
	root := &styles.TypeNode{Name: "GObject", Children: []*styles.TypeNode{
		{Name: "GtkWidget", Registered: true, Children: []*styles.TypeNode{
			{Name: "GtkBox", Registered: true, Implements: []string{"GtkOrientable"}},
			{Name: "GtkMisc", Registered: true},
		}},
	}}

	out := styles.NewTypesRenderer(styles.NewTheme()).Render(root, []string{"GtkOrientable"})

	assert.Contains(t, out, "GObject")
	assert.Contains(t, out, "├── ")
	assert.Contains(t, out, "└── ")
	assert.Contains(t, out, "implements GtkOrientable")
	assert.Contains(t, out, "Interfaces")
}

func TestConfigRenderer(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderConfigInfo(""), "using defaults")
	assert.Contains(t, r.RenderWritten("/tmp/gtkbridge/config.toml"), "config.toml")
	assert.Contains(t, r.RenderExists("/tmp/x.toml"), "--force")
	assert.Contains(t, r.RenderError(errors.New("nope")), "nope")
}

func TestRunRenderer(t *testing.T) {
	out := styles.NewRunRenderer(styles.NewTheme()).Render(styles.RunSummary{
		Scenario:  "dialog",
		Clicks:    2,
		Responses: []string{"cancel", "ok"},
		Files:     []string{"/tmp/a.txt"},
	})

	assert.Contains(t, out, "dialog")
	assert.Contains(t, out, "cancel, ok")
	assert.Contains(t, out, "/tmp/a.txt")
	assert.NotContains(t, out, "close requests")
}

func TestScenarioList(t *testing.T) {
	theme := styles.NewTheme()
	items := []styles.ScenarioItem{{Name: "first", Description: "one"}, {Name: "dialog", Description: "two"}}

	l := styles.NewScenarioList(theme, items, 40, 10)
	require.Len(t, l.Items(), 2)

	var buf bytes.Buffer
	styles.ScenarioDelegate{Theme: theme}.Render(&buf, l, 0, items[0])
	assert.Contains(t, buf.String(), "first")
	assert.Contains(t, buf.String(), "one")
}
