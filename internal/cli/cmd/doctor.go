package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/gtkbridge/internal/cli/styles"
	"github.com/bnema/gtkbridge/internal/deps"
	"github.com/bnema/gtkbridge/pkg/gtk"
)

var doctorPrefix string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the native libraries needed by the gtk_cgo build",
	Long: `Doctor queries pkg-config for GTK+ 3, GDK, GLib, GObject and Cairo and compares
the installed versions with the minimum the bindings support.

Examples:
  gtkbridge-demo doctor
  gtkbridge-demo doctor --prefix /opt/gtk3`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().StringVar(&doctorPrefix, "prefix", "", "search this install prefix's pkgconfig directories first")
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return doctor(cmd, deps.NewPkgConfigProbe())
}

func doctor(cmd *cobra.Command, probe deps.Prober) error {
	out, err := deps.Check(app.Ctx(), probe, doctorPrefix, deps.Modules)
	if err != nil {
		return err
	}

	major, minor, micro := gtk.Version()
	report := styles.DoctorReport{
		OverallOK: out.OK,
		Prefix:    out.Prefix,
		Backend:   fmt.Sprintf("%s, GTK %d.%d.%d", backendName(), major, minor, micro),
		Checks:    make([]styles.DoctorCheck, 0, len(out.Statuses)),
	}
	for _, s := range out.Statuses {
		report.Checks = append(report.Checks, styles.DoctorCheck{
			Name:            s.DisplayName,
			PkgConfigName:   s.PkgConfigName,
			Installed:       s.Installed,
			Version:         s.Version,
			RequiredVersion: s.MinVersion,
			OK:              s.MeetsRequirement,
			Error:           s.Error,
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewDoctorRenderer(app.Theme).Render(report))
	if !out.OK {
		return fmt.Errorf("native requirements not met")
	}
	return nil
}
