package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/gtkbridge/pkg/gtk"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gtkbridge-demo %s\n", buildInfo.Version)
		fmt.Fprintf(out, "commit: %s\n", buildInfo.Commit)
		fmt.Fprintf(out, "built: %s (%s)\n", buildInfo.BuildDate, buildInfo.GoVersion)
		major, minor, micro := gtk.Version()
		fmt.Fprintf(out, "gtk: %d.%d.%d (%s)\n", major, minor, micro, backendName())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func backendName() string {
	if gtk.Headless() {
		return "headless"
	}
	return "native"
}
