// Package cmd provides Cobra CLI commands for gtkbridge-demo.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/gtkbridge/internal/cli"
)

// BuildInfo is set from main through ldflags.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

var (
	app       *cli.App
	buildInfo BuildInfo
	options   cli.Options
	rootCmd   = &cobra.Command{
		Use:   "gtkbridge-demo",
		Short: "Demo programs for the gtkbridge GTK+ 3 bindings",
		Long: `gtkbridge-demo runs small GTK+ 3 programs written against the gtkbridge
bindings and inspects the environment they run in.

Built with -tags gtk_cgo it opens real windows. Without the tag it runs on the
in-memory backend, where scenarios play their scripted autopilot.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(options)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&options.ConfigDir, "config-dir", "", "read config.{toml,yaml,json} from this directory instead of the XDG one")
	rootCmd.PersistentFlags().StringVar(&options.LogLevel, "log-level", "", "trace, debug, info, warn or error")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info BuildInfo) {
	buildInfo = info
}
