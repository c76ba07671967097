package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/gtkbridge/internal/cli/styles"
	"github.com/bnema/gtkbridge/internal/config"
	"github.com/bnema/gtkbridge/internal/scenario"
	"github.com/bnema/gtkbridge/pkg/gtk"
)

var (
	runAutopilot bool
	runWatch     bool
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a demo scenario",
	Long: `Run one of the demo scenarios:

  first        window with a button, closing it quits
  checkbox     the button quits only while the check box is ticked
  dialog       modal OK/Cancel message dialog, OK quits
  filechooser  open-file dialog with configured shortcut folders

Examples:
  gtkbridge-demo run first
  gtkbridge-demo run dialog --autopilot
  gtkbridge-demo run checkbox --watch   # live-reload the window title`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: scenario.Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScenario(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runAutopilot, "autopilot", false, "play the scenario's scripted clicks")
	runCmd.Flags().BoolVar(&runWatch, "watch", false, "apply config file changes to the running window")
}

// runScenario runs name on the calling goroutine, which becomes the GTK thread.
func runScenario(cmd *cobra.Command, name string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if _, err := scenario.Lookup(name); err != nil {
		return err
	}
	log := app.Logger

	if err := gtk.Init(); err != nil {
		return err
	}

	var opts []scenario.Option
	if runAutopilot || gtk.Headless() {
		if !runAutopilot {
			log.Warn().Msg("headless backend cannot wait for input, playing the autopilot")
		}
		opts = append(opts, scenario.WithAutopilot())
	}

	s, err := scenario.New(app.Ctx(), name, app.Config, opts...)
	if err != nil {
		return err
	}
	defer s.Close()

	if runWatch {
		app.Manager.OnConfigChange(func(cfg *config.Config) { s.ApplyConfig(cfg) })
		switch err := app.Manager.Watch(); {
		case errors.Is(err, config.ErrNoConfigFile):
			log.Warn().Msg("no config file to watch, run 'gtkbridge-demo config init' first")
		case err != nil:
			return err
		}
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := s.Run(ctx)
	if err != nil && !errors.Is(err, ctx.Err()) {
		return err
	}

	summary := styles.RunSummary{
		Scenario: res.Scenario,
		Clicks:   res.Clicks,
		Deletes:  res.Deletes,
		Files:    res.Files,
	}
	for _, r := range res.Responses {
		summary.Responses = append(summary.Responses, r.String())
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewRunRenderer(app.Theme).Render(summary))
	return nil
}
