package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/gtkbridge/internal/cli/model"
	"github.com/bnema/gtkbridge/internal/cli/styles"
	"github.com/bnema/gtkbridge/internal/scenario"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a scenario interactively and run it",
	RunE:  runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().BoolVar(&runAutopilot, "autopilot", false, "play the scenario's scripted clicks")
	pickCmd.Flags().BoolVar(&runWatch, "watch", false, "apply config file changes to the running window")
}

func runPick(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	defs := scenario.All()
	items := make([]styles.ScenarioItem, len(defs))
	for i, d := range defs {
		items[i] = styles.ScenarioItem{Name: d.Name, Description: d.Description}
	}

	p := tea.NewProgram(model.NewPickerModel(app.Theme, items),
		tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("picker: %w", err)
	}

	picked := final.(model.PickerModel).Selected()
	if picked == "" {
		return nil
	}
	return runScenario(cmd, picked)
}
