package cmd

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/gtkbridge/internal/cli"
	"github.com/bnema/gtkbridge/internal/cli/styles"
	"github.com/bnema/gtkbridge/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Write the default config file, print its JSON schema or show the effective values.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	RunE:  runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.Schema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the config file in use and the effective values",
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configSchemaCmd, configShowCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	dir, err := cli.ConfigDir(options)
	if err != nil {
		return err
	}
	path, err := config.WriteDefault(dir, configForce)
	switch {
	case errors.Is(err, config.ErrConfigExists):
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderExists(path))
		return nil
	case err != nil:
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderWritten(path))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := toml.Marshal(app.Config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styles.NewConfigRenderer(app.Theme).RenderConfigInfo(app.Manager.GetConfigFile()))
	_, err = fmt.Fprint(out, string(data))
	return err
}
