package cmd

import (
	"fmt"

	"github.com/kastheco/orgtheme/config"
	"github.com/kastheco/orgtheme/theme"
	"github.com/spf13/cobra"
)

// NewRootCmd returns the root cobra command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "orgtheme",
		Short:         "orgtheme - derive and serve organization dashboard colors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "path to config.toml or config.yaml")

	loadConfig := func() (config.Config, error) {
		return config.Load(configPath)
	}

	root.AddCommand(NewDeriveCmd())
	root.AddCommand(NewShowCmd(loadConfig))
	root.AddCommand(NewChartCmd(loadConfig))
	root.AddCommand(NewServeCmd(loadConfig))
	return root
}

// configLoader reads the config file selected by the root --config flag.
type configLoader func() (config.Config, error)

// accentFlag resolves --color: the flag when set, else the configured accent.
func accentFlag(cmd *cobra.Command, flag string, cfg config.Config) (theme.Color, error) {
	raw := cfg.Theme.Accent
	if cmd.Flags().Changed("color") {
		raw = flag
	}
	c, err := theme.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("--color: %w", err)
	}
	return c, nil
}
