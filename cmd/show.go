package cmd

import (
	"fmt"
	"os"

	"github.com/kastheco/orgtheme/internal/chart"
	"github.com/kastheco/orgtheme/theme"
	"github.com/kastheco/orgtheme/ui"
	"github.com/spf13/cobra"
)

// NewShowCmd returns the `orgtheme show` command, a terminal swatch preview.
func NewShowCmd(load configLoader) *cobra.Command {
	var (
		color string
		mode  string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "preview a theme's colors in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			accent, err := accentFlag(cmd, color, cfg)
			if err != nil {
				return err
			}
			rawMode := cfg.Theme.Mode
			if cmd.Flags().Changed("mode") {
				rawMode = mode
			}
			m, err := theme.ParseMode(rawMode)
			if err != nil {
				return fmt.Errorf("--mode: %w", err)
			}

			t := theme.Theme{Accent: accent, Mode: m}
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSwatches(t.Derive()))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "accent color (#rrggbb); defaults to the configured accent")
	cmd.Flags().StringVar(&mode, "mode", "", "light or dark; defaults to the configured mode")

	return cmd
}

// NewChartCmd returns the `orgtheme chart` command, which writes a PNG
// preview of the chart palette.
func NewChartCmd(load configLoader) *cobra.Command {
	var (
		color string
		out   string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "write a PNG chart preview of a theme's palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			accent, err := accentFlag(cmd, color, cfg)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := chart.RenderPreview(theme.Palette(accent), f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "accent color (#rrggbb); defaults to the configured accent")
	cmd.Flags().StringVarP(&out, "out", "o", "chart.png", "output PNG path")

	return cmd
}
