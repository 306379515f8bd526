package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kastheco/orgtheme/theme"
	"github.com/spf13/cobra"
)

// derivation is what `orgtheme derive` reports for one color.
type derivation struct {
	Color         theme.Color         `json:"color"`
	Adjusted      theme.AdjustedColor `json:"adjusted"`
	Palette       theme.ChartPalette  `json:"palette"`
	ContrastText  theme.Color         `json:"contrast_text"`
	ContrastRatio float64             `json:"contrast_ratio"`
	Gradient      string              `json:"gradient"`
}

func derive(c theme.Color, amount int, opacity float64) (derivation, error) {
	fg := theme.ContrastText(c)
	ratio, err := theme.ContrastRatio(fg, c)
	if err != nil {
		return derivation{}, err
	}
	return derivation{
		Color:         c,
		Adjusted:      theme.Adjust(c, amount, opacity),
		Palette:       theme.Palette(c),
		ContrastText:  fg,
		ContrastRatio: ratio,
		Gradient:      theme.GradientCSS(c, opacity),
	}, nil
}

func (d derivation) writeText(w io.Writer) {
	fmt.Fprintf(w, "color          %s\n", d.Color)
	fmt.Fprintf(w, "adjusted       %s\n", d.Adjusted)
	fmt.Fprintf(w, "contrast text  %s (%.2f:1)\n", d.ContrastText, d.ContrastRatio)
	fmt.Fprintf(w, "gradient       %s\n", d.Gradient)
	fmt.Fprintf(w, "primary        %s\n", d.Palette.Primary)
	fmt.Fprintf(w, "secondary      %s\n", d.Palette.Secondary)
	for i, stop := range d.Palette.Gradient {
		fmt.Fprintf(w, "stop %d         %s\n", i, stop)
	}
}

// NewDeriveCmd returns the `orgtheme derive` command.
func NewDeriveCmd() *cobra.Command {
	var (
		color   string
		amount  int
		opacity float64
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "print the colors derived from an accent color",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := theme.Parse(color)
			if err != nil {
				return fmt.Errorf("--color: %w", err)
			}
			d, err := derive(c, amount, opacity)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(d)
			}
			d.writeText(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", string(theme.DefaultAccent), "accent color (#rrggbb)")
	cmd.Flags().IntVar(&amount, "amount", 20, "amount added to each RGB channel")
	cmd.Flags().Float64Var(&opacity, "opacity", 1, "alpha for the adjusted color")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}
