package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/orgtheme/theme"
)

const swatchWidth = 10

// Swatch renders a block of bg with sample text in fg. Colors the terminal
// cannot show (malformed input, rgba strings) render as a marked block.
func Swatch(bg, fg theme.Color) string {
	if !bg.Valid() {
		return errorStyle.Width(swatchWidth).Render("invalid")
	}
	style := lipgloss.NewStyle().
		Width(swatchWidth).
		Align(lipgloss.Center).
		Background(lipgloss.Color(string(bg)))
	if fg.Valid() {
		style = style.Foreground(lipgloss.Color(string(fg)))
	}
	return style.Render("Aa")
}

func row(label, swatch, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render(label),
		swatch,
		" ",
		valueStyle.Render(value),
	)
}

// RenderSwatches draws the derived theme as labeled color blocks: the
// accent and its text color, the mode surfaces, the chart palette and the
// series colors.
func RenderSwatches(d theme.Derived) string {
	s := d.Scheme
	lines := []string{
		headingStyle.Render(fmt.Sprintf("%s theme, accent %s", s.Mode, s.Accent)),
		row("accent", Swatch(s.Accent, s.AccentText), fmt.Sprintf("%s on %s", s.AccentText, s.Accent)),
		row("accent hover", strings.Repeat(" ", swatchWidth), string(s.AccentHover)),
		row("background", Swatch(s.Background, s.Text), fmt.Sprintf("%s text %s", s.Background, s.Text)),
		row("surface", Swatch(s.Surface, theme.ContrastText(s.Surface)), string(s.Surface)),
		row("border", Swatch(s.Border, theme.ContrastText(s.Border)), string(s.Border)),
		row("gradient", strings.Repeat(" ", swatchWidth), s.Gradient),
		"",
		headingStyle.Render("chart palette"),
		row("primary", Swatch(d.Palette.Primary, theme.ContrastText(d.Palette.Primary)), string(d.Palette.Primary)),
		row("secondary", strings.Repeat(" ", swatchWidth), string(d.Palette.Secondary)),
	}
	for i, stop := range d.Palette.Gradient {
		lines = append(lines, row(fmt.Sprintf("stop %d", i), strings.Repeat(" ", swatchWidth), string(stop)))
	}

	if len(d.Series) > 0 {
		blocks := make([]string, 0, len(d.Series))
		for _, c := range d.Series {
			blocks = append(blocks, Swatch(c, theme.ContrastText(c)))
		}
		lines = append(lines, "", headingStyle.Render("series"), lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
		names := make([]string, 0, len(d.Series))
		for _, c := range d.Series {
			names = append(names, string(c))
		}
		lines = append(lines, hintStyle.Render(strings.Join(names, " ")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
