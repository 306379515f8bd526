package theme

import (
	"fmt"
	"math"
	"strconv"
)

// AdjustedColor is a CSS rgba() string with an explicit alpha.
type AdjustedColor string

// ChartPalette is the color set chart renderers build series from.
// Gradient stops run from most to least opaque (top-to-bottom fade).
type ChartPalette struct {
	Primary   Color            `json:"primary"`
	Secondary AdjustedColor    `json:"secondary"`
	Gradient  [3]AdjustedColor `json:"gradient"`
}

// Adjust adds amount to each channel of c, clamps to [0,255] and formats the
// result with the given opacity. Opacity is passed through as-is.
// A malformed c yields "rgba(NaN,NaN,NaN,<opacity>)".
func Adjust(c Color, amount int, opacity float64) AdjustedColor {
	r, g, b := c.channels()
	d := float64(amount)
	return AdjustedColor(fmt.Sprintf("rgba(%s,%s,%s,%s)",
		formatChannel(clamp(r+d)),
		formatChannel(clamp(g+d)),
		formatChannel(clamp(b+d)),
		strconv.FormatFloat(opacity, 'f', -1, 64),
	))
}

// Shift is Adjust at full opacity.
func Shift(c Color, amount int) AdjustedColor {
	return Adjust(c, amount, 1)
}

// Palette derives the chart palette for c.
func Palette(c Color) ChartPalette {
	return ChartPalette{
		Primary:   c,
		Secondary: Adjust(c, 20, 1),
		Gradient: [3]AdjustedColor{
			Adjust(c, 0, 0.2),
			Adjust(c, 0, 0.1),
			Adjust(c, 0, 0),
		},
	}
}

// Brightness is the broadcast-luminance heuristic (299R+587G+114B)/1000.
// It is NaN for malformed input.
func Brightness(c Color) float64 {
	r, g, b := c.channels()
	return (299*r + 587*g + 114*b) / 1000
}

// ContrastText picks black or white text for legibility on bg.
// Malformed input ends up white since NaN never compares greater.
func ContrastText(bg Color) Color {
	if Brightness(bg) > 128 {
		return Black
	}
	return White
}

// GradientCSS returns a left-to-right CSS gradient from c to its +20 shift.
func GradientCSS(c Color, opacity float64) string {
	return fmt.Sprintf("linear-gradient(to right, %s, %s)", c, Adjust(c, 20, opacity))
}

func clamp(v float64) float64 {
	// math.Min/Max propagate NaN.
	return math.Min(255, math.Max(0, v))
}

func formatChannel(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.Itoa(int(v))
}
