package theme

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// goldenAngle spreads consecutive series hues as far apart as possible.
const goldenAngle = 137.50776

func (c Color) toColorful() (colorful.Color, error) {
	if !c.Valid() {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, string(c))
	}
	return colorful.Hex(string(c))
}

func fromColorful(c colorful.Color) Color {
	return Color(c.Clamped().Hex())
}

// relativeLuminance per WCAG 2, computed from linear RGB.
func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG 2 contrast ratio between fg and bg, in [1,21].
func ContrastRatio(fg, bg Color) (float64, error) {
	f, err := fg.toColorful()
	if err != nil {
		return 0, fmt.Errorf("foreground: %w", err)
	}
	b, err := bg.toColorful()
	if err != nil {
		return 0, fmt.Errorf("background: %w", err)
	}
	lf, lb := relativeLuminance(f), relativeLuminance(b)
	return (math.Max(lf, lb) + 0.05) / (math.Min(lf, lb) + 0.05), nil
}

// Series returns n categorical colors for chart series. The first is c itself;
// the rest rotate hue in HCL space keeping chroma and lightness.
func Series(c Color, n int) []Color {
	if n <= 0 {
		return nil
	}
	base, err := c.toColorful()
	if err != nil {
		return nil
	}
	h, ch, l := base.Hcl()
	out := make([]Color, n)
	out[0] = c
	for i := 1; i < n; i++ {
		hue := math.Mod(h+float64(i)*goldenAngle, 360)
		out[i] = fromColorful(colorful.Hcl(hue, ch, l))
	}
	return out
}
