package theme

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/gamut"
)

// Mode is the dashboard's light/dark setting.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeLight || m == ModeDark
}

// ErrInvalidMode is returned by ParseMode for anything but light or dark.
var ErrInvalidMode = errors.New("invalid theme mode")

// ParseMode validates s as a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q (want light or dark)", ErrInvalidMode, s)
	}
	return m, nil
}

// Scheme is the set of surface colors a dashboard page is painted with.
type Scheme struct {
	Mode        Mode          `json:"mode"`
	Accent      Color         `json:"accent"`
	AccentHover AdjustedColor `json:"accent_hover"`
	AccentText  Color         `json:"accent_text"`
	Background  Color         `json:"background"`
	Surface     Color         `json:"surface"`
	Border      Color         `json:"border"`
	Text        Color         `json:"text"`
	Gradient    string        `json:"gradient"`
}

// surface lightness targets (CIE L, 0..1) per mode
var (
	lightTargets = [3]float64{0.98, 0.95, 0.86}
	darkTargets  = [3]float64{0.10, 0.16, 0.27}

	lightNeutral = [3]Color{"#ffffff", "#f8fafc", "#e2e8f0"}
	darkNeutral  = [3]Color{"#0f172a", "#1e293b", "#334155"}
)

const schemeSteps = 24

// NewScheme derives dashboard surfaces from accent. Light mode picks tints
// of the accent, dark mode picks shades. Unknown modes are treated as light.
func NewScheme(accent Color, mode Mode) Scheme {
	if mode != ModeDark {
		mode = ModeLight
	}
	s := Scheme{
		Mode:        mode,
		Accent:      accent,
		AccentHover: Shift(accent, 20),
		AccentText:  ContrastText(accent),
		Gradient:    GradientCSS(accent, 1),
	}

	surfaces := lightNeutral
	if mode == ModeDark {
		surfaces = darkNeutral
	}
	if base, err := accent.toColorful(); err == nil {
		var candidates []color.Color
		targets := lightTargets
		if mode == ModeDark {
			candidates = gamut.Shades(base, schemeSteps)
			targets = darkTargets
		} else {
			candidates = gamut.Tints(base, schemeSteps)
		}
		for i, target := range targets {
			if c, ok := closestLightness(candidates, target); ok {
				surfaces[i] = c
			}
		}
	}
	s.Background, s.Surface, s.Border = surfaces[0], surfaces[1], surfaces[2]
	s.Text = ContrastText(s.Background)
	return s
}

func closestLightness(candidates []color.Color, target float64) (Color, bool) {
	best, bestDist := Color(""), math.Inf(1)
	for _, cand := range candidates {
		c, ok := colorful.MakeColor(cand)
		if !ok {
			continue
		}
		l, _, _ := c.Lab()
		if d := math.Abs(l - target); d < bestDist {
			best, bestDist = fromColorful(c), d
		}
	}
	return best, best != ""
}
