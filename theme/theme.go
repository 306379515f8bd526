package theme

// seriesCount is how many chart series colors a Derived bundle carries.
const seriesCount = 5

// Theme is an organization's selected accent and mode. Callers pass it
// explicitly; nothing in this package keeps a current theme.
type Theme struct {
	Accent Color `json:"accent" toml:"accent" yaml:"accent"`
	Mode   Mode  `json:"mode" toml:"mode" yaml:"mode"`
}

// Default is the theme used for organizations without one.
func Default() Theme {
	return Theme{Accent: DefaultAccent, Mode: ModeLight}
}

// Validate checks the accent and mode.
func (t Theme) Validate() error {
	if _, err := Parse(string(t.Accent)); err != nil {
		return err
	}
	if _, err := ParseMode(string(t.Mode)); err != nil {
		return err
	}
	return nil
}

// Derived bundles everything presentation code computes from a Theme.
type Derived struct {
	Theme   Theme        `json:"theme"`
	Scheme  Scheme       `json:"scheme"`
	Palette ChartPalette `json:"palette"`
	Series  []Color      `json:"series"`
}

// Derive computes the full derived bundle for t.
func (t Theme) Derive() Derived {
	return Derived{
		Theme:   t,
		Scheme:  NewScheme(t.Accent, t.Mode),
		Palette: Palette(t.Accent),
		Series:  Series(t.Accent, seriesCount),
	}
}
