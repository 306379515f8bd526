package theme

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse("#0891B2")
	require.NoError(t, err)
	assert.Equal(t, Color("#0891B2"), c)

	for _, bad := range []string{"", "#", "#fff", "0891b2", "#0891b2 ", "#gggggg", "#0891b2aa"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalidColorFormat, "input %q", bad)
	}
}

func TestColor_RGB(t *testing.T) {
	r, g, b, ok := Color("#0891b2").RGB()
	require.True(t, ok)
	assert.Equal(t, []int{8, 145, 178}, []int{r, g, b})

	_, _, _, ok = Color("#08").RGB()
	assert.False(t, ok)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("dark")
	require.NoError(t, err)
	assert.Equal(t, ModeDark, m)

	_, err = ParseMode("sepia")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestContrastRatio(t *testing.T) {
	r, err := ContrastRatio(Black, White)
	require.NoError(t, err)
	assert.InDelta(t, 21.0, r, 0.01)

	r, err = ContrastRatio("#0891b2", "#0891b2")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 0.0001)

	_, err = ContrastRatio("#0891b2", "oops")
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
}

func TestContrastText_IsTheMoreLegibleChoiceForExtremes(t *testing.T) {
	for _, bg := range []Color{"#000000", "#ffffff", "#0000ff", "#ffff00"} {
		fg := ContrastText(bg)
		other := White
		if fg == White {
			other = Black
		}
		chosen, err := ContrastRatio(fg, bg)
		require.NoError(t, err)
		rejected, err := ContrastRatio(other, bg)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, chosen, rejected, "bg %s", bg)
	}
}

func TestSeries(t *testing.T) {
	s := Series("#0891b2", 5)
	require.Len(t, s, 5)
	assert.Equal(t, Color("#0891b2"), s[0])
	seen := map[Color]bool{}
	for _, c := range s {
		assert.True(t, c.Valid(), "series color %q", c)
		seen[c] = true
	}
	assert.Len(t, seen, 5)

	assert.Nil(t, Series("#0891b2", 0))
	assert.Nil(t, Series("bad", 3))
}

func TestScheme_LightAndDark(t *testing.T) {
	light := NewScheme(DefaultAccent, ModeLight)
	assert.Equal(t, ModeLight, light.Mode)
	assert.Equal(t, Black, light.Text)
	assert.Equal(t, White, light.AccentText)
	assert.Equal(t, Shift(DefaultAccent, 20), light.AccentHover)
	assert.Equal(t, GradientCSS(DefaultAccent, 1), light.Gradient)
	for _, c := range []Color{light.Background, light.Surface, light.Border} {
		assert.True(t, c.Valid(), "surface %q", c)
	}

	dark := NewScheme(DefaultAccent, ModeDark)
	assert.Equal(t, White, dark.Text)
	assert.Greater(t, Brightness(light.Background), Brightness(dark.Background))
}

func TestScheme_UnknownModeIsLight(t *testing.T) {
	assert.Equal(t, NewScheme("#123456", ModeLight), NewScheme("#123456", "sepia"))
}

func TestScheme_MalformedAccentUsesNeutralSurfaces(t *testing.T) {
	s := NewScheme("bogus", ModeDark)
	assert.Equal(t, darkNeutral[0], s.Background)
	assert.Equal(t, White, s.Text)
	assert.Equal(t, AdjustedColor("rgba(NaN,NaN,NaN,1)"), s.AccentHover)
}

func TestTheme_Derive(t *testing.T) {
	th := Theme{Accent: "#c4a7e7", Mode: ModeDark}
	require.NoError(t, th.Validate())

	got := th.Derive()
	want := Derived{
		Theme:   th,
		Scheme:  NewScheme("#c4a7e7", ModeDark),
		Palette: Palette("#c4a7e7"),
		Series:  Series("#c4a7e7", 5),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Derive() mismatch (-want +got):\n%s", diff)
	}
}

func TestTheme_Validate(t *testing.T) {
	assert.NoError(t, Default().Validate())
	assert.ErrorIs(t, Theme{Accent: "#abc", Mode: ModeLight}.Validate(), ErrInvalidColorFormat)
	assert.ErrorIs(t, Theme{Accent: DefaultAccent, Mode: "dim"}.Validate(), ErrInvalidMode)
}
