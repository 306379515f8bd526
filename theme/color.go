// Package theme derives the colors an organization dashboard needs from a
// single accent color. Every function is pure and safe for concurrent use.
package theme

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Color is a 6-hex-digit RGB string prefixed with '#', e.g. "#0891b2".
type Color string

const (
	// DefaultAccent is the accent color used when an organization has not picked one.
	DefaultAccent Color = "#0891b2"

	Black Color = "#000000"
	White Color = "#FFFFFF"
)

// ErrInvalidColorFormat is returned by Parse for anything that is not #rrggbb.
var ErrInvalidColorFormat = errors.New("invalid color format")

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Parse validates s and returns it as a Color.
func Parse(s string) (Color, error) {
	if !hexPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q (want #rrggbb)", ErrInvalidColorFormat, s)
	}
	return Color(s), nil
}

// Valid reports whether c is a well-formed #rrggbb color.
func (c Color) Valid() bool {
	return hexPattern.MatchString(string(c))
}

// RGB splits c into its channels. ok is false when c is malformed.
func (c Color) RGB() (r, g, b int, ok bool) {
	if !c.Valid() {
		return 0, 0, 0, false
	}
	n, err := strconv.ParseUint(string(c[1:]), 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(n>>16) & 0xff, int(n>>8) & 0xff, int(n) & 0xff, true
}

func (c Color) String() string {
	return string(c)
}

// channels returns the color as floats so malformed input degrades to NaN
// instead of failing.
func (c Color) channels() (r, g, b float64) {
	ri, gi, bi, ok := c.RGB()
	if !ok {
		return math.NaN(), math.NaN(), math.NaN()
	}
	return float64(ri), float64(gi), float64(bi)
}
