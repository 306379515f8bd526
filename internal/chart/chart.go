// Package chart renders a PNG preview of a theme's chart palette.
package chart

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/kastheco/orgtheme/theme"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	previewWidth  = 640
	previewHeight = 320
	samplePoints  = 24
)

// bandScale is the height of each filled band relative to the sample line,
// paired with the gradient stop at the same index.
var bandScale = [3]float64{1, 0.66, 0.33}

// RenderPreview draws a sample area chart with p: the secondary color strokes
// the line, the gradient stops fill stacked bands beneath it and the primary
// color marks the points.
func RenderPreview(p theme.ChartPalette, w io.Writer) error {
	xs, ys := sampleSeries()

	series := make([]gochart.Series, 0, len(p.Gradient)+1)
	for i, stop := range p.Gradient {
		band := make([]float64, len(ys))
		for j, y := range ys {
			band[j] = y * bandScale[i]
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    fmt.Sprintf("band-%d", i),
			XValues: xs,
			YValues: band,
			Style: gochart.Style{
				StrokeWidth: 0,
				StrokeColor: drawing.ColorTransparent,
				FillColor:   rgbaColor(stop),
			},
		})
	}
	series = append(series, gochart.ContinuousSeries{
		Name:    "sample",
		XValues: xs,
		YValues: ys,
		Style: gochart.Style{
			StrokeColor: rgbaColor(p.Secondary),
			StrokeWidth: 2,
			DotColor:    hexColor(p.Primary),
			DotWidth:    3,
		},
	})

	graph := gochart.Chart{
		Width:  previewWidth,
		Height: previewHeight,
		Background: gochart.Style{
			FillColor: drawing.ColorWhite,
		},
		Canvas: gochart.Style{
			FillColor: drawing.ColorWhite,
		},
		Series: series,
	}
	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render chart preview: %w", err)
	}
	return nil
}

// PreviewPNG is RenderPreview into a byte slice.
func PreviewPNG(p theme.ChartPalette) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderPreview(p, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sampleSeries() (xs, ys []float64) {
	xs = make([]float64, samplePoints)
	ys = make([]float64, samplePoints)
	for i := range xs {
		x := float64(i)
		xs[i] = x
		ys[i] = 50 + 25*math.Sin(x/3) + 10*math.Cos(x/1.7)
	}
	return xs, ys
}

func hexColor(c theme.Color) drawing.Color {
	r, g, b, ok := c.RGB()
	if !ok {
		return drawing.ColorTransparent
	}
	return drawing.Color{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

// rgbaColor parses "rgba(r,g,b,a)". Anything it cannot read, including the
// NaN channels of a malformed base color, becomes transparent.
func rgbaColor(c theme.AdjustedColor) drawing.Color {
	s := string(c)
	if !strings.HasPrefix(s, "rgba(") || !strings.HasSuffix(s, ")") {
		return drawing.ColorTransparent
	}
	parts := strings.Split(s[len("rgba("):len(s)-1], ",")
	if len(parts) != 4 {
		return drawing.ColorTransparent
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return drawing.ColorTransparent
		}
		ch[i] = uint8(v)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil || math.IsNaN(a) {
		return drawing.ColorTransparent
	}
	a = math.Min(1, math.Max(0, a))
	return drawing.Color{R: ch[0], G: ch[1], B: ch[2], A: uint8(math.Round(a * 255))}
}
