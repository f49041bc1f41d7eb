package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// gradient is a linear multi-stop color scale over [0, 1]. Stops are
// evenly spaced; values between stops interpolate per channel.
type gradient []drawing.Color

func parseHexColor(s string) (drawing.Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return drawing.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return drawing.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	return drawing.Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

func newGradient(hexes []string) (gradient, error) {
	if len(hexes) < 2 {
		return nil, fmt.Errorf("gradient needs at least 2 stops, got %d", len(hexes))
	}
	g := make(gradient, len(hexes))
	for i, h := range hexes {
		c, err := parseHexColor(h)
		if err != nil {
			return nil, err
		}
		g[i] = c
	}
	return g, nil
}

// at returns the color for t, clamped to [0, 1].
func (g gradient) at(t float64) drawing.Color {
	if t <= 0 {
		return g[0]
	}
	if t >= 1 {
		return g[len(g)-1]
	}
	seg := t * float64(len(g)-1)
	i := int(math.Floor(seg))
	if i >= len(g)-1 {
		return g[len(g)-1]
	}
	f := seg - float64(i)
	a, b := g[i], g[i+1]
	return drawing.Color{
		R: lerpChannel(a.R, b.R, f),
		G: lerpChannel(a.G, b.G, f),
		B: lerpChannel(a.B, b.B, f),
		A: lerpChannel(a.A, b.A, f),
	}
}

func lerpChannel(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}

// normalize rescales v linearly from [min, max] to [0, 1]. A degenerate
// range (min == max) maps everything to 0, so a dataset with uniform
// token counts still renders, every bar in the same color.
func normalize(v, min, max float64) float64 {
	if max <= min {
		return 0
	}
	return (v - min) / (max - min)
}
