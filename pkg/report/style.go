package report

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Style defines the customizable appearance of the rendered report.
// Zero values are not meaningful; start from DefaultStyle (or LoadStyle,
// which layers YAML overrides onto it).
type Style struct {
	// Width and Height are the canvas size in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// DPI scales text relative to the canvas. The stock report is a
	// 12x10 inch figure at 300 DPI.
	DPI float64 `yaml:"dpi"`

	// Background is the canvas fill color (hex).
	Background string `yaml:"background"`

	// Palette is the 4-stop color gradient for token intensity,
	// ordered low to high.
	Palette []string `yaml:"palette"`

	// BarAlpha is the bar fill opacity in [0, 1].
	BarAlpha float64 `yaml:"bar_alpha"`

	// BarWidth is the angular width of each bar in radians.
	BarWidth float64 `yaml:"bar_width"`

	// GridStep is the spacing of circular gridlines in failure-rate
	// units (percent).
	GridStep float64 `yaml:"grid_step"`

	// Headroom is the fraction of extra radial axis beyond the
	// largest failure rate (0.10 = 10%).
	Headroom float64 `yaml:"headroom"`

	// Title is drawn centered at the top of the canvas.
	Title string `yaml:"title"`

	// Caption is the attribution line at the bottom of the canvas.
	Caption string `yaml:"caption"`

	// LegendLabel captions the horizontal color-bar legend.
	LegendLabel string `yaml:"legend_label"`

	// TableHeader is the side table's header cell text.
	TableHeader string `yaml:"table_header"`
}

// DefaultStyle returns the stock report appearance.
func DefaultStyle() Style {
	return Style{
		Width:       3600,
		Height:      3000,
		DPI:         300,
		Background:  "#f0f0f0",
		Palette:     []string{"#F8B195", "#F67280", "#C06C84", "#6C5B7B"},
		BarAlpha:    0.8,
		BarWidth:    0.5,
		GridStep:    20,
		Headroom:    0.10,
		Title:       "Security Report for Different Modules",
		Caption:     "Report generated by threatviz",
		LegendLabel: "Token Count (k)",
		TableHeader: "Threat",
	}
}

// LoadStyle reads YAML from r and layers it over DefaultStyle. Fields
// absent from the document keep their defaults. The result is validated
// before being returned.
func LoadStyle(r io.Reader) (Style, error) {
	s := DefaultStyle()
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Style{}, fmt.Errorf("report: parse style: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// Validate reports the first invalid field, if any.
func (s Style) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("report: style: canvas %dx%d is not positive", s.Width, s.Height)
	case s.DPI <= 0:
		return fmt.Errorf("report: style: dpi %v is not positive", s.DPI)
	case s.BarAlpha < 0 || s.BarAlpha > 1:
		return fmt.Errorf("report: style: bar_alpha %v outside [0, 1]", s.BarAlpha)
	case s.BarWidth <= 0 || s.BarWidth > 2*math.Pi:
		return fmt.Errorf("report: style: bar_width %v outside (0, 2pi]", s.BarWidth)
	case s.GridStep <= 0:
		return fmt.Errorf("report: style: grid_step %v is not positive", s.GridStep)
	case s.Headroom < 0:
		return fmt.Errorf("report: style: headroom %v is negative", s.Headroom)
	}
	if len(s.Palette) != 4 {
		return fmt.Errorf("report: style: palette has %d stops, want 4", len(s.Palette))
	}
	for _, h := range append([]string{s.Background}, s.Palette...) {
		if _, err := parseHexColor(h); err != nil {
			return fmt.Errorf("report: style: %w", err)
		}
	}
	return nil
}
