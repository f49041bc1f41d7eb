package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStyle_IsValid(t *testing.T) {
	require.NoError(t, DefaultStyle().Validate())
}

func TestLoadStyle_EmptyDocumentKeepsDefaults(t *testing.T) {
	s, err := LoadStyle(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultStyle(), s)
}

func TestLoadStyle_OverridesSubset(t *testing.T) {
	doc := `
width: 1200
height: 1000
title: "Quarterly Threat Review"
palette: ["#111111", "#222222", "#333333", "#444444"]
`
	s, err := LoadStyle(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 1200, s.Width)
	assert.Equal(t, 1000, s.Height)
	assert.Equal(t, "Quarterly Threat Review", s.Title)
	assert.Equal(t, []string{"#111111", "#222222", "#333333", "#444444"}, s.Palette)

	// Untouched fields keep their defaults.
	def := DefaultStyle()
	assert.Equal(t, def.DPI, s.DPI)
	assert.Equal(t, def.GridStep, s.GridStep)
	assert.Equal(t, def.LegendLabel, s.LegendLabel)
}

func TestLoadStyle_Malformed(t *testing.T) {
	_, err := LoadStyle(strings.NewReader("width: [not a number"))
	assert.Error(t, err)
}

func TestLoadStyle_InvalidResult(t *testing.T) {
	_, err := LoadStyle(strings.NewReader("dpi: -1"))
	assert.Error(t, err)
}

func TestStyle_Validate(t *testing.T) {
	mutate := func(f func(*Style)) Style {
		s := DefaultStyle()
		f(&s)
		return s
	}

	tests := []struct {
		name  string
		style Style
	}{
		{"zero width", mutate(func(s *Style) { s.Width = 0 })},
		{"negative height", mutate(func(s *Style) { s.Height = -1 })},
		{"zero dpi", mutate(func(s *Style) { s.DPI = 0 })},
		{"alpha above one", mutate(func(s *Style) { s.BarAlpha = 1.5 })},
		{"zero bar width", mutate(func(s *Style) { s.BarWidth = 0 })},
		{"zero grid step", mutate(func(s *Style) { s.GridStep = 0 })},
		{"negative headroom", mutate(func(s *Style) { s.Headroom = -0.1 })},
		{"short palette", mutate(func(s *Style) { s.Palette = s.Palette[:3] })},
		{"bad palette hex", mutate(func(s *Style) { s.Palette[0] = "red" })},
		{"bad background", mutate(func(s *Style) { s.Background = "zzz" })},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.style.Validate())
		})
	}
}
