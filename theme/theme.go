// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme defines the numeric layout metrics of a plot and
// loads them from configuration files.
package theme

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Theme holds every size, in pixels, that layout depends on.
type Theme struct {
	// Text sizes.
	AxisTextSize  float64 `toml:"axis_text_size" yaml:"axis_text_size"`
	SmallTextSize float64 `toml:"small_text_size" yaml:"small_text_size"`
	AxisTitleSize float64 `toml:"axis_title_size" yaml:"axis_title_size"`
	TitleSize     float64 `toml:"title_size" yaml:"title_size"`
	StripTextSize float64 `toml:"strip_text_size" yaml:"strip_text_size"`
	LegendSize    float64 `toml:"legend_text_size" yaml:"legend_text_size"`

	// Axes.
	TickLength  float64 `toml:"tick_length" yaml:"tick_length"`
	TickMargin  float64 `toml:"tick_margin" yaml:"tick_margin"`
	HBreakSpace float64 `toml:"h_break_spacing" yaml:"h_break_spacing"`
	VBreakSpace float64 `toml:"v_break_spacing" yaml:"v_break_spacing"`

	// Panels.
	PlotMargin   float64 `toml:"plot_margin" yaml:"plot_margin"`
	PanelSpacing float64 `toml:"panel_spacing" yaml:"panel_spacing"`
	StripPadding float64 `toml:"strip_padding" yaml:"strip_padding"`

	// Legends.
	Legend        LegendPosition `toml:"legend_position" yaml:"legend_position"`
	LegendJustify [2]float64     `toml:"legend_justification" yaml:"legend_justification"`
	LegendSpacing float64        `toml:"legend_spacing" yaml:"legend_spacing"`
	LegendMargin  float64        `toml:"legend_margin" yaml:"legend_margin"`
	KeySize       float64        `toml:"legend_key_size" yaml:"legend_key_size"`

	// Interaction.
	HoverTolerance float64 `toml:"hover_tolerance" yaml:"hover_tolerance"`
	NearestCutoff  float64 `toml:"nearest_cutoff" yaml:"nearest_cutoff"`
}

// Default returns the default theme.
func Default() *Theme {
	return &Theme{
		AxisTextSize:  11,
		SmallTextSize: 9,
		AxisTitleSize: 12,
		TitleSize:     15,
		StripTextSize: 11,
		LegendSize:    11,

		TickLength:  4,
		TickMargin:  3,
		HBreakSpace: 100,
		VBreakSpace: 50,

		PlotMargin:   10,
		PanelSpacing: 10,
		StripPadding: 3,

		Legend:        LegendPosition{Side: Right},
		LegendJustify: [2]float64{0.5, 0.5},
		LegendSpacing: 10,
		LegendMargin:  5,
		KeySize:       17,

		HoverTolerance: 5,
	}
}

// Load reads a theme from path on top of Default. The format is TOML
// or YAML according to the file extension.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, t)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, t)
	default:
		return nil, fmt.Errorf("theme %s: unknown format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

// Validate checks that t's metrics make sense.
func (t *Theme) Validate() error {
	var errs []error
	positive := map[string]float64{
		"axis_text_size":   t.AxisTextSize,
		"small_text_size":  t.SmallTextSize,
		"axis_title_size":  t.AxisTitleSize,
		"title_size":       t.TitleSize,
		"strip_text_size":  t.StripTextSize,
		"legend_text_size": t.LegendSize,
		"h_break_spacing":  t.HBreakSpace,
		"v_break_spacing":  t.VBreakSpace,
		"legend_key_size":  t.KeySize,
	}
	nonNegative := map[string]float64{
		"tick_length":     t.TickLength,
		"tick_margin":     t.TickMargin,
		"plot_margin":     t.PlotMargin,
		"panel_spacing":   t.PanelSpacing,
		"strip_padding":   t.StripPadding,
		"legend_spacing":  t.LegendSpacing,
		"legend_margin":   t.LegendMargin,
		"hover_tolerance": t.HoverTolerance,
		"nearest_cutoff":  t.NearestCutoff,
	}
	for _, name := range slices.Sorted(maps.Keys(positive)) {
		if positive[name] <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, positive[name]))
		}
	}
	for _, name := range slices.Sorted(maps.Keys(nonNegative)) {
		if nonNegative[name] < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, nonNegative[name]))
		}
	}
	for _, j := range t.LegendJustify {
		if j < 0 || j > 1 {
			errs = append(errs, fmt.Errorf("legend_justification %v not in [0, 1]", t.LegendJustify))
			break
		}
	}
	if t.SmallTextSize > t.AxisTextSize {
		errs = append(errs, fmt.Errorf("small_text_size %v exceeds axis_text_size %v", t.SmallTextSize, t.AxisTextSize))
	}
	return errors.Join(errs...)
}
