// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot lays out a complete plot: it resolves the domains of
// every panel, lays out their axes, strips and titles in a grid, and
// places the legends.
//
// Layout is a pure computation over a Plot. Rendering the result is up
// to the caller.
package plot

import (
	"fmt"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotlayout/aes"
	"github.com/aclements/go-plotlayout/axis"
	"github.com/aclements/go-plotlayout/domain"
	"github.com/aclements/go-plotlayout/facet"
	"github.com/aclements/go-plotlayout/geom"
	"github.com/aclements/go-plotlayout/layer"
	"github.com/aclements/go-plotlayout/legend"
	"github.com/aclements/go-plotlayout/scale"
	"github.com/aclements/go-plotlayout/theme"
	"github.com/charmbracelet/log"
)

// Warning logs non-fatal oddities found during layout.
var Warning = log.NewWithOptions(os.Stderr, log.Options{Prefix: "plot"})

// A Plot is the declarative description of one plot.
type Plot struct {
	Title string

	// Data is the default data of layers that have none.
	Data *table.Table

	Layers []*layer.Layer

	// X and Y are the positional scales. nil means a continuous
	// identity scale.
	X, Y *scale.Scale

	// Facets splits the plot into panels. nil means one panel.
	Facets *facet.Facets

	// Theme holds the layout metrics. nil means theme.Default().
	Theme *theme.Theme
}

func (p *Plot) theme() *theme.Theme {
	if p.Theme == nil {
		return theme.Default()
	}
	return p.Theme
}

// A Label is a piece of text placed by the layout.
type Label struct {
	Text   string
	Bounds geom.Rect
	// Rotation is in degrees; -90 reads bottom to top.
	Rotation float64
}

// A Panel is the layout of one tile.
type Panel struct {
	Tile    facet.Tile
	Bounds  geom.Rect
	Domains domain.TileDomains

	// XAxis runs along the bottom edge of Bounds from its left end,
	// and YAxis along the left edge from its top end. Either is nil
	// if the panel does not show it.
	XAxis, YAxis *axis.Info

	// Layers are the layers of the panel, with positional columns in
	// the transformed domain.
	Layers []*layer.Layer
}

// A Layout is a plot laid out at a particular size.
type Layout struct {
	// Bounds is the whole plot, with its origin at 0.
	Bounds geom.Rect

	Panels []Panel

	Title, XTitle, YTitle *Label
	Strips                []Label

	Legend legend.BlockInfo

	// X and Y are the positional scales with discrete levels
	// resolved from the data.
	X, Y *scale.Scale
}

// Project maps (x, y) in the transformed domain of panel i to plot
// coordinates.
func (l *Layout) Project(i int, x, y float64) geom.Point {
	p := &l.Panels[i]
	dx, dy := p.Domains.X, p.Domains.Y
	fx := (x - dx.Lo) / dx.Len()
	fy := (y - dy.Lo) / dy.Len()
	return geom.Point{
		X: p.Bounds.X + fx*p.Bounds.W,
		Y: p.Bounds.Y + (1-fy)*p.Bounds.H,
	}
}

// Layout lays out p in a w×h rectangle.
func (p *Plot) Layout(w, h float64) (*Layout, error) {
	if !(w > 0 && h > 0) {
		return nil, fmt.Errorf("plot size %v×%v must be positive", w, h)
	}
	th := p.theme()

	xs, err := p.withLevels(p.X, aes.AffectsScaleX)
	if err != nil {
		return nil, err
	}
	ys, err := p.withLevels(p.Y, aes.AffectsScaleY)
	if err != nil {
		return nil, err
	}
	axes := []axisScale{{"x", xs, aes.AffectsScaleX}, {"y", ys, aes.AffectsScaleY}}
	layers := make([]*layer.Layer, len(p.Layers))
	for i, l := range p.Layers {
		if layers[i], err = p.transformLayer(l, axes); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}

	facets, err := p.facets()
	if err != nil {
		return nil, err
	}
	byTile := tileLayers(layers, facets)
	domains, err := domain.Resolve(byTile, xs, ys, facets)
	if err != nil {
		return nil, err
	}

	boxes, err := p.legendBoxes(th)
	if err != nil {
		return nil, err
	}
	block := legend.Arrange(boxes, th.Legend.Side, th.LegendSpacing)

	bounds := geom.Rect{W: w, H: h}
	outer := bounds.Inset(th.PlotMargin)
	inner := outer
	lw, lh := legend.Reserve(th.Legend.Side, block, th.LegendMargin)
	switch th.Legend.Side {
	case theme.Left:
		inner.X += lw
		inner.W -= lw
	case theme.Right:
		inner.W -= lw
	case theme.Top:
		inner.Y += lh
		inner.H -= lh
	case theme.Bottom:
		inner.H -= lh
	}
	if inner.W <= 0 || inner.H <= 0 {
		Warning.Warn("no room for panels", "width", w, "height", h)
	}

	g := newPlotGrid(p.Title, xs, ys, facets, domains, th)
	g.layout(inner, outer)

	res := &Layout{Bounds: bounds, X: xs, Y: ys}
	g.collect(res, inner)
	for i := range res.Panels {
		res.Panels[i].Layers = byTile[i]
	}

	var panelArea geom.Rect
	for i, pn := range res.Panels {
		if i == 0 {
			panelArea = pn.Bounds
		} else {
			panelArea = panelArea.Union(pn.Bounds)
		}
	}
	// Legends center on the data area.
	res.Legend = legend.Layout(outer, panelArea, th, block)
	return res, nil
}

// facets returns p's facets with levels filled in from the data.
func (p *Plot) facets() (*facet.Facets, error) {
	if p.Facets == nil {
		return &facet.Facets{}, nil
	}
	data := p.Data
	if data == nil && len(p.Layers) > 0 {
		data = p.Layers[0].Data
	}
	f, err := p.Facets.WithLevelsFrom(data)
	if err != nil {
		return nil, fmt.Errorf("facets: %w", err)
	}
	return f, nil
}

// legendAes are the aesthetics that get a legend when mapped to a
// column, in legend order.
var legendAes = []aes.Aes{aes.Color, aes.Fill, aes.Shape, aes.Size, aes.Alpha}

// legendBoxes returns one legend box per distinct (aesthetic, column)
// mapping among p's layers, listing the column's levels.
func (p *Plot) legendBoxes(th *theme.Theme) ([]*legend.BoxInfo, error) {
	if th.Legend.Side == theme.None {
		return nil, nil
	}
	type key struct {
		a   aes.Aes
		col string
	}
	var boxes []*legend.BoxInfo
	seen := make(map[key]bool)
	for _, a := range legendAes {
		for i, l := range p.Layers {
			col, ok := l.Binding.Columns[a]
			if !ok || seen[key{a, col}] {
				continue
			}
			seen[key{a, col}] = true
			levels, err := facet.Levels(p.dataOf(l), col)
			if err != nil {
				return nil, fmt.Errorf("layer %d: %s legend: %w", i, a, err)
			}
			boxes = append(boxes, legend.NewBox(col, levels, th))
		}
	}
	return boxes, nil
}
