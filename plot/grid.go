// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/aclements/go-gg/gg/layout"
	"github.com/aclements/go-plotlayout/axis"
	"github.com/aclements/go-plotlayout/domain"
	"github.com/aclements/go-plotlayout/facet"
	"github.com/aclements/go-plotlayout/geom"
	"github.com/aclements/go-plotlayout/internal/text"
	"github.com/aclements/go-plotlayout/scale"
	"github.com/aclements/go-plotlayout/theme"
)

// The plot is laid out as a layout.Grid. Each tile column c
// contributes a Y axis column and a panel column, separated from the
// next tile column by a spacing column. Each tile row contributes an
// optional strip row, a panel row and an X axis row, separated from
// the next tile row by a spacing row:
//
//	          +-----------------------------------+
//	          | Title                             |
//	          +--------+---------+---+-------+----+
//	          |        | Strip   |   | ...   |    |
//	+---------+--------+---------+---+-------+----+
//	| YTitle  | YAxis  | Panel   |   | ...   | S  |
//	|         |        +---------+   |       |    |
//	|         |        | XAxis   |   |       |    |
//	+---------+--------+---------+---+-------+----+
//	          |        | XTitle                   |
//	          +--------+--------------------------+
//
// S is the strip of a grid facet's Y levels. Every grid column and
// row holds at least one fixed-size element, so only panel columns
// and rows flex.

// maxPasses bounds the number of times axes are laid out against the
// panel sizes they produce.
const maxPasses = 4

// eltPanel is the data area of one tile.
type eltPanel struct {
	layout.Leaf
	tile facet.Tile
}

func (e *eltPanel) SizeHint() (w, h float64, flexw, flexh bool) {
	return 0, 0, true, true
}

// eltAxis is the ticks and tick labels of one panel edge.
type eltAxis struct {
	layout.Leaf
	panel    *eltPanel
	layouter *axis.Layouter // nil if hidden
	info     *axis.Info
}

func (e *eltAxis) thickness() float64 {
	if e.info == nil {
		return 0
	}
	return e.info.Thickness()
}

// SizeHint sizes e as an X axis, which is fixed in height even while
// hidden.
func (e *eltAxis) SizeHint() (w, h float64, flexw, flexh bool) {
	return 0, e.thickness(), true, false
}

// eltVAxis is an eltAxis in a Y axis column.
type eltVAxis struct {
	*eltAxis
}

func (e eltVAxis) SizeHint() (w, h float64, flexw, flexh bool) {
	return e.thickness(), 0, false, true
}

// relayout lays out the axis against the current size of its panel.
// maxBounds limits the tick labels, relative to the panel origin.
func (e *eltAxis) relayout(maxBounds geom.Rect, maxLabelWidth float64) {
	if e.layouter == nil {
		return
	}
	_, _, w, h := e.panel.Layout()
	var info axis.Info
	if e.layouter.Orientation().IsHorizontal() {
		info = e.layouter.Layout(w, &maxBounds)
	} else {
		info = e.layouter.Layout(h, &geom.Rect{X: -maxLabelWidth, W: maxLabelWidth, H: h})
	}
	e.info = &info
}

// eltText is a title or strip label.
type eltText struct {
	layout.Leaf
	text     string
	size     float64
	pad      float64
	vertical bool
}

func (e *eltText) SizeHint() (w, h float64, flexw, flexh bool) {
	if e.text == "" {
		return 0, 0, !e.vertical, e.vertical
	}
	d := text.Measure(e.size, e.text).Height() + 2*e.pad
	if e.vertical {
		return d, 0, false, true
	}
	return 0, d, true, false
}

// eltPadding separates tile columns or rows.
type eltPadding struct {
	layout.Leaf
	size     float64
	vertical bool // separates columns
}

func (e *eltPadding) SizeHint() (w, h float64, flexw, flexh bool) {
	if e.vertical {
		return e.size, 0, false, true
	}
	return 0, e.size, true, false
}

// plotGrid is the grid of plot elements and where each tile's
// elements are.
type plotGrid struct {
	grid  layout.Grid
	th    *theme.Theme
	title *eltText

	xTitle, yTitle *eltText
	strips         []*eltText
	stripRotated   []bool

	panels       []*eltPanel
	xAxes, yAxes []*eltAxis
	domains      []domain.TileDomains
}

func newPlotGrid(title string, xs, ys *scale.Scale, f *facet.Facets, domains []domain.TileDomains, th *theme.Theme) *plotGrid {
	g := &plotGrid{th: th, domains: domains}
	cols, rows := f.Dims()
	tiles := f.Tiles()

	// Assign grid columns.
	n := 0
	next := func() int { n++; return n - 1 }
	yTitleCol := -1
	if scaleName(ys) != "" {
		yTitleCol = next()
	}
	yAxisCol, panelCol, gapCol := make([]int, cols), make([]int, cols), make([]int, cols)
	for c := range cols {
		yAxisCol[c], panelCol[c] = next(), next()
		gapCol[c] = -1
		if c < cols-1 {
			gapCol[c] = next()
		}
	}
	rightStripCol := -1
	if f.IsGrid() && f.YVar != "" {
		rightStripCol = next()
	}

	// Assign grid rows.
	n = 0
	titleRow := -1
	if title != "" {
		titleRow = next()
	}
	stripRow, panelRow, xAxisRow, gapRow := make([]int, rows), make([]int, rows), make([]int, rows), make([]int, rows)
	for r := range rows {
		stripRow[r] = -1
		if f.IsWrap() || (f.IsGrid() && f.XVar != "" && r == 0) {
			stripRow[r] = next()
		}
		panelRow[r], xAxisRow[r] = next(), next()
		gapRow[r] = -1
		if r < rows-1 {
			gapRow[r] = next()
		}
	}
	xTitleRow := -1
	if scaleName(xs) != "" {
		xTitleRow = next()
	}

	colSpan := panelCol[cols-1] - panelCol[0] + 1
	rowSpan := panelRow[rows-1] - panelRow[0] + 1
	if titleRow >= 0 {
		g.title = &eltText{text: title, size: th.TitleSize, pad: th.StripPadding}
		g.grid.Add(g.title, panelCol[0], titleRow, colSpan, 1)
	}
	if xTitleRow >= 0 {
		g.xTitle = &eltText{text: xs.Name, size: th.AxisTitleSize, pad: th.StripPadding}
		g.grid.Add(g.xTitle, panelCol[0], xTitleRow, colSpan, 1)
	}
	if yTitleCol >= 0 {
		g.yTitle = &eltText{text: ys.Name, size: th.AxisTitleSize, pad: th.StripPadding, vertical: true}
		g.grid.Add(g.yTitle, yTitleCol, panelRow[0], 1, rowSpan)
	}
	for c := range cols {
		if gapCol[c] >= 0 {
			g.grid.Add(&eltPadding{size: th.PanelSpacing, vertical: true}, gapCol[c], panelRow[0], 1, 1)
		}
	}
	for r := range rows {
		if gapRow[r] >= 0 {
			g.grid.Add(&eltPadding{size: th.PanelSpacing}, panelCol[0], gapRow[r], 1, 1)
		}
	}

	// Strips.
	addStrip := func(label string, x, y int, rotated bool) {
		s := &eltText{text: label, size: th.StripTextSize, pad: th.StripPadding, vertical: rotated}
		g.strips = append(g.strips, s)
		g.stripRotated = append(g.stripRotated, rotated)
		g.grid.Add(s, x, y, 1, 1)
	}
	switch {
	case f.IsWrap():
		for _, t := range tiles {
			addStrip(t.XLabel, panelCol[t.Col], stripRow[t.Row], false)
		}
	case f.IsGrid():
		if f.XVar != "" {
			for c, l := range f.XLevels {
				addStrip(l, panelCol[c], stripRow[0], false)
			}
		}
		if f.YVar != "" {
			for r, l := range f.YLevels {
				addStrip(l, rightStripCol, panelRow[r], true)
			}
		}
	}

	// Panels and axes.
	xProvider, yProvider := axis.ProviderFor(xs), axis.ProviderFor(ys)
	for i, t := range tiles {
		pe := &eltPanel{tile: t}
		g.panels = append(g.panels, pe)
		g.grid.Add(pe, panelCol[t.Col], panelRow[t.Row], 1, 1)

		xa := &eltAxis{panel: pe}
		if f.ShowXAxis(t) {
			xa.layouter = axis.NewLayouter(axis.Bottom, domains[i].X, xProvider, th)
		}
		g.xAxes = append(g.xAxes, xa)
		g.grid.Add(xa, panelCol[t.Col], xAxisRow[t.Row], 1, 1)

		ya := &eltAxis{panel: pe}
		if f.ShowYAxis(t) {
			ya.layouter = axis.NewLayouter(axis.Left, domains[i].Y, yProvider, th)
		}
		g.yAxes = append(g.yAxes, ya)
		g.grid.Add(eltVAxis{ya}, yAxisCol[t.Col], panelRow[t.Row], 1, 1)
	}
	return g
}

func scaleName(s *scale.Scale) string {
	if s == nil {
		return ""
	}
	return s.Name
}

// layout lays out the grid in inner. Axes depend on the size of their
// panels, which depends on the size of the axes, so this alternates
// between the two until the axis sizes settle.
func (g *plotGrid) layout(inner, outer geom.Rect) {
	maxLabelWidth := outer.W / 4
	for pass := 0; pass < maxPasses; pass++ {
		g.grid.SetLayout(0, 0, inner.W, inner.H)
		changed := false
		for _, a := range append(append([]*eltAxis(nil), g.xAxes...), g.yAxes...) {
			old := a.thickness()
			px, py, _, _ := a.panel.Layout()
			// Horizontal labels may reach the edges of the plot.
			maxBounds := geom.Rect{
				X: outer.X - (inner.X + px),
				Y: outer.Y - (inner.Y + py),
				W: outer.W,
				H: outer.H,
			}
			a.relayout(maxBounds, maxLabelWidth)
			if a.thickness() != old {
				changed = true
			}
		}
		if !changed {
			return
		}
	}
	Warning.Debug("axis layout did not settle", "passes", maxPasses)
}

// collect stores the laid out elements in l. Grid coordinates are
// relative to inner.
func (g *plotGrid) collect(l *Layout, inner geom.Rect) {
	rect := func(e layout.Element) geom.Rect {
		x, y, w, h := e.Layout()
		return geom.Rect{X: inner.X + x, Y: inner.Y + y, W: w, H: h}
	}
	label := func(e *eltText, rotation float64) *Label {
		if e == nil {
			return nil
		}
		return &Label{Text: e.text, Bounds: rect(e), Rotation: rotation}
	}
	l.Title = label(g.title, 0)
	l.XTitle = label(g.xTitle, 0)
	l.YTitle = label(g.yTitle, -90)
	for i, s := range g.strips {
		rot := 0.0
		if g.stripRotated[i] {
			rot = 90
		}
		l.Strips = append(l.Strips, *label(s, rot))
	}
	for i, pe := range g.panels {
		l.Panels = append(l.Panels, Panel{
			Tile:    pe.tile,
			Bounds:  rect(pe),
			Domains: g.domains[i],
			XAxis:   g.xAxes[i].info,
			YAxis:   g.yAxes[i].info,
		})
	}
}
