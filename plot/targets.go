// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-plotlayout/aes"
	"github.com/aclements/go-plotlayout/domain"
	"github.com/aclements/go-plotlayout/geom"
	"github.com/aclements/go-plotlayout/layer"
	"github.com/aclements/go-plotlayout/locate"
	"github.com/aclements/go-plotlayout/pos"
	"github.com/aclements/go-plotlayout/theme"
)

// pointRadius is the hit radius of point targets, in pixels.
const pointRadius = 3

// Targets registers hit-test targets in plot coordinates for layer li
// of panel i. Path-like layers become one path in drawing order. Bars,
// tiles and rectangles become one rectangle per row, sized by their
// width and height aesthetics. Every other layer with x and y
// positions becomes one point per row. Rows with non-finite positions
// are skipped.
func (l *Layout) Targets(i, li int, c *locate.Collector) error {
	ly := l.Panels[i].Layers[li]
	as, err := domain.DryRun(ly)
	if err != nil {
		return err
	}
	ctx := pos.NewContext(as)
	adj := ly.Adjustment().Build(as, ctx)
	at := func(row int, x, y float64) (geom.Point, bool) {
		v := adj.Translate(geom.Point{X: x, Y: y}, as.At(row), ctx)
		if !finite(v.X) || !finite(v.Y) {
			return geom.Point{}, false
		}
		return l.Project(i, v.X, v.Y), true
	}
	xs, ys := as.Numeric(aes.X), as.Numeric(aes.Y)

	switch ly.Kind {
	case layer.Path, layer.Line, layer.Step, layer.Area, layer.Density:
		if xs == nil || ys == nil {
			return nil
		}
		rows := make([]int, 0, as.Len())
		for row := 0; row < as.Len(); row++ {
			rows = append(rows, row)
		}
		if ly.Kind != layer.Path {
			sort.SliceStable(rows, func(a, b int) bool { return xs[rows[a]] < xs[rows[b]] })
		}
		var pts []geom.Point
		var global []int
		for _, row := range rows {
			if p, ok := at(row, xs[row], ys[row]); ok {
				pts = append(pts, p)
				global = append(global, row)
			}
		}
		if len(pts) > 0 {
			c.AddPath(pts, func(k int) int { return global[k] }, locate.TooltipParams{}, locate.HorizontalTip)
		}

	case layer.Rect:
		x0, x1 := as.Numeric(aes.XMin), as.Numeric(aes.XMax)
		y0, y1 := as.Numeric(aes.YMin), as.Numeric(aes.YMax)
		if x0 == nil || x1 == nil || y0 == nil || y1 == nil {
			return nil
		}
		for row := 0; row < as.Len(); row++ {
			l.addRect(c, at, row, x0[row], y0[row], x1[row], y1[row])
		}

	case layer.Bar, layer.Histogram, layer.Tile:
		if xs == nil || ys == nil {
			return nil
		}
		ws, hs := as.Numeric(aes.Width), as.Numeric(aes.Height)
		if len(ws) < as.Len() || (ly.Kind == layer.Tile && len(hs) < as.Len()) {
			return fmt.Errorf("%v layer: %w", ly.Kind, aes.ErrLength)
		}
		resX, resY := ctx.Resolution(aes.X), ctx.Resolution(aes.Y)
		for row := 0; row < as.Len(); row++ {
			hw := resX * ws[row] / 2
			if ly.Kind == layer.Tile {
				hh := resY * hs[row] / 2
				l.addRect(c, at, row, xs[row]-hw, ys[row]-hh, xs[row]+hw, ys[row]+hh)
			} else {
				l.addRect(c, at, row, xs[row]-hw, 0, xs[row]+hw, ys[row])
			}
		}

	default:
		if xs == nil || ys == nil {
			return nil
		}
		for row := 0; row < as.Len(); row++ {
			if p, ok := at(row, xs[row], ys[row]); ok {
				c.AddPoint(row, p, pointRadius, locate.TooltipParams{}, locate.CursorTip)
			}
		}
	}
	return nil
}

func (l *Layout) addRect(c *locate.Collector, at func(int, float64, float64) (geom.Point, bool), row int, x0, y0, x1, y1 float64) {
	a, ok1 := at(row, x0, y0)
	b, ok2 := at(row, x1, y1)
	if ok1 && ok2 {
		c.AddRectangle(row, geom.RectFromPoints(a, b), locate.TooltipParams{}, locate.VerticalTip)
	}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Index returns a locate.Index over every panel of l with one locator
// per layer. Tolerances come from th; nil means theme.Default().
func (l *Layout) Index(s locate.Strategy, sp locate.Space, th *theme.Theme) (*locate.Index, error) {
	if th == nil {
		th = theme.Default()
	}
	ix := new(locate.Index)
	c := locate.NewCollector()
	for i, pn := range l.Panels {
		locs := make([]*locate.Locator, len(pn.Layers))
		for li := range pn.Layers {
			c.Reset()
			if err := l.Targets(i, li, c); err != nil {
				return nil, err
			}
			loc := locate.NewLocator(c.Targets(), s, sp)
			loc.Tolerance = th.HoverTolerance
			loc.Cutoff = th.NearestCutoff
			locs[li] = loc
		}
		ix.Add(pn.Bounds, locs...)
	}
	return ix, nil
}
