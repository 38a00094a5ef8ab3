// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-plotlayout/axis"
	"github.com/aclements/go-plotlayout/geom"
	"github.com/aclements/go-plotlayout/locate"
	"github.com/aclements/go-plotlayout/plot"
	svg "github.com/ajstarks/svgo"
)

// Wireframe styles.
const (
	panelStyle  = "fill:#eee;stroke:#888"
	boxStyle    = "fill:none;stroke:#bbb;stroke-dasharray:2,2"
	tickStyle   = "stroke:#888"
	markStyle   = "fill:#4477aa;fill-opacity:0.6"
	strokeStyle = "fill:none;stroke:#4477aa;stroke-width:2"
)

// writeWireframe draws the boxes of l to w as SVG: panels with their
// data targets, axis ticks and labels, titles, strips and legends.
func writeWireframe(w io.Writer, l *plot.Layout) error {
	c := svg.New(w)
	c.Start(px(l.Bounds.W), px(l.Bounds.H), `font-family="sans-serif"`)

	tc := locate.NewCollector()
	for i, pn := range l.Panels {
		rect(c, pn.Bounds, panelStyle)
		for li := range pn.Layers {
			tc.Reset()
			if err := l.Targets(i, li, tc); err != nil {
				return fmt.Errorf("panel %d layer %d: %w", i, li, err)
			}
			for _, t := range tc.Targets() {
				drawTarget(c, &t)
			}
		}
		if pn.XAxis != nil {
			drawAxis(c, pn.XAxis, geom.Point{X: pn.Bounds.Left(), Y: pn.Bounds.Bottom()})
		}
		if pn.YAxis != nil {
			drawAxis(c, pn.YAxis, pn.Bounds.Origin())
		}
	}

	for _, lb := range []*plot.Label{l.Title, l.XTitle, l.YTitle} {
		if lb != nil {
			drawLabel(c, lb, "")
		}
	}
	for i := range l.Strips {
		drawLabel(c, &l.Strips[i], "fill:#ddd")
	}

	for _, b := range l.Legend.Boxes {
		r := b.Bounds()
		rect(c, r, boxStyle)
		if b.Box.Title != "" {
			c.Text(px(r.X+b.Box.LabelGap), px(r.Y+b.Box.LabelGap), b.Box.Title, `dominant-baseline="hanging" font-size="11"`)
		}
		for k, key := range b.Box.Keys {
			key = key.Translate(b.Location)
			rect(c, key, markStyle)
			c.Text(px(key.Right()+b.Box.LabelGap), px(key.Center().Y), b.Box.Labels[k], `dominant-baseline="middle" font-size="11"`)
		}
	}

	c.End()
	return nil
}

func px(v float64) int {
	return int(math.Round(v))
}

func rect(c *svg.SVG, r geom.Rect, style string) {
	c.Rect(px(r.X), px(r.Y), px(r.W), px(r.H), style)
}

func drawTarget(c *svg.SVG, t *locate.Target) {
	switch t.Shape {
	case locate.PointShape:
		c.Circle(px(t.Point.X), px(t.Point.Y), px(t.Radius), markStyle)
	case locate.RectShape:
		rect(c, t.Rect, markStyle)
	case locate.PathShape, locate.PolygonShape:
		xs, ys := make([]int, len(t.Points)), make([]int, len(t.Points))
		for i, p := range t.Points {
			xs[i], ys[i] = px(p.X), px(p.Y)
		}
		if t.Shape == locate.PathShape {
			c.Polyline(xs, ys, strokeStyle)
		} else {
			c.Polygon(xs, ys, markStyle)
		}
	}
}

// drawAxis draws the ticks and labels of info, whose axis line starts
// at origin.
func drawAxis(c *svg.SVG, info *axis.Info, origin geom.Point) {
	horiz := info.Orientation.IsHorizontal()
	// Ticks point away from the panel.
	dir := 1.0
	if info.Orientation == axis.Left || info.Orientation == axis.Top {
		dir = -1
	}
	size := fmt.Sprintf(`font-size="%g"`, info.FontSize)
	for i, tp := range info.TickPositions {
		var a, b, at geom.Point
		if horiz {
			a = geom.Point{X: origin.X + tp, Y: origin.Y}
			b = geom.Point{X: a.X, Y: a.Y + dir*info.TickLength}
			at = geom.Point{X: a.X, Y: origin.Y + labelEdge(info.LabelBounds.Top(), info.LabelBounds.Bottom(), dir)}
		} else {
			a = geom.Point{X: origin.X, Y: origin.Y + tp}
			b = geom.Point{X: a.X + dir*info.TickLength, Y: a.Y}
			at = geom.Point{X: origin.X + labelEdge(info.LabelBounds.Left(), info.LabelBounds.Right(), dir), Y: a.Y}
		}
		c.Line(px(a.X), px(a.Y), px(b.X), px(b.Y), tickStyle)

		at = at.Add(info.LabelOffsets[i])
		attrs := []string{size, anchorAttr(info.HAnchor), baselineAttr(info.VAnchor)}
		if info.LabelRotation != 0 {
			attrs = append(attrs, fmt.Sprintf(`transform="rotate(%g %d %d)"`, info.LabelRotation, px(at.X), px(at.Y)))
		}
		c.Text(px(at.X), px(at.Y), info.Breaks.Labels[i], attrs...)
	}
}

// labelEdge returns the edge of the label bounds nearest the axis
// line.
func labelEdge(lo, hi, dir float64) float64 {
	if dir > 0 {
		return lo
	}
	return hi
}

func anchorAttr(a axis.Anchor) string {
	switch a {
	case axis.AnchorStart:
		return `text-anchor="start"`
	case axis.AnchorEnd:
		return `text-anchor="end"`
	}
	return `text-anchor="middle"`
}

func baselineAttr(a axis.Anchor) string {
	switch a {
	case axis.AnchorStart:
		return `dominant-baseline="hanging"`
	case axis.AnchorEnd:
		return `dominant-baseline="text-after-edge"`
	}
	return `dominant-baseline="middle"`
}

func drawLabel(c *svg.SVG, lb *plot.Label, fill string) {
	if fill != "" {
		rect(c, lb.Bounds, fill)
	}
	ctr := lb.Bounds.Center()
	attrs := []string{`text-anchor="middle"`, `dominant-baseline="middle"`}
	if lb.Rotation != 0 {
		attrs = append(attrs, fmt.Sprintf(`transform="rotate(%g %d %d)"`, lb.Rotation, px(ctr.X), px(ctr.Y)))
	}
	c.Text(px(ctr.X), px(ctr.Y), lb.Text, attrs...)
}
