// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package legend sizes legend boxes and places the block of legends
// around or over the plot panels.
package legend

import (
	"math"

	"github.com/aclements/go-plotlayout/geom"
	"github.com/aclements/go-plotlayout/internal/text"
	"github.com/aclements/go-plotlayout/theme"
)

// BoxInfo is the measured layout of one legend: a title above a
// column of keys, each followed by its label.
type BoxInfo struct {
	Title  string
	Labels []string

	// W and H are the size of the box.
	W, H float64

	// Keys are the bounds of each key swatch, relative to the box
	// origin. Each label starts LabelGap to the right of its key and
	// is vertically centered on it.
	Keys     []geom.Rect
	LabelGap float64
}

// NewBox measures a legend with the given title and entry labels.
func NewBox(title string, labels []string, th *theme.Theme) *BoxInfo {
	b := &BoxInfo{Title: title, Labels: labels, LabelGap: th.LegendMargin}
	m := th.LegendMargin
	y, w := m, 0.0
	if title != "" {
		tm := text.Measure(th.LegendSize, title)
		w = tm.Width
		y += tm.Height() + m
	}
	for _, label := range labels {
		lm := text.Measure(th.LegendSize, label)
		row := math.Max(th.KeySize, lm.Height())
		b.Keys = append(b.Keys, geom.Rect{X: m, Y: y + (row-th.KeySize)/2, W: th.KeySize, H: th.KeySize})
		w = math.Max(w, th.KeySize+b.LabelGap+lm.Width)
		y += row
	}
	b.W, b.H = w+2*m, y+m
	return b
}

// BoxWithLocation is a legend box placed at Location, its top-left
// corner.
type BoxWithLocation struct {
	Box      *BoxInfo
	Location geom.Point
}

// Bounds returns the rectangle occupied by the box.
func (b BoxWithLocation) Bounds() geom.Rect {
	return geom.Rect{X: b.Location.X, Y: b.Location.Y, W: b.Box.W, H: b.Box.H}
}

// BlockInfo is a group of legend boxes laid out together.
type BlockInfo struct {
	Boxes []BoxWithLocation
}

// Bounds returns the union of the bounds of every box in the block.
func (b BlockInfo) Bounds() geom.Rect {
	if len(b.Boxes) == 0 {
		return geom.Rect{}
	}
	r := b.Boxes[0].Bounds()
	for _, box := range b.Boxes[1:] {
		r = r.Union(box.Bounds())
	}
	return r
}

// Size returns the width and height of the block.
func (b BlockInfo) Size() (w, h float64) {
	r := b.Bounds()
	return r.W, r.H
}

// MoveAll returns a copy of b with every box displaced by delta.
func (b BlockInfo) MoveAll(delta geom.Point) BlockInfo {
	out := BlockInfo{Boxes: make([]BoxWithLocation, len(b.Boxes))}
	for i, box := range b.Boxes {
		out.Boxes[i] = BoxWithLocation{box.Box, box.Location.Add(delta)}
	}
	return out
}

// Arrange lays out boxes in a block with its origin at 0. Legends at
// the top or bottom of a plot run left to right, and others top to
// bottom, separated by spacing.
func Arrange(boxes []*BoxInfo, side theme.Side, spacing float64) BlockInfo {
	var block BlockInfo
	horizontal := side == theme.Top || side == theme.Bottom
	var at geom.Point
	for _, b := range boxes {
		block.Boxes = append(block.Boxes, BoxWithLocation{b, at})
		if horizontal {
			at.X += b.W + spacing
		} else {
			at.Y += b.H + spacing
		}
	}
	return block
}

// Layout places block, arranged at the origin, according to the
// theme's legend position. outer bounds the whole plot and inner the
// union of the panel bounds, which excludes axes, strips and titles.
// Side legends are centered on inner but never start above outer.
func Layout(outer, inner geom.Rect, th *theme.Theme, block BlockInfo) BlockInfo {
	w, h := block.Size()
	center := inner.Center()
	sideTop := math.Max(outer.Top(), center.Y-h/2)

	var origin geom.Point
	switch th.Legend.Side {
	case theme.Left:
		origin = geom.Point{X: outer.Left(), Y: sideTop}
	case theme.Right:
		origin = geom.Point{X: outer.Right() - w, Y: sideTop}
	case theme.Top:
		origin = geom.Point{X: center.X - w/2, Y: outer.Top()}
	case theme.Bottom:
		origin = geom.Point{X: center.X - w/2, Y: outer.Bottom() - h}
	case theme.None:
		return BlockInfo{}
	default:
		origin = OverlayOrigin(inner, w, h, th.Legend, th.LegendJustify)
	}
	return block.MoveAll(origin)
}

// OverlayOrigin returns the top-left corner of a w×h block overlaid on
// inner. The justification point of the block, given as fractions of
// its size from the left and bottom, lands on the position point.
func OverlayOrigin(inner geom.Rect, w, h float64, pos theme.LegendPosition, justify [2]float64) geom.Point {
	x := inner.X + pos.X*inner.W - justify[0]*w
	y := inner.Y + (1-pos.Y)*inner.H - (1-justify[1])*h
	return geom.Point{X: x, Y: y}
}

// Reserve returns the space a block at side takes from the plot
// bounds, including the margin that separates it from the panels.
// Overlaid and hidden legends take none.
func Reserve(side theme.Side, block BlockInfo, margin float64) (w, h float64) {
	if len(block.Boxes) == 0 {
		return 0, 0
	}
	bw, bh := block.Size()
	switch side {
	case theme.Left, theme.Right:
		return bw + margin, 0
	case theme.Top, theme.Bottom:
		return 0, bh + margin
	}
	return 0, 0
}
