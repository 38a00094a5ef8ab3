// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package locate finds the rendered primitive under or nearest to a
// screen point, for tooltips and selection.
//
// A render pass registers every hit-testable primitive in a Collector.
// A Locator built from the collected targets then answers queries
// until the next render pass resets the collector.
package locate

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-plotlayout/aes"
	"github.com/aclements/go-plotlayout/geom"
)

// TipKind says how a tooltip is placed relative to its target.
type TipKind int

const (
	VerticalTip TipKind = iota
	HorizontalTip
	CursorTip
)

func (k TipKind) String() string {
	switch k {
	case VerticalTip:
		return "vertical"
	case HorizontalTip:
		return "horizontal"
	case CursorTip:
		return "cursor"
	}
	return fmt.Sprintf("TipKind(%d)", int(k))
}

// TooltipParams carries what a tooltip renderer needs about a target.
type TooltipParams struct {
	// Hints overrides the tooltip kind for individual aesthetics.
	Hints      map[aes.Aes]TipKind
	StemLength float64
	Fill       color.Color
	Markers    []color.Color
}

// Shape is the geometry of a target.
type Shape int

const (
	PointShape Shape = iota
	RectShape
	PathShape
	PolygonShape
)

func (s Shape) String() string {
	switch s {
	case PointShape:
		return "point"
	case RectShape:
		return "rect"
	case PathShape:
		return "path"
	case PolygonShape:
		return "polygon"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// A Target is one hit-testable primitive. Points and rectangles map to
// a single data row. Paths and polygons are one group of vertices, each
// mapped to a data row by LocalToGlobal.
type Target struct {
	Shape Shape

	// Index is the data row of a point or rectangle.
	Index int

	// Point and Radius describe a point target.
	Point  geom.Point
	Radius float64

	// Rect is the bounds of a rectangle target.
	Rect geom.Rect

	// Points are the vertices of a path or the ring of a polygon.
	Points        []geom.Point
	LocalToGlobal func(int) int

	Params TooltipParams
	Kind   TipKind
}

// row returns the data row of vertex i of a path or polygon.
func (t *Target) row(i int) int {
	if t.LocalToGlobal == nil {
		return i
	}
	return t.LocalToGlobal(i)
}

// A Collector accumulates the targets of one render pass. Collectors
// returned by Flip share the same buffer.
type Collector struct {
	buf     *[]Target
	flipped bool
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{buf: new([]Target)}
}

// Flip returns a view of c that swaps X and Y of everything it
// registers, for plots with transposed coordinates.
func (c *Collector) Flip() *Collector {
	return &Collector{c.buf, !c.flipped}
}

// Reset discards every collected target. Targets returned by earlier
// calls to Targets are not modified.
func (c *Collector) Reset() {
	*c.buf = nil
}

// Targets returns the collected targets in registration order.
func (c *Collector) Targets() []Target {
	return *c.buf
}

func (c *Collector) point(p geom.Point) geom.Point {
	if c.flipped {
		return p.Flip()
	}
	return p
}

func (c *Collector) points(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = c.point(p)
	}
	return out
}

func (c *Collector) add(t Target) {
	*c.buf = append(*c.buf, t)
}

// AddPoint registers a point of the given radius for data row index.
func (c *Collector) AddPoint(index int, p geom.Point, radius float64, params TooltipParams, kind TipKind) {
	c.add(Target{Shape: PointShape, Index: index, Point: c.point(p), Radius: radius, Params: params, Kind: kind})
}

// AddRectangle registers a rectangle for data row index.
func (c *Collector) AddRectangle(index int, r geom.Rect, params TooltipParams, kind TipKind) {
	if c.flipped {
		r = r.Flip()
	}
	c.add(Target{Shape: RectShape, Index: index, Rect: r, Params: params, Kind: kind})
}

// AddPath registers a polyline. localToGlobal maps a vertex index to
// its data row; nil means the identity.
func (c *Collector) AddPath(pts []geom.Point, localToGlobal func(int) int, params TooltipParams, kind TipKind) {
	if len(pts) == 0 {
		return
	}
	c.add(Target{Shape: PathShape, Points: c.points(pts), LocalToGlobal: localToGlobal, Params: params, Kind: kind})
}

// AddPolygon registers a closed ring. localToGlobal maps a vertex index
// to its data row; nil means the identity.
func (c *Collector) AddPolygon(ring []geom.Point, localToGlobal func(int) int, params TooltipParams, kind TipKind) {
	if len(ring) == 0 {
		return
	}
	c.add(Target{Shape: PolygonShape, Points: c.points(ring), LocalToGlobal: localToGlobal, Params: params, Kind: kind})
}
