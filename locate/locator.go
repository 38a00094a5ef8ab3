// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locate

import (
	"fmt"
	"math"

	"github.com/aclements/go-plotlayout/geom"
)

// Strategy is how a query point selects a target.
type Strategy int

const (
	// Hover matches targets within the hover tolerance of the
	// query.
	Hover Strategy = iota
	// Click matches only targets that contain the query.
	Click
	// Nearest matches the closest target, within Cutoff if it is
	// positive.
	Nearest
)

func (s Strategy) String() string {
	switch s {
	case Hover:
		return "hover"
	case Click:
		return "click"
	case Nearest:
		return "nearest"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Space is the geometry distances are measured in.
type Space int

const (
	// X measures distance along X only, for dense series such as
	// time series.
	X Space = iota
	// XY measures Euclidean distance.
	XY
)

func (s Space) String() string {
	switch s {
	case X:
		return "x"
	case XY:
		return "xy"
	}
	return fmt.Sprintf("Space(%d)", int(s))
}

// DefaultTolerance is the hover tolerance of a new Locator, in pixels.
const DefaultTolerance = 5

// A Locator finds targets near a query point.
type Locator struct {
	targets  []Target
	strategy Strategy
	space    Space
	flipped  bool

	// Tolerance is the hover distance in pixels.
	Tolerance float64
	// Cutoff limits Nearest lookups. Zero means no limit.
	Cutoff float64
}

// NewLocator returns a Locator over targets. The locator does not copy
// targets; the caller must not modify them while it is in use.
func NewLocator(targets []Target, s Strategy, sp Space) *Locator {
	return &Locator{targets: targets, strategy: s, space: sp, Tolerance: DefaultTolerance}
}

// Flip returns a view of l for transposed coordinates: queries are
// swapped before matching against the registered targets.
func (l *Locator) Flip() *Locator {
	f := *l
	f.flipped = !l.flipped
	return &f
}

// A Result is a matched target.
type Result struct {
	Target *Target
	// Index is the data row: the target's own for points and
	// rectangles, and that of the nearest vertex for paths and
	// polygons.
	Index    int
	Distance float64
}

// Find returns the best target for query point p. Among equally good
// targets, the first registered wins.
func (l *Locator) Find(p geom.Point) (Result, bool) {
	if l.flipped {
		p = p.Flip()
	}
	var best Result
	found := false
	for i := range l.targets {
		t := &l.targets[i]
		d, idx := l.distance(t, p)
		if !l.accept(d) {
			continue
		}
		if !found || d < best.Distance {
			best = Result{t, idx, d}
			found = true
		}
	}
	return best, found
}

func (l *Locator) accept(d float64) bool {
	switch l.strategy {
	case Hover:
		return d <= l.Tolerance
	case Click:
		return d == 0
	case Nearest:
		return l.Cutoff <= 0 || d <= l.Cutoff
	}
	panic(fmt.Sprintf("unknown strategy %v", l.strategy))
}

// distance returns the distance from p to t in l's space, and the data
// row the match refers to.
func (l *Locator) distance(t *Target, p geom.Point) (float64, int) {
	switch t.Shape {
	case PointShape:
		if l.space == X {
			return math.Max(0, math.Abs(p.X-t.Point.X)-t.Radius), t.Index
		}
		return math.Max(0, p.Dist(t.Point)-t.Radius), t.Index

	case RectShape:
		if l.space == X {
			return math.Max(0, math.Max(t.Rect.Left()-p.X, p.X-t.Rect.Right())), t.Index
		}
		return geom.DistToRect(p, t.Rect), t.Index

	case PathShape, PolygonShape:
		if l.space == X {
			return l.groupDistanceX(t, p)
		}
		return l.groupDistanceXY(t, p)
	}
	panic(fmt.Sprintf("unknown target shape %v", t.Shape))
}

// groupDistanceX treats a path or polygon as covering its X extent.
// The result refers to the vertex nearest in X.
func (l *Locator) groupDistanceX(t *Target, p geom.Point) (float64, int) {
	b := geom.Bounds(t.Points)
	d := math.Max(0, math.Max(b.Left()-p.X, p.X-b.Right()))
	best, bestDX := 0, math.Inf(1)
	for i, v := range t.Points {
		if dx := math.Abs(v.X - p.X); dx < bestDX {
			best, bestDX = i, dx
		}
	}
	return d, t.row(best)
}

// groupDistanceXY measures to the nearest segment of a path, or to the
// ring of a polygon, which is 0 inside it. The result refers to the
// closer end of the nearest segment.
func (l *Locator) groupDistanceXY(t *Target, p geom.Point) (float64, int) {
	pts := t.Points
	if len(pts) == 1 {
		return p.Dist(pts[0]), t.row(0)
	}
	segs := len(pts) - 1
	if t.Shape == PolygonShape {
		segs = len(pts)
	}
	best, bestD := 0, math.Inf(1)
	for i := 0; i < segs; i++ {
		j := (i + 1) % len(pts)
		d := geom.DistToSegment(p, pts[i], pts[j])
		if d < bestD {
			bestD = d
			best = i
			if p.Dist(pts[j]) < p.Dist(pts[i]) {
				best = j
			}
		}
	}
	if t.Shape == PolygonShape && geom.PolygonContains(pts, p) {
		bestD = 0
	}
	return bestD, t.row(best)
}
