// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pos implements position adjustments, which move a layer's
// data points to avoid overplotting, for example by stacking bars or
// dodging groups side by side.
//
// A Builder is the declared adjustment of a layer. Building it over a
// layer's evaluated aesthetics yields an Adjustment, which translates
// one point at a time.
package pos

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/aclements/go-plotlayout/aes"
	"github.com/aclements/go-plotlayout/geom"
)

// Context provides geometry facts adjustments depend on.
type Context interface {
	// Resolution returns the data resolution of aesthetic a: the
	// smallest gap between its distinct values.
	Resolution(a aes.Aes) float64
}

// An Adjustment moves data points.
type Adjustment interface {
	// Translate returns the adjusted position of v, which is one
	// (x, y) combination of the positional aesthetics of p.
	Translate(v geom.Point, p aes.DataPoint, ctx Context) geom.Point
}

// A Builder constructs the Adjustment for one set of aesthetics.
type Builder interface {
	Build(as *aes.Aesthetics, ctx Context) Adjustment
}

// Identity leaves points where they are.
var Identity identity

type identity struct{}

func (identity) Build(*aes.Aesthetics, Context) Adjustment { return identity{} }

func (identity) Translate(v geom.Point, _ aes.DataPoint, _ Context) geom.Point {
	return v
}

// IsIdentity reports whether b never moves points. A nil Builder is
// the identity.
func IsIdentity(b Builder) bool {
	switch b := b.(type) {
	case nil, identity:
		return true
	case Nudge:
		return b.X == 0 && b.Y == 0
	}
	return false
}

// Resolution returns the smallest positive gap between distinct finite
// values of vals, or 1 if there are fewer than two distinct values.
func Resolution(vals []float64) float64 {
	fs := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			fs = append(fs, v)
		}
	}
	sort.Float64s(fs)
	res := math.Inf(1)
	for i := 1; i < len(fs); i++ {
		if d := fs[i] - fs[i-1]; d > 0 && d < res {
			res = d
		}
	}
	if math.IsInf(res, 1) {
		return 1
	}
	return res
}

type dataContext struct {
	as    *aes.Aesthetics
	cache map[aes.Aes]float64
}

// NewContext returns a Context that computes resolutions from the
// values in as.
func NewContext(as *aes.Aesthetics) Context {
	return &dataContext{as, make(map[aes.Aes]float64)}
}

func (c *dataContext) Resolution(a aes.Aes) float64 {
	if r, ok := c.cache[a]; ok {
		return r
	}
	r := Resolution(c.as.Numeric(a))
	c.cache[a] = r
	return r
}

// Stack stacks points that share an x position on top of each other,
// in row order. Positive and negative values stack separately.
type Stack struct{}

func (Stack) Build(as *aes.Aesthetics, ctx Context) Adjustment {
	return newStacker(as, false)
}

// Fill stacks like Stack and then normalizes every stack to [0, 1]
// (or [-1, 0] for negative values).
type Fill struct{}

func (Fill) Build(as *aes.Aesthetics, ctx Context) Adjustment {
	return newStacker(as, true)
}

type stacker struct {
	offsets []float64
	totals  []float64
}

func newStacker(as *aes.Aesthetics, normalize bool) *stacker {
	n := as.Len()
	s := &stacker{offsets: make([]float64, n)}
	type key struct {
		x   float64
		neg bool
	}
	sums := make(map[key]float64)
	keys := make([]key, n)
	for i := 0; i < n; i++ {
		p := as.At(i)
		x, y := p.Num(aes.X), p.Num(aes.Y)
		if math.IsNaN(y) {
			y = 0
		}
		k := key{x, y < 0}
		keys[i] = k
		s.offsets[i] = sums[k]
		sums[k] += y
	}
	if normalize {
		s.totals = make([]float64, n)
		for i, k := range keys {
			s.totals[i] = math.Abs(sums[k])
		}
	}
	return s
}

func (s *stacker) Translate(v geom.Point, p aes.DataPoint, _ Context) geom.Point {
	i := p.Index()
	if i >= len(s.offsets) {
		return v
	}
	y := v.Y + s.offsets[i]
	if s.totals != nil && s.totals[i] != 0 {
		y /= s.totals[i]
	}
	return geom.Point{X: v.X, Y: y}
}

// Dodge places points that share an x position side by side, one slot
// per group. Width is the total width of all slots in units of the x
// resolution; 0 means 0.9.
type Dodge struct {
	Width float64
}

func (d Dodge) Build(as *aes.Aesthetics, ctx Context) Adjustment {
	w := d.Width
	if w == 0 {
		w = 0.9
	}
	return newDodger(as, w)
}

type dodger struct {
	width float64
	slot  []int
	count []int
}

func newDodger(as *aes.Aesthetics, width float64) *dodger {
	n := as.Len()
	d := &dodger{width: width, slot: make([]int, n), count: make([]int, n)}
	groups := make(map[float64][]string)
	xs := make([]float64, n)
	for i := 0; i < n; i++ {
		p := as.At(i)
		xs[i] = p.Num(aes.X)
		g := fmt.Sprint(p.Value(aes.Group))
		slot := -1
		for j, og := range groups[xs[i]] {
			if og == g {
				slot = j
				break
			}
		}
		if slot < 0 {
			slot = len(groups[xs[i]])
			groups[xs[i]] = append(groups[xs[i]], g)
		}
		d.slot[i] = slot
	}
	for i, x := range xs {
		d.count[i] = len(groups[x])
	}
	return d
}

func (d *dodger) Translate(v geom.Point, p aes.DataPoint, ctx Context) geom.Point {
	i := p.Index()
	if i >= len(d.slot) || d.count[i] <= 1 {
		return v
	}
	w := d.width * ctx.Resolution(aes.X)
	n := float64(d.count[i])
	x := v.X - w/2 + w*(float64(d.slot[i])+0.5)/n
	return geom.Point{X: x, Y: v.Y}
}

// Jitter moves every point by a pseudo-random offset of up to Width
// (horizontally) and Height (vertically), in units of the data
// resolution. A zero Width or Height means 0.4 and 0 respectively.
// Offsets depend only on Seed and the row index.
type Jitter struct {
	Width, Height float64
	Seed          int64
}

func (j Jitter) Build(as *aes.Aesthetics, ctx Context) Adjustment {
	w := j.Width
	if w == 0 {
		w = 0.4
	}
	return newJitterer(as.Len(), w, j.Height, j.Seed)
}

type jitterer struct {
	dx, dy []float64
}

func newJitterer(n int, w, h float64, seed int64) *jitterer {
	rnd := rand.New(rand.NewSource(seed))
	j := &jitterer{make([]float64, n), make([]float64, n)}
	for i := 0; i < n; i++ {
		j.dx[i] = (2*rnd.Float64() - 1) * w
		j.dy[i] = (2*rnd.Float64() - 1) * h
	}
	return j
}

func (j *jitterer) Translate(v geom.Point, p aes.DataPoint, ctx Context) geom.Point {
	i := p.Index()
	if i >= len(j.dx) {
		return v
	}
	return geom.Point{
		X: v.X + j.dx[i]*ctx.Resolution(aes.X),
		Y: v.Y + j.dy[i]*ctx.Resolution(aes.Y),
	}
}

// Nudge shifts every point by a constant in data units.
type Nudge struct {
	X, Y float64
}

func (n Nudge) Build(*aes.Aesthetics, Context) Adjustment { return n }

func (n Nudge) Translate(v geom.Point, _ aes.DataPoint, _ Context) geom.Point {
	return geom.Point{X: v.X + n.X, Y: v.Y + n.Y}
}

// JitterDodge dodges groups and then jitters points within their
// slot.
type JitterDodge struct {
	DodgeWidth   float64
	JitterWidth  float64
	JitterHeight float64
	Seed         int64
}

func (jd JitterDodge) Build(as *aes.Aesthetics, ctx Context) Adjustment {
	dw := jd.DodgeWidth
	if dw == 0 {
		dw = 0.75
	}
	jw := jd.JitterWidth
	if jw == 0 {
		jw = 0.4
	}
	d := newDodger(as, dw)
	// Keep jitter inside one dodge slot.
	slots := 1
	for _, c := range d.count {
		if c > slots {
			slots = c
		}
	}
	return chain{d, newJitterer(as.Len(), jw*dw/float64(slots), jd.JitterHeight, jd.Seed)}
}

type chain []Adjustment

func (c chain) Translate(v geom.Point, p aes.DataPoint, ctx Context) geom.Point {
	for _, a := range c {
		v = a.Translate(v, p, ctx)
	}
	return v
}

// ByName returns the Builder with default parameters for the named
// adjustment.
func ByName(name string) (Builder, error) {
	switch name {
	case "", "identity":
		return Identity, nil
	case "stack":
		return Stack{}, nil
	case "fill":
		return Fill{}, nil
	case "dodge":
		return Dodge{}, nil
	case "jitter":
		return Jitter{}, nil
	case "jitterdodge":
		return JitterDodge{}, nil
	}
	return nil, fmt.Errorf("unknown position adjustment %q", name)
}
