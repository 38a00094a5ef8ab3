// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package span implements closed intervals over float64 and the
// small algebra the layout pipeline uses to combine data ranges.
//
// A Span is an immutable value. The absence of a range (for example,
// a layer with no finite data) is represented by a nil *Span, and
// every combining operation absorbs nil operands rather than failing.
package span

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Span is the closed interval [Lo, Hi]. Lo <= Hi always holds for
// spans built by this package.
type Span struct {
	Lo, Hi float64
}

// tiny is the length below which a span is treated as a single point.
const tiny = 1e-50

// New returns the span between a and b, in either order.
func New(a, b float64) Span {
	if a > b {
		a, b = b, a
	}
	return Span{a, b}
}

// Singleton returns [v, v].
func Singleton(v float64) Span {
	return Span{v, v}
}

// Ptr returns a pointer to a copy of s.
func (s Span) Ptr() *Span {
	return &s
}

func (s Span) String() string {
	return fmt.Sprintf("[%g, %g]", s.Lo, s.Hi)
}

// Len returns Hi - Lo.
func (s Span) Len() float64 {
	return s.Hi - s.Lo
}

// Center returns the midpoint of s.
func (s Span) Center() float64 {
	return s.Lo + s.Len()/2
}

// Contains reports whether v lies in s.
func (s Span) Contains(v float64) bool {
	return s.Lo <= v && v <= s.Hi
}

// Encloses reports whether o lies entirely within s.
func (s Span) Encloses(o Span) bool {
	return s.Lo <= o.Lo && o.Hi <= s.Hi
}

// Union returns the smallest span containing both s and o.
func (s Span) Union(o Span) Span {
	return Span{math.Min(s.Lo, o.Lo), math.Max(s.Hi, o.Hi)}
}

// Expand returns s widened by lower below and upper above. Negative
// padding that would invert the span collapses it to its center.
func (s Span) Expand(lower, upper float64) Span {
	lo, hi := s.Lo-lower, s.Hi+upper
	if lo > hi {
		c := s.Center()
		return Span{c, c}
	}
	return Span{lo, hi}
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// EncloseAll returns the smallest span containing every finite value
// in vs, or nil if there are none.
func EncloseAll(vs []float64) *Span {
	finite := vs
	for i, v := range vs {
		if !IsFinite(v) {
			// Only copy when there is something to drop.
			finite = make([]float64, 0, len(vs))
			finite = append(finite, vs[:i]...)
			for _, v := range vs[i+1:] {
				if IsFinite(v) {
					finite = append(finite, v)
				}
			}
			break
		}
	}
	if len(finite) == 0 {
		return nil
	}
	lo, hi := stats.Bounds(finite)
	return &Span{lo, hi}
}

// Update returns the union of r and was. If either is nil, it returns
// the other unchanged.
func Update(r, was *Span) *Span {
	if r == nil {
		return was
	}
	if was == nil {
		return r
	}
	u := was.Union(*r)
	return &u
}

// Enclose folds Update over spans. It returns nil if every span is
// nil.
func Enclose(spans ...*Span) *Span {
	var res *Span
	for _, s := range spans {
		res = Update(s, res)
	}
	return res
}

// EnsureApplicable turns a possibly undefined or degenerate range into
// one that downstream layout can divide by. A nil r becomes
// preferable, or [-0.5, 0.5] if preferable is also nil. A span
// shorter than a tiny epsilon becomes a unit span centered on its
// lower end.
func EnsureApplicable(r, preferable *Span) Span {
	if r == nil {
		if preferable != nil {
			return EnsureApplicable(preferable, nil)
		}
		return Span{-0.5, 0.5}
	}
	if r.Len() < tiny {
		return Span{r.Lo - 0.5, r.Lo + 0.5}
	}
	return *r
}
