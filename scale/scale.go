// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale implements positional scales: transforms between the
// data and transformed domains, expansion policies, and breaks
// generators.
package scale

import (
	"fmt"

	"github.com/aclements/go-plotlayout/span"
)

// A Scale is the declared configuration of one positional scale.
type Scale struct {
	// Name is the axis title. Empty means no title.
	Name string

	// Transform maps data values to the transformed domain. nil
	// means the unlimited identity.
	Transform Transform

	// Expander pads the final domain. nil means DefaultExpand for
	// the transform.
	Expander Expander

	// Breaks, if non-nil, fixes the breaks of the scale to these
	// data values. Labels optionally labels them.
	Breaks []float64
	Labels []string

	// Gen chooses breaks when Breaks is nil. nil means the default
	// generator for the transform.
	Gen BreaksGenerator
}

// New returns a scale with transform t and default policies.
func New(name string, t Transform) *Scale {
	return &Scale{Name: name, Transform: t}
}

// Trans returns s's transform, defaulting to the identity.
func (s *Scale) Trans() Transform {
	if s == nil || s.Transform == nil {
		return NewContinuous(Identity)
	}
	return s.Transform
}

// IsDiscrete reports whether s has a discrete transform.
func (s *Scale) IsDiscrete() bool {
	_, ok := s.Trans().(*Discrete)
	return ok
}

// Expansion returns the expander of s.
func (s *Scale) Expansion() Expander {
	if s != nil && s.Expander != nil {
		return s.Expander
	}
	return DefaultExpand(s.Trans())
}

// Generator returns the breaks generator of s.
func (s *Scale) Generator() BreaksGenerator {
	if s != nil && s.Gen != nil {
		return s.Gen
	}
	switch t := s.Trans().(type) {
	case *Continuous:
		switch t.Kind {
		case Log10:
			return Log10Breaks{}
		case DateTime:
			return DateTimeBreaks{}
		}
		return LinearBreaks{Transform: t}
	case *Discrete:
		return DiscreteBreaks{Transform: t}
	}
	panic(fmt.Sprintf("unknown transform %T", s.Trans()))
}

// FixedBreaks returns the fixed breaks of s in the transformed
// domain. ok is false if s chooses breaks adaptively.
func (s *Scale) FixedBreaks() (b Breaks, ok bool) {
	if s == nil || s.Breaks == nil {
		return Breaks{}, false
	}
	var apply func(float64) float64
	switch t := s.Trans().(type) {
	case *Continuous:
		apply = t.Apply
	case *Discrete:
		apply = func(v float64) float64 { return v }
	default:
		panic(fmt.Sprintf("unknown transform %T", t))
	}
	gen := s.Generator()
	for i, v := range s.Breaks {
		tv := apply(v)
		if !span.IsFinite(tv) {
			continue
		}
		b.Domain = append(b.Domain, v)
		b.Transformed = append(b.Transformed, tv)
		if i < len(s.Labels) {
			b.Labels = append(b.Labels, s.Labels[i])
		} else {
			b.Labels = append(b.Labels, gen.Format(v))
		}
	}
	return b, true
}

// An Expander computes the padding added below and above a domain.
type Expander interface {
	Padding(r span.Span) (lower, upper float64)
}

// Expand pads both ends of a domain by Mult times its length plus
// Add.
type Expand struct {
	Mult, Add float64
}

func (e Expand) Padding(r span.Span) (lower, upper float64) {
	p := e.Mult*r.Len() + e.Add
	return p, p
}

// DefaultExpand returns the default expansion for transform t: 5% of
// the domain for continuous scales and 0.6 of a level for discrete
// scales.
func DefaultExpand(t Transform) Expand {
	switch t.(type) {
	case *Continuous:
		return Expand{Mult: 0.05}
	case *Discrete:
		return Expand{Add: 0.6}
	}
	panic(fmt.Sprintf("unknown transform %T", t))
}
