// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"

	"github.com/aclements/go-plotlayout/span"
)

// A Transform maps data values to the linear transformed domain
// positional layout works in. It is either a *Continuous or a
// *Discrete.
type Transform interface {
	isTransform()
}

func (*Continuous) isTransform() {}
func (*Discrete) isTransform()   {}

// ContinuousKind selects the function of a Continuous transform.
type ContinuousKind int

const (
	Identity ContinuousKind = iota
	Log10
	Sqrt
	Reverse
	// DateTime is the identity over seconds since the Unix epoch.
	// It differs from Identity only in how breaks are chosen.
	DateTime
)

var continuousNames = [...]string{
	Identity: "identity",
	Log10:    "log10",
	Sqrt:     "sqrt",
	Reverse:  "reverse",
	DateTime: "datetime",
}

func (k ContinuousKind) String() string {
	if k < 0 || int(k) >= len(continuousNames) {
		return fmt.Sprintf("ContinuousKind(%d)", int(k))
	}
	return continuousNames[k]
}

// Continuous is a transform over real numbers with optional limits.
type Continuous struct {
	Kind ContinuousKind

	// lower and upper are the limits in the data domain. NaN means
	// the limit is not set.
	lower, upper float64
	limited      bool
}

// NewContinuous returns an unlimited continuous transform of kind k.
func NewContinuous(k ContinuousKind) *Continuous {
	return &Continuous{Kind: k}
}

// ParseContinuous returns the transform called name.
func ParseContinuous(name string) (*Continuous, error) {
	for i, n := range continuousNames {
		if n == name {
			return NewContinuous(ContinuousKind(i)), nil
		}
	}
	return nil, fmt.Errorf("unknown transform %q", name)
}

// WithLimits returns a copy of c limited to [lower, upper] in the data
// domain. Either limit may be NaN to leave that side open.
func (c *Continuous) WithLimits(lower, upper float64) *Continuous {
	nc := *c
	nc.lower, nc.upper, nc.limited = lower, upper, true
	return &nc
}

// Apply maps v from the data domain to the transformed domain. Values
// outside the transform's domain map to NaN.
func (c *Continuous) Apply(v float64) float64 {
	switch c.Kind {
	case Identity, DateTime:
		return v
	case Log10:
		if v <= 0 {
			return math.NaN()
		}
		return math.Log10(v)
	case Sqrt:
		if v < 0 {
			return math.NaN()
		}
		return math.Sqrt(v)
	case Reverse:
		return -v
	}
	panic(fmt.Sprintf("unknown continuous transform %v", c.Kind))
}

// Inverse maps v from the transformed domain back to the data domain.
func (c *Continuous) Inverse(v float64) float64 {
	switch c.Kind {
	case Identity, DateTime:
		return v
	case Log10:
		return math.Pow(10, v)
	case Sqrt:
		return v * v
	case Reverse:
		return -v
	}
	panic(fmt.Sprintf("unknown continuous transform %v", c.Kind))
}

// DefinedLimits returns the finite limits of c in the transformed
// domain, in increasing order. It returns nil if c has none.
func (c *Continuous) DefinedLimits() []float64 {
	if !c.limited {
		return nil
	}
	var res []float64
	for _, v := range []float64{c.lower, c.upper} {
		if t := c.Apply(v); span.IsFinite(t) {
			res = append(res, t)
		}
	}
	if len(res) == 2 && res[0] > res[1] {
		res[0], res[1] = res[1], res[0]
	}
	return res
}

// Discrete maps categorical levels to consecutive integers starting
// at 0.
type Discrete struct {
	// Levels are the levels present in the data, in order.
	Levels []string

	// Limits, if non-empty, replaces Levels as the set of levels
	// the scale shows.
	Limits []string
}

// EffectiveDomain returns the levels the scale shows.
func (d *Discrete) EffectiveDomain() []string {
	if len(d.Limits) > 0 {
		return d.Limits
	}
	return d.Levels
}

// EffectiveDomainTransformed returns the transformed values of the
// effective domain.
func (d *Discrete) EffectiveDomainTransformed() []float64 {
	levels := d.EffectiveDomain()
	res := make([]float64, len(levels))
	for i := range res {
		res[i] = float64(i)
	}
	return res
}

// Apply returns the transformed value of level, or NaN if level is
// not in the effective domain.
func (d *Discrete) Apply(level string) float64 {
	for i, l := range d.EffectiveDomain() {
		if l == level {
			return float64(i)
		}
	}
	return math.NaN()
}

// Level returns the level at transformed value v, if any.
func (d *Discrete) Level(v float64) (string, bool) {
	levels := d.EffectiveDomain()
	i := int(math.Round(v))
	if float64(i) != v || i < 0 || i >= len(levels) {
		return "", false
	}
	return levels[i], true
}
