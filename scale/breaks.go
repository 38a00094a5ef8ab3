// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"strconv"

	mscale "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-plotlayout/span"
)

// Breaks are the tick values of an axis. The three slices have the
// same length.
type Breaks struct {
	// Domain are the break values in the data domain.
	Domain []float64
	// Transformed are the break values in the transformed domain.
	Transformed []float64
	// Labels are the tick labels.
	Labels []string
}

// Len returns the number of breaks.
func (b Breaks) Len() int {
	return len(b.Transformed)
}

func (b *Breaks) add(d, t float64, label string) {
	b.Domain = append(b.Domain, d)
	b.Transformed = append(b.Transformed, t)
	b.Labels = append(b.Labels, label)
}

// A BreaksGenerator chooses breaks for a domain.
type BreaksGenerator interface {
	// GenerateBreaks returns at most about targetCount breaks
	// within domain, which is in the transformed domain.
	GenerateBreaks(domain span.Span, targetCount int) Breaks

	// Format returns the label of data value v.
	Format(v float64) string
}

// formatFloat formats v with up to 6 significant digits.
func formatFloat(v float64) string {
	if v == 0 {
		// Avoid "-0".
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// nearlyContains is Contains with a tolerance for rounding in tick
// arithmetic.
func nearlyContains(s span.Span, v float64) bool {
	eps := 1e-9 * math.Max(s.Len(), math.Max(math.Abs(s.Lo), math.Abs(s.Hi)))
	return s.Lo-eps <= v && v <= s.Hi+eps
}

// LinearBreaks places breaks at round numbers in the data domain.
type LinearBreaks struct {
	// Transform maps breaks to the transformed domain. nil means
	// the identity.
	Transform *Continuous
}

func (g LinearBreaks) trans() *Continuous {
	if g.Transform == nil {
		return NewContinuous(Identity)
	}
	return g.Transform
}

func (g LinearBreaks) GenerateBreaks(domain span.Span, targetCount int) Breaks {
	t := g.trans()
	if targetCount < 1 {
		targetCount = 1
	}
	lo, hi := t.Inverse(domain.Lo), t.Inverse(domain.Hi)
	if lo > hi {
		lo, hi = hi, lo
	}

	var b Breaks
	if lo == hi {
		b.add(lo, t.Apply(lo), g.Format(lo))
		return b
	}
	ls := mscale.Linear{Min: lo, Max: hi}
	major, _ := ls.Ticks(mscale.TickOptions{Max: targetCount})
	for _, v := range major {
		tv := t.Apply(v)
		if span.IsFinite(tv) && nearlyContains(domain, tv) {
			b.add(v, tv, g.Format(v))
		}
	}
	if b.Len() == 0 {
		// No round number fits; label the ends or the middle.
		vs := []float64{(lo + hi) / 2}
		if targetCount >= 2 {
			vs = vec.Linspace(lo, hi, 2)
		}
		for _, v := range vs {
			b.add(v, t.Apply(v), g.Format(v))
		}
	}
	return b
}

func (g LinearBreaks) Format(v float64) string {
	return formatFloat(v)
}

// Log10Breaks places breaks at powers of ten. Domains narrower than a
// decade fall back to linear breaks.
type Log10Breaks struct{}

func (g Log10Breaks) GenerateBreaks(domain span.Span, targetCount int) Breaks {
	if targetCount < 1 {
		targetCount = 1
	}
	// Linear levels >= 0 have integer spacing.
	opts := mscale.TickOptions{Max: targetCount, MinLevel: 0, MaxLevel: 1000}
	ls := mscale.Linear{Min: domain.Lo, Max: domain.Hi}
	major, _ := ls.Ticks(opts)
	var b Breaks
	for _, e := range major {
		if nearlyContains(domain, e) {
			v := math.Pow(10, e)
			b.add(v, e, g.Format(v))
		}
	}
	if b.Len() < 2 {
		return LinearBreaks{NewContinuous(Log10)}.GenerateBreaks(domain, targetCount)
	}
	return b
}

func (g Log10Breaks) Format(v float64) string {
	return formatFloat(v)
}

// DiscreteBreaks places a break at every level in the domain,
// thinning them evenly if there are more than the target count.
type DiscreteBreaks struct {
	Transform *Discrete
}

func (g DiscreteBreaks) GenerateBreaks(domain span.Span, targetCount int) Breaks {
	var b Breaks
	if g.Transform == nil {
		return b
	}
	var idx []float64
	for _, v := range g.Transform.EffectiveDomainTransformed() {
		if nearlyContains(domain, v) {
			idx = append(idx, v)
		}
	}
	step := 1
	if targetCount >= 1 && len(idx) > targetCount {
		step = (len(idx) + targetCount - 1) / targetCount
	}
	for i := 0; i < len(idx); i += step {
		b.add(idx[i], idx[i], g.Format(idx[i]))
	}
	return b
}

func (g DiscreteBreaks) Format(v float64) string {
	if g.Transform != nil {
		if l, ok := g.Transform.Level(v); ok {
			return l
		}
	}
	return formatFloat(v)
}
