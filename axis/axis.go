// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis lays out positional axes: it picks breaks for a
// domain and an axis length, and arranges their labels so they do not
// overlap.
package axis

import (
	"fmt"

	"github.com/aclements/go-plotlayout/geom"
	"github.com/aclements/go-plotlayout/scale"
	"github.com/aclements/go-plotlayout/span"
)

// Orientation is the side of a panel an axis is drawn on.
type Orientation int

const (
	Bottom Orientation = iota
	Left
	Top
	Right
)

func (o Orientation) String() string {
	switch o {
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Top:
		return "top"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// IsHorizontal reports whether an axis with orientation o runs
// horizontally.
func (o Orientation) IsHorizontal() bool {
	return o == Bottom || o == Top
}

// A BreaksProvider supplies the breaks of an axis. It is either Fixed
// or *Adaptable.
type BreaksProvider interface {
	// Generate returns the breaks for targetCount ticks over
	// domain.
	Generate(domain span.Span, targetCount int) scale.Breaks
	isProvider()
}

// Fixed provides the same breaks regardless of domain and axis
// length.
type Fixed struct {
	Breaks scale.Breaks
}

func (f Fixed) Generate(span.Span, int) scale.Breaks { return f.Breaks }
func (Fixed) isProvider()                            {}

// Adaptable asks Gen for breaks on every layout, so they follow the
// axis length.
type Adaptable struct {
	Gen scale.BreaksGenerator
}

func (a *Adaptable) Generate(domain span.Span, targetCount int) scale.Breaks {
	return a.Gen.GenerateBreaks(domain, targetCount)
}
func (*Adaptable) isProvider() {}

// ProviderFor returns the breaks provider of scale s: Fixed if s has
// explicit breaks, and Adaptable over its generator otherwise.
func ProviderFor(s *scale.Scale) BreaksProvider {
	if b, ok := s.FixedBreaks(); ok {
		return Fixed{b}
	}
	return &Adaptable{s.Generator()}
}

// Anchor is the alignment of label text relative to its anchor point.
type Anchor int

const (
	AnchorMiddle Anchor = iota
	AnchorStart         // left or top
	AnchorEnd           // right or bottom
)

// Info is the resolved layout of one axis.
//
// Coordinates are relative to the start of the axis line: the left
// end of a horizontal axis or the top end of a vertical one. Positive
// Y is down.
type Info struct {
	Orientation Orientation
	Domain      span.Span
	Length      float64
	Breaks      scale.Breaks

	// TickPositions are the offsets of each break along the axis.
	TickPositions []float64
	TickLength    float64

	// LabelGap is the space between the ends of the ticks and the
	// labels.
	LabelGap float64

	// LabelBounds encloses every tick label.
	LabelBounds geom.Rect

	// LabelOffsets are the per-label displacements from the
	// default label position, for staggered labels.
	LabelOffsets []geom.Point

	// LabelRotation is the label rotation in degrees.
	LabelRotation float64

	HAnchor, VAnchor Anchor

	// SmallFont reports whether labels use the theme's small text
	// size.
	SmallFont bool
	FontSize  float64
}

// Thickness returns the extent of the axis perpendicular to its line:
// ticks, label gap and labels.
func (i *Info) Thickness() float64 {
	if len(i.TickPositions) == 0 {
		return i.TickLength
	}
	if i.Orientation.IsHorizontal() {
		return i.TickLength + i.LabelGap + i.LabelBounds.H
	}
	return i.TickLength + i.LabelGap + i.LabelBounds.W
}

// Project maps transformed value v to its offset along the axis.
func (i *Info) Project(v float64) float64 {
	return project(i.Orientation, i.Domain, i.Length, v)
}

func project(o Orientation, d span.Span, length, v float64) float64 {
	f := (v - d.Lo) / d.Len()
	if !o.IsHorizontal() {
		f = 1 - f
	}
	return f * length
}
