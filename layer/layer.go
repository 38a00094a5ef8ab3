// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layer describes geometric layers: a geometry kind together
// with its data, aesthetic binding and position adjustment.
package layer

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotlayout/aes"
	"github.com/aclements/go-plotlayout/pos"
	"github.com/aclements/go-plotlayout/span"
)

// Kind is a geometry kind.
type Kind int

const (
	Point Kind = iota
	Path
	Line
	Step
	Area
	Ribbon
	Bar
	Histogram
	Tile
	Rect
	Segment
	Boxplot
	ErrorBar
	CrossBar
	PointRange
	LineRange
	HLine
	VLine
	Text
	DotPlot
	YDotPlot
	Density

	numKinds
)

var kindNames = [...]string{
	Point:      "point",
	Path:       "path",
	Line:       "line",
	Step:       "step",
	Area:       "area",
	Ribbon:     "ribbon",
	Bar:        "bar",
	Histogram:  "histogram",
	Tile:       "tile",
	Rect:       "rect",
	Segment:    "segment",
	Boxplot:    "boxplot",
	ErrorBar:   "errorbar",
	CrossBar:   "crossbar",
	PointRange: "pointrange",
	LineRange:  "linerange",
	HLine:      "hline",
	VLine:      "vline",
	Text:       "text",
	DotPlot:    "dotplot",
	YDotPlot:   "ydotplot",
	Density:    "density",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind called name.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown geometry %q", name)
}

var (
	common    = []aes.Aes{aes.Alpha, aes.Color, aes.Group}
	filled    = []aes.Aes{aes.Alpha, aes.Color, aes.Fill, aes.Group}
	renderers = [...][]aes.Aes{
		Point:      {aes.X, aes.Y, aes.Size, aes.Shape},
		Path:       {aes.X, aes.Y, aes.Size},
		Line:       {aes.X, aes.Y, aes.Size},
		Step:       {aes.X, aes.Y, aes.Size},
		Area:       {aes.X, aes.Y},
		Ribbon:     {aes.X, aes.YMin, aes.YMax},
		Bar:        {aes.X, aes.Y, aes.Width},
		Histogram:  {aes.X, aes.Y, aes.Width},
		Tile:       {aes.X, aes.Y, aes.Width, aes.Height},
		Rect:       {aes.XMin, aes.XMax, aes.YMin, aes.YMax},
		Segment:    {aes.X, aes.Y, aes.XEnd, aes.YEnd, aes.Size},
		Boxplot:    {aes.X, aes.Lower, aes.Middle, aes.Upper, aes.YMin, aes.YMax, aes.Width},
		ErrorBar:   {aes.X, aes.YMin, aes.YMax, aes.Width},
		CrossBar:   {aes.X, aes.Y, aes.YMin, aes.YMax, aes.Width},
		PointRange: {aes.X, aes.Y, aes.YMin, aes.YMax, aes.Size},
		LineRange:  {aes.X, aes.YMin, aes.YMax},
		HLine:      {aes.YIntercept},
		VLine:      {aes.XIntercept},
		Text:       {aes.X, aes.Y, aes.Label, aes.Size},
		DotPlot:    {aes.X, aes.BinWidth},
		YDotPlot:   {aes.X, aes.Y, aes.BinWidth},
		Density:    {aes.X, aes.Y},
	}
)

// Rendered returns the aesthetics a layer of kind k renders, in
// declaration order.
func (k Kind) Rendered() []aes.Aes {
	extra := common
	switch k {
	case Area, Ribbon, Bar, Histogram, Tile, Rect, Boxplot, CrossBar, DotPlot, YDotPlot, Density:
		extra = filled
	}
	set := make(map[aes.Aes]bool)
	for _, a := range renderers[k] {
		set[a] = true
	}
	for _, a := range extra {
		set[a] = true
	}
	return aes.Filter(aes.All(), func(a aes.Aes) bool { return set[a] })
}

// IncludesZero reports whether the range of a kind k layer along the
// given axis must include zero.
func (k Kind) IncludesZero(vertical bool) bool {
	if vertical {
		switch k {
		case Bar, Histogram, Area, Density, DotPlot:
			return true
		}
		return false
	}
	return k == YDotPlot
}

// SizeAes returns the aesthetic whose values extend a kind k layer's
// points along the given axis, and the positional aesthetic those
// sizes are measured from. ok is false if the kind has no size along
// that axis.
func (k Kind) SizeAes(vertical bool) (size, loc aes.Aes, ok bool) {
	if vertical {
		switch k {
		case Tile:
			return aes.Height, aes.Y, true
		case YDotPlot:
			return aes.BinWidth, aes.Y, true
		}
		return 0, 0, false
	}
	switch k {
	case Bar, Histogram, Tile, Boxplot, ErrorBar, CrossBar:
		return aes.Width, aes.X, true
	case DotPlot:
		return aes.BinWidth, aes.X, true
	}
	return 0, 0, false
}

// DefaultSize returns the value of size aesthetic a for a kind k layer
// that does not bind it. ok is false if a is not a size of k.
func (k Kind) DefaultSize(a aes.Aes) (v float64, ok bool) {
	switch {
	case a == aes.Width && (k == Bar || k == Histogram || k == Boxplot || k == ErrorBar || k == CrossBar):
		return 0.9, true
	case (a == aes.Width || a == aes.Height) && k == Tile:
		return 1, true
	case a == aes.BinWidth && (k == DotPlot || k == YDotPlot):
		return 1, true
	}
	return 0, false
}

// PreferableNullDomain returns the domain a kind k layer falls back to
// along the given axis when there is no finite data, or nil.
func (k Kind) PreferableNullDomain(vertical bool) *span.Span {
	if vertical && k == DotPlot {
		// Dot stacks are measured in counts normalized to [0, 1].
		return &span.Span{Lo: 0, Hi: 1}
	}
	return nil
}

// A Layer is one geometry drawn over one data table.
//
// Positional columns of Data are already in the transformed domain of
// their scale. Layers are not modified once built.
type Layer struct {
	Kind Kind

	// Data is the layer's data table for one tile.
	Data *table.Table

	// Binding maps aesthetics to columns of Data or to constants.
	Binding aes.Binding

	// Pos is the position adjustment. nil means the identity.
	Pos pos.Builder
}

// WithData returns a copy of l over data.
func (l *Layer) WithData(data *table.Table) *Layer {
	nl := *l
	nl.Data = data
	return &nl
}

// EffectiveBinding returns l.Binding with a constant for every size
// aesthetic of l's kind that l leaves unbound.
func (l *Layer) EffectiveBinding() aes.Binding {
	b := aes.Binding{Columns: l.Binding.Columns, Consts: make(map[aes.Aes]interface{})}
	for a, v := range l.Binding.Consts {
		b.Consts[a] = v
	}
	for _, a := range l.Kind.Rendered() {
		_, c := b.Columns[a]
		_, k := b.Consts[a]
		if c || k {
			continue
		}
		if v, ok := l.Kind.DefaultSize(a); ok {
			b.Consts[a] = v
		}
	}
	return b
}

// Rendered returns the aesthetics of l's kind that l binds, counting
// default sizes as bound.
func (l *Layer) Rendered() []aes.Aes {
	bound := make(map[aes.Aes]bool)
	for _, a := range l.EffectiveBinding().Bound() {
		bound[a] = true
	}
	return aes.Filter(l.Kind.Rendered(), func(a aes.Aes) bool { return bound[a] })
}

// PositionalAes returns the aesthetics of l that must be evaluated to
// learn its spatial extent: positional aesthetics and sizes relevant
// to its kind.
func (l *Layer) PositionalAes() []aes.Aes {
	sizes := make(map[aes.Aes]bool)
	for _, v := range []bool{false, true} {
		if s, _, ok := l.Kind.SizeAes(v); ok {
			sizes[s] = true
		}
	}
	return aes.Filter(l.Rendered(), func(a aes.Aes) bool {
		return aes.IsPositional(a) || sizes[a]
	})
}

// Adjustment returns l's position adjustment builder.
func (l *Layer) Adjustment() pos.Builder {
	if l.Pos == nil {
		return pos.Identity
	}
	return l.Pos
}
