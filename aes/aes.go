// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aes defines plot aesthetics and evaluates aesthetic
// mappings against data tables.
package aes

import "fmt"

// Aes is a visual property a layer maps data onto.
type Aes int

const (
	X Aes = iota
	Y
	XMin
	XMax
	YMin
	YMax
	XEnd
	YEnd
	XIntercept
	YIntercept
	Lower
	Middle
	Upper
	Width
	Height
	BinWidth
	Size
	Color
	Fill
	Alpha
	Shape
	Label
	Group

	numAes
)

var names = [...]string{
	X:          "x",
	Y:          "y",
	XMin:       "xmin",
	XMax:       "xmax",
	YMin:       "ymin",
	YMax:       "ymax",
	XEnd:       "xend",
	YEnd:       "yend",
	XIntercept: "xintercept",
	YIntercept: "yintercept",
	Lower:      "lower",
	Middle:     "middle",
	Upper:      "upper",
	Width:      "width",
	Height:     "height",
	BinWidth:   "binwidth",
	Size:       "size",
	Color:      "color",
	Fill:       "fill",
	Alpha:      "alpha",
	Shape:      "shape",
	Label:      "label",
	Group:      "group",
}

func (a Aes) String() string {
	if a < 0 || a >= numAes {
		return fmt.Sprintf("Aes(%d)", int(a))
	}
	return names[a]
}

// All returns every aesthetic in declaration order.
func All() []Aes {
	res := make([]Aes, numAes)
	for i := range res {
		res[i] = Aes(i)
	}
	return res
}

// Parse returns the aesthetic called name.
func Parse(name string) (Aes, bool) {
	for i, n := range names {
		if n == name {
			return Aes(i), true
		}
	}
	return 0, false
}

// AffectsScaleX reports whether values of a are positions on the
// horizontal scale.
func AffectsScaleX(a Aes) bool {
	switch a {
	case X, XMin, XMax, XEnd, XIntercept:
		return true
	}
	return false
}

// AffectsScaleY reports whether values of a are positions on the
// vertical scale.
func AffectsScaleY(a Aes) bool {
	switch a {
	case Y, YMin, YMax, YEnd, YIntercept, Lower, Middle, Upper:
		return true
	}
	return false
}

// IsPositional reports whether a affects either positional scale.
func IsPositional(a Aes) bool {
	return AffectsScaleX(a) || AffectsScaleY(a)
}

// IsSize reports whether a is a size along a positional axis, in
// units of that axis' resolution.
func IsSize(a Aes) bool {
	return a == Width || a == Height || a == BinWidth
}

// mustBeNumeric reports whether values of a must be numbers after
// mapping.
func mustBeNumeric(a Aes) bool {
	return IsPositional(a) || IsSize(a) || a == Size || a == Alpha
}

// Filter returns the aesthetics of as for which keep is true.
func Filter(as []Aes, keep func(Aes) bool) []Aes {
	var res []Aes
	for _, a := range as {
		if keep(a) {
			res = append(res, a)
		}
	}
	return res
}
