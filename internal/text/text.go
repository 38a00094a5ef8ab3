// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text measures strings for layout.
package text

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Metrics are the dimensions in pixels of rendered text.
type Metrics struct {
	Width   float64
	Leading float64 // height of one line
	Lines   int
}

// Height returns the total height of all lines.
func (m Metrics) Height() float64 {
	return m.Leading * float64(m.Lines)
}

// face is the reference face metrics are scaled from. Every glyph of
// basicfont.Face7x13 is 7px wide at a 13px size.
var face = basicfont.Face7x13

const refSize = 13

// Measure returns the metrics of s rendered in a font with pixel size
// pxSize. s may contain newlines.
//
// TODO: This assumes a fixed-width font. Proportional faces need a
// face per size from x/image/font/opentype.
func Measure(pxSize float64, s string) Metrics {
	lines := strings.Split(s, "\n")
	m := Metrics{Leading: 1.25 * pxSize, Lines: len(lines)}
	for _, l := range lines {
		adv := font.MeasureString(face, l)
		w := float64(adv) / 64 * pxSize / refSize
		if w > m.Width {
			m.Width = w
		}
	}
	return m
}
