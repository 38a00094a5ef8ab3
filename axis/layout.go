// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"

	"github.com/aclements/go-plotlayout/geom"
	"github.com/aclements/go-plotlayout/internal/text"
	"github.com/aclements/go-plotlayout/scale"
	"github.com/aclements/go-plotlayout/span"
	"github.com/aclements/go-plotlayout/theme"
)

// A Layouter lays out one axis over a fixed domain. Horizontal and
// vertical axes over the same domain share the break resolution and
// differ only in how labels are arranged.
type Layouter struct {
	orient   Orientation
	domain   span.Span
	provider BreaksProvider
	theme    *theme.Theme
}

// NewLayouter returns a Layouter for an axis on side o of a panel,
// over the transformed domain.
func NewLayouter(o Orientation, domain span.Span, p BreaksProvider, th *theme.Theme) *Layouter {
	if th == nil {
		th = theme.Default()
	}
	return &Layouter{o, domain, p, th}
}

// Orientation returns the side of the panel the axis is on.
func (l *Layouter) Orientation() Orientation {
	return l.orient
}

// TargetCount returns the number of breaks to aim for on an axis of
// the given length.
func (l *Layouter) TargetCount(axisLength float64) int {
	spacing := l.theme.VBreakSpace
	if l.orient.IsHorizontal() {
		spacing = l.theme.HBreakSpace
	}
	return max(1, int(axisLength/spacing))
}

// Layout lays out the axis at the given length. If maxLabelBounds is
// not nil, labels must fit within it: horizontally for a horizontal
// axis, in width for a vertical one. Its coordinates are relative to
// the start of the axis.
func (l *Layouter) Layout(axisLength float64, maxLabelBounds *geom.Rect) Info {
	n := l.TargetCount(axisLength)
	_, flexible := l.provider.(*Adaptable)
	if l.orient.IsHorizontal() {
		return l.layoutHorizontal(axisLength, n, flexible, maxLabelBounds)
	}
	return l.layoutVertical(axisLength, n, flexible, maxLabelBounds)
}

// labels holds the measured tick labels of one set of breaks.
type labels struct {
	breaks  scale.Breaks
	pos     []float64
	widths  []float64
	leading float64
	size    float64
}

func (l *Layouter) measure(b scale.Breaks, axisLength, fontSize float64) *labels {
	lb := &labels{size: fontSize}
	for i, v := range b.Transformed {
		if !nearlyIn(l.domain, v) {
			continue
		}
		lb.breaks.Domain = append(lb.breaks.Domain, b.Domain[i])
		lb.breaks.Transformed = append(lb.breaks.Transformed, v)
		lb.breaks.Labels = append(lb.breaks.Labels, b.Labels[i])
		lb.pos = append(lb.pos, project(l.orient, l.domain, axisLength, v))
		m := text.Measure(fontSize, b.Labels[i])
		lb.widths = append(lb.widths, m.Width)
		lb.leading = max(lb.leading, m.Height())
	}
	if lb.leading == 0 {
		lb.leading = text.Measure(fontSize, "").Height()
	}
	return lb
}

func nearlyIn(d span.Span, v float64) bool {
	eps := 1e-9 * math.Max(d.Len(), 1)
	return d.Lo-eps <= v && v <= d.Hi+eps
}

// minGap returns the smallest allowed space between labels.
func (lb *labels) minGap() float64 {
	return lb.size / 2
}

// interval returns the extent of label i along the axis when its
// extent is w.
func (lb *labels) interval(i int, w float64) (lo, hi float64) {
	return lb.pos[i] - w/2, lb.pos[i] + w/2
}

// overlaps reports whether labels stride apart overlap, where the
// extent of label i along the axis is ext(i).
func (lb *labels) overlaps(stride int, ext func(i int) float64) bool {
	for i := stride; i < len(lb.pos); i++ {
		alo, ahi := lb.interval(i-stride, ext(i-stride))
		blo, bhi := lb.interval(i, ext(i))
		// Positions decrease along vertical axes.
		gap := math.Max(blo-ahi, alo-bhi)
		if gap < lb.minGap() {
			return true
		}
	}
	return false
}

// span returns the extent of all labels along the axis.
func (lb *labels) extent(ext func(i int) float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := range lb.pos {
		a, b := lb.interval(i, ext(i))
		lo, hi = math.Min(lo, a), math.Max(hi, b)
	}
	if len(lb.pos) == 0 {
		return 0, 0
	}
	return lo, hi
}

func (lb *labels) width(i int) float64 { return lb.widths[i] }
func (lb *labels) line(int) float64    { return lb.leading }

func (lb *labels) maxWidth() float64 {
	w := 0.0
	for _, x := range lb.widths {
		w = math.Max(w, x)
	}
	return w
}

func (l *Layouter) info(axisLength float64, lb *labels) Info {
	return Info{
		Orientation:   l.orient,
		Domain:        l.domain,
		Length:        axisLength,
		Breaks:        lb.breaks,
		TickPositions: lb.pos,
		TickLength:    l.theme.TickLength,
		LabelGap:      l.theme.TickMargin,
		LabelOffsets:  make([]geom.Point, len(lb.pos)),
		FontSize:      lb.size,
		SmallFont:     lb.size != l.theme.AxisTextSize,
	}
}

// across returns the rectangle spanning [lo, hi] along the axis and
// thickness away from the panel, past the ticks and label gap.
func (l *Layouter) across(lo, hi, thickness float64) geom.Rect {
	off := l.theme.TickLength + l.theme.TickMargin
	switch l.orient {
	case Bottom:
		return geom.Rect{X: lo, Y: off, W: hi - lo, H: thickness}
	case Top:
		return geom.Rect{X: lo, Y: -off - thickness, W: hi - lo, H: thickness}
	case Left:
		return geom.Rect{X: -off - thickness, Y: lo, W: thickness, H: hi - lo}
	default:
		return geom.Rect{X: off, Y: lo, W: thickness, H: hi - lo}
	}
}

// awayFromPanel returns the unit perpendicular pointing away from the
// panel.
func (l *Layouter) awayFromPanel() geom.Point {
	switch l.orient {
	case Bottom:
		return geom.Point{Y: 1}
	case Top:
		return geom.Point{Y: -1}
	case Left:
		return geom.Point{X: -1}
	}
	return geom.Point{X: 1}
}

func (l *Layouter) layoutHorizontal(axisLength float64, n int, flexible bool, maxBounds *geom.Rect) Info {
	lb := l.measure(l.provider.Generate(l.domain, n), axisLength, l.theme.AxisTextSize)
	within := func(lo, hi float64) bool {
		return maxBounds == nil || (maxBounds.X <= lo && hi <= maxBounds.Right())
	}
	simple := func() bool {
		lo, hi := lb.extent(lb.width)
		return !lb.overlaps(1, lb.width) && within(lo, hi)
	}

	if flexible {
		// Thin the breaks until simple labels fit.
		for !simple() && n > 1 {
			est := int(axisLength / (lb.maxWidth() + lb.minGap()))
			if est >= n {
				est = n - 1
			}
			n = max(1, est)
			lb = l.measure(l.provider.Generate(l.domain, n), axisLength, l.theme.AxisTextSize)
		}
	}

	info := l.info(axisLength, lb)
	lo, hi := lb.extent(lb.width)
	switch {
	case simple():
		info.LabelBounds = l.across(lo, hi, lb.leading)
		info.VAnchor = l.nearAnchor()

	case !lb.overlaps(2, lb.width) && within(lo, hi):
		// Two rows of labels, alternating.
		away := l.awayFromPanel()
		for i := 1; i < len(lb.pos); i += 2 {
			info.LabelOffsets[i] = geom.Point{Y: away.Y * lb.leading}
		}
		info.LabelBounds = l.across(lo, hi, 2*lb.leading)
		info.VAnchor = l.nearAnchor()

	default:
		// Rotated labels read bottom to top, one line wide.
		lo, hi = lb.extent(lb.line)
		info.LabelRotation = -90
		info.LabelBounds = l.across(lo, hi, lb.maxWidth())
		info.HAnchor = AnchorEnd
		if l.orient == Top {
			info.HAnchor = AnchorStart
		}
	}
	return info
}

// nearAnchor returns the vertical anchor of horizontal labels: the
// text edge nearest the axis line.
func (l *Layouter) nearAnchor() Anchor {
	if l.orient == Top {
		return AnchorEnd
	}
	return AnchorStart
}

func (l *Layouter) layoutVertical(axisLength float64, n int, flexible bool, maxBounds *geom.Rect) Info {
	lb := l.measure(l.provider.Generate(l.domain, n), axisLength, l.theme.AxisTextSize)
	tooWide := func() bool {
		return maxBounds != nil && lb.maxWidth() > maxBounds.W
	}

	if flexible {
		for lb.overlaps(1, lb.line) && n > 1 {
			est := int(axisLength / (lb.leading + lb.minGap()))
			if est >= n {
				est = n - 1
			}
			n = max(1, est)
			lb = l.measure(l.provider.Generate(l.domain, n), axisLength, l.theme.AxisTextSize)
		}
	} else if lb.overlaps(1, lb.line) || tooWide() {
		lb = l.measure(lb.breaks, axisLength, l.theme.SmallTextSize)
	}

	info := l.info(axisLength, lb)
	lo, hi := lb.extent(lb.line)
	info.LabelBounds = l.across(lo, hi, lb.maxWidth())
	info.VAnchor = AnchorMiddle
	info.HAnchor = AnchorEnd
	if l.orient == Right {
		info.HAnchor = AnchorStart
	}
	return info
}
