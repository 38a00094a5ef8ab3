// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"strings"
	"testing"

	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-plotlayout/geom"
	"github.com/aclements/go-plotlayout/scale"
	"github.com/aclements/go-plotlayout/span"
	"github.com/aclements/go-plotlayout/theme"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// evenBreaks returns n breaks spaced evenly over [lo, hi], all labeled
// label.
func evenBreaks(lo, hi float64, n int, label string) scale.Breaks {
	var b scale.Breaks
	for _, v := range vec.Linspace(lo, hi, n) {
		b.Domain = append(b.Domain, v)
		b.Transformed = append(b.Transformed, v)
		b.Labels = append(b.Labels, label)
	}
	return b
}

// countingGen records the target counts it is asked for and returns
// targetCount+1 evenly spaced breaks.
type countingGen struct {
	label  string
	counts []int
}

func (g *countingGen) GenerateBreaks(domain span.Span, targetCount int) scale.Breaks {
	g.counts = append(g.counts, targetCount)
	return evenBreaks(domain.Lo, domain.Hi, targetCount+1, g.label)
}

func (g *countingGen) Format(v float64) string { return g.label }

func TestFixedIgnoresLength(t *testing.T) {
	d := span.New(0, 100)
	b := evenBreaks(0, 100, 3, "x")
	l := NewLayouter(Bottom, d, Fixed{b}, nil)
	short, long := l.Layout(200, nil), l.Layout(800, nil)
	if diff := cmp.Diff(short.Breaks, long.Breaks); diff != "" {
		t.Errorf("fixed breaks changed with length (-200 +800):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0, 400, 800}, long.TickPositions, approx); diff != "" {
		t.Errorf("tick positions (-want +got):\n%s", diff)
	}
}

func TestFixedDropsOutOfDomain(t *testing.T) {
	b := evenBreaks(0, 100, 5, "x") // 0 25 50 75 100
	info := NewLayouter(Bottom, span.New(20, 80), Fixed{b}, nil).Layout(600, nil)
	if diff := cmp.Diff([]float64{25, 50, 75}, info.Breaks.Transformed); diff != "" {
		t.Errorf("breaks (-want +got):\n%s", diff)
	}
}

func TestAdaptableRequeries(t *testing.T) {
	g := &countingGen{label: "1"}
	l := NewLayouter(Bottom, span.New(0, 1), &Adaptable{g}, nil)
	l.Layout(200, nil)
	l.Layout(800, nil)
	if diff := cmp.Diff([]int{2, 8}, g.counts); diff != "" {
		t.Errorf("target counts (-want +got):\n%s", diff)
	}
}

func TestAdaptableThinsHorizontal(t *testing.T) {
	th := theme.Default()
	th.HBreakSpace = 30
	// Ten-character labels are about 59px wide at the default size,
	// so ten breaks over 300px overlap and the estimate picks four.
	g := &countingGen{label: strings.Repeat("x", 10)}
	info := NewLayouter(Bottom, span.New(0, 1), &Adaptable{g}, th).Layout(300, nil)
	if diff := cmp.Diff([]int{10, 4}, g.counts); diff != "" {
		t.Errorf("target counts (-want +got):\n%s", diff)
	}
	if info.LabelRotation != 0 || info.Breaks.Len() != 5 {
		t.Errorf("got rotation %v with %d breaks; want simple labels with 5 breaks", info.LabelRotation, info.Breaks.Len())
	}
}

func TestSameDomainBothOrientations(t *testing.T) {
	d := span.New(-3, 7)
	p := &Adaptable{scale.LinearBreaks{}}
	h := NewLayouter(Bottom, d, p, nil).Layout(400, nil)
	v := NewLayouter(Left, d, p, nil).Layout(400, nil)
	if h.Domain != d || v.Domain != d {
		t.Fatalf("domains %v, %v; want %v", h.Domain, v.Domain, d)
	}
	if got := h.Project(d.Lo); got != 0 {
		t.Errorf("horizontal Project(lo) = %v; want 0", got)
	}
	if got := v.Project(d.Lo); got != 400 {
		t.Errorf("vertical Project(lo) = %v; want 400", got)
	}
	for i := 1; i < len(v.TickPositions); i++ {
		if v.TickPositions[i] >= v.TickPositions[i-1] {
			t.Errorf("vertical tick positions not decreasing: %v", v.TickPositions)
			break
		}
	}
}

func TestHorizontalStrategies(t *testing.T) {
	th := theme.Default()
	lead := 1.25 * th.AxisTextSize
	for _, test := range []struct {
		name     string
		length   float64
		label    string
		rotation float64
		height   float64
		stagger  bool
	}{
		// Five-character labels are about 30px wide.
		{"simple", 400, "xxxxx", 0, lead, false},
		{"staggered", 300, "xxxxx", 0, 2 * lead, true},
		// Seventeen characters are about 100px wide.
		{"rotated", 200, strings.Repeat("x", 17), -90, 7 * 17 * th.AxisTextSize / 13, false},
	} {
		t.Run(test.name, func(t *testing.T) {
			b := evenBreaks(0, 10, 11, test.label)
			info := NewLayouter(Bottom, span.New(0, 10), Fixed{b}, th).Layout(test.length, nil)
			if info.LabelRotation != test.rotation {
				t.Errorf("rotation = %v; want %v", info.LabelRotation, test.rotation)
			}
			if diff := cmp.Diff(test.height, info.LabelBounds.H, approx); diff != "" {
				t.Errorf("label bounds height (-want +got):\n%s", diff)
			}
			staggered := info.LabelOffsets[1].Y != 0
			if staggered != test.stagger {
				t.Errorf("staggered = %v; want %v", staggered, test.stagger)
			}
			if want := th.TickLength + th.TickMargin; info.LabelBounds.Y != want {
				t.Errorf("labels start at %v; want %v below the axis", info.LabelBounds.Y, want)
			}
		})
	}
}

func TestHorizontalMaxBounds(t *testing.T) {
	// Labels that stick out of the bounds can't be laid out simply.
	b := evenBreaks(0, 10, 3, "xxxxx")
	bounds := geom.Rect{X: 0, Y: 0, W: 400, H: 100}
	info := NewLayouter(Bottom, span.New(0, 10), Fixed{b}, nil).Layout(400, &bounds)
	if info.LabelRotation != -90 {
		t.Errorf("rotation = %v; want -90", info.LabelRotation)
	}
}

func TestVerticalSmallFont(t *testing.T) {
	th := theme.Default()
	d := span.New(0, 10)
	b := evenBreaks(0, 10, 11, "10")
	tests := []struct {
		name   string
		length float64
		bounds *geom.Rect
		small  bool
	}{
		{"roomy", 500, nil, false},
		{"overlap", 100, nil, true},
		{"too wide", 500, &geom.Rect{X: -5, W: 5, H: 500}, true},
	}
	for _, test := range tests {
		info := NewLayouter(Left, d, Fixed{b}, th).Layout(test.length, test.bounds)
		if info.SmallFont != test.small {
			t.Errorf("%s: SmallFont = %v; want %v", test.name, info.SmallFont, test.small)
		}
		want := th.AxisTextSize
		if test.small {
			want = th.SmallTextSize
		}
		if info.FontSize != want {
			t.Errorf("%s: FontSize = %v; want %v", test.name, info.FontSize, want)
		}
		if info.LabelBounds.Right() != -(th.TickLength + th.TickMargin) {
			t.Errorf("%s: labels end at %v; want left of the ticks", test.name, info.LabelBounds.Right())
		}
	}
}

func TestVerticalAdaptableThins(t *testing.T) {
	th := theme.Default()
	th.VBreakSpace = 5
	g := &countingGen{label: "1"}
	info := NewLayouter(Right, span.New(0, 1), &Adaptable{g}, th).Layout(100, nil)
	if len(g.counts) < 2 || g.counts[0] != 20 {
		t.Fatalf("target counts %v; want 20 then fewer", g.counts)
	}
	if info.SmallFont {
		t.Errorf("adaptable vertical axis fell back to small font")
	}
	if info.HAnchor != AnchorStart {
		t.Errorf("right axis HAnchor = %v; want AnchorStart", info.HAnchor)
	}
}

func TestThickness(t *testing.T) {
	th := theme.Default()
	info := NewLayouter(Bottom, span.New(0, 1), Fixed{evenBreaks(0, 1, 2, "0")}, th).Layout(300, nil)
	want := th.TickLength + th.TickMargin + 1.25*th.AxisTextSize
	if diff := cmp.Diff(want, info.Thickness(), approx); diff != "" {
		t.Errorf("thickness (-want +got):\n%s", diff)
	}
	empty := NewLayouter(Bottom, span.New(0, 1), Fixed{}, th).Layout(300, nil)
	if empty.Thickness() != th.TickLength {
		t.Errorf("thickness without ticks = %v; want %v", empty.Thickness(), th.TickLength)
	}
}
