// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotlayout/aes"
	"github.com/aclements/go-plotlayout/facet"
	"github.com/aclements/go-plotlayout/geom"
	"github.com/aclements/go-plotlayout/layer"
	"github.com/aclements/go-plotlayout/scale"
	"github.com/aclements/go-plotlayout/span"
	"github.com/aclements/go-plotlayout/theme"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func bind(cols ...string) aes.Binding {
	b := aes.Binding{Columns: make(map[aes.Aes]string)}
	for i := 0; i+1 < len(cols); i += 2 {
		a, ok := aes.Parse(cols[i])
		if !ok {
			panic("bad aesthetic " + cols[i])
		}
		b.Columns[a] = cols[i+1]
	}
	return b
}

func samplePlot() *Plot {
	data := table.NewBuilder(nil).
		Add("x", []float64{1, 2, 3, 4}).
		Add("y", []float64{10, 20, 30, 40}).
		Add("g", []string{"a", "a", "b", "b"}).
		Done()
	return &Plot{
		Data:   data,
		Layers: []*layer.Layer{{Kind: layer.Point, Binding: bind("x", "x", "y", "y")}},
	}
}

func TestLayoutSinglePanel(t *testing.T) {
	p := samplePlot()
	l, err := p.Layout(500, 300)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Panels) != 1 {
		t.Fatalf("got %d panels; want 1", len(l.Panels))
	}
	pn := l.Panels[0]
	outer := l.Bounds.Inset(theme.Default().PlotMargin)
	if !containsRect(outer, pn.Bounds) {
		t.Errorf("panel %v outside plot area %v", pn.Bounds, outer)
	}
	if pn.XAxis == nil || pn.YAxis == nil {
		t.Fatalf("single panel is missing an axis")
	}
	// The panel leaves room for its axes.
	if got, want := pn.Bounds.Bottom()+pn.XAxis.Thickness(), outer.Bottom(); got > want+1e-9 {
		t.Errorf("x axis ends at %v, below the plot area at %v", got, want)
	}
	if got, want := pn.Bounds.Left()-pn.YAxis.Thickness(), outer.Left(); got < want-1e-9 {
		t.Errorf("y axis starts at %v, left of the plot area at %v", got, want)
	}
	if pn.XAxis.Length != pn.Bounds.W || pn.YAxis.Length != pn.Bounds.H {
		t.Errorf("axis lengths %v, %v; want panel size %v×%v", pn.XAxis.Length, pn.YAxis.Length, pn.Bounds.W, pn.Bounds.H)
	}
	// Default continuous expansion is 5% on each side.
	if diff := cmp.Diff(span.New(0.85, 4.15), pn.Domains.X, approx); diff != "" {
		t.Errorf("x domain (-want +got):\n%s", diff)
	}
}

func containsRect(outer, r geom.Rect) bool {
	const eps = 1e-9
	return r.X >= outer.X-eps && r.Y >= outer.Y-eps &&
		r.Right() <= outer.Right()+eps && r.Bottom() <= outer.Bottom()+eps
}

func TestProject(t *testing.T) {
	l, err := samplePlot().Layout(500, 300)
	if err != nil {
		t.Fatal(err)
	}
	pn := l.Panels[0]
	d := pn.Domains
	if diff := cmp.Diff(geom.Point{X: pn.Bounds.Left(), Y: pn.Bounds.Bottom()}, l.Project(0, d.X.Lo, d.Y.Lo), approx); diff != "" {
		t.Errorf("Project(lo, lo) (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(geom.Point{X: pn.Bounds.Right(), Y: pn.Bounds.Top()}, l.Project(0, d.X.Hi, d.Y.Hi), approx); diff != "" {
		t.Errorf("Project(hi, hi) (-want +got):\n%s", diff)
	}
	// Ticks agree with projection.
	for i, v := range pn.XAxis.Breaks.Transformed {
		want := l.Project(0, v, d.Y.Lo).X - pn.Bounds.X
		if math.Abs(pn.XAxis.TickPositions[i]-want) > 1e-9 {
			t.Errorf("tick %d at %v; want %v", i, pn.XAxis.TickPositions[i], want)
		}
	}
}

func TestLayoutGridFacets(t *testing.T) {
	for _, free := range []bool{false, true} {
		p := samplePlot()
		p.Facets = &facet.Facets{XVar: "g", FreeH: free}
		l, err := p.Layout(600, 300)
		if err != nil {
			t.Fatal(err)
		}
		if len(l.Panels) != 2 {
			t.Fatalf("got %d panels; want 2", len(l.Panels))
		}
		a, b := l.Panels[0], l.Panels[1]
		if a.Bounds.Intersects(b.Bounds) || a.Bounds.Right() > b.Bounds.Left() {
			t.Errorf("panels %v and %v overlap or are out of order", a.Bounds, b.Bounds)
		}
		if math.Abs(a.Bounds.H-b.Bounds.H) > 1e-9 || a.Bounds.Y != b.Bounds.Y {
			t.Errorf("panels in one row differ vertically: %v, %v", a.Bounds, b.Bounds)
		}
		if got := a.Domains.X == b.Domains.X; got == free {
			t.Errorf("free=%v: x domains %v and %v", free, a.Domains.X, b.Domains.X)
		}
		if a.Domains.Y != b.Domains.Y {
			t.Errorf("shared y domains differ: %v, %v", a.Domains.Y, b.Domains.Y)
		}
		// Y is shared, so only the first column shows its axis.
		if a.YAxis == nil || b.YAxis != nil {
			t.Errorf("y axes shown: %v, %v; want first only", a.YAxis != nil, b.YAxis != nil)
		}
		if len(l.Strips) != 2 || l.Strips[0].Text != "a" || l.Strips[1].Text != "b" {
			t.Errorf("strips %+v; want a, b", l.Strips)
		}
		if l.Strips[0].Bounds.Bottom() > a.Bounds.Top()+1e-9 {
			t.Errorf("strip %v not above panel %v", l.Strips[0].Bounds, a.Bounds)
		}
	}
}

func TestLayoutWrapSharedX(t *testing.T) {
	data := table.NewBuilder(nil).
		Add("x", []float64{1, 2, 3}).
		Add("y", []float64{1, 2, 3}).
		Add("g", []string{"a", "b", "c"}).
		Done()
	p := &Plot{
		Data:   data,
		Layers: []*layer.Layer{{Kind: layer.Point, Binding: bind("x", "x", "y", "y")}},
		Facets: &facet.Facets{WrapVar: "g"},
	}
	l, err := p.Layout(400, 400)
	if err != nil {
		t.Fatal(err)
	}
	// 2×2 grid with the last cell empty: tile 1 has no tile below
	// it, so it shows its x axis.
	var shown []bool
	for _, pn := range l.Panels {
		shown = append(shown, pn.XAxis != nil)
	}
	if diff := cmp.Diff([]bool{false, true, true}, shown); diff != "" {
		t.Errorf("x axes shown (-want +got):\n%s", diff)
	}
	if len(l.Strips) != 3 {
		t.Errorf("got %d strips; want 3", len(l.Strips))
	}
}

func TestLayoutTitles(t *testing.T) {
	p := samplePlot()
	p.Title = "Title"
	p.X = scale.New("time", nil)
	p.Y = scale.New("value", nil)
	l, err := p.Layout(500, 300)
	if err != nil {
		t.Fatal(err)
	}
	pn := l.Panels[0]
	if l.Title == nil || l.Title.Bounds.Bottom() > pn.Bounds.Top()+1e-9 {
		t.Errorf("title %+v not above panel %v", l.Title, pn.Bounds)
	}
	if l.XTitle == nil || l.XTitle.Bounds.Top() < pn.Bounds.Bottom()+pn.XAxis.Thickness()-1e-9 {
		t.Errorf("x title %+v overlaps the x axis", l.XTitle)
	}
	if l.YTitle == nil || l.YTitle.Rotation != -90 || l.YTitle.Bounds.Right() > pn.Bounds.Left()-pn.YAxis.Thickness()+1e-9 {
		t.Errorf("y title %+v overlaps the y axis", l.YTitle)
	}
}

func TestLayoutDiscreteAndTime(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	data := table.NewBuilder(nil).
		Add("when", []time.Time{t0, t0.Add(48 * time.Hour)}).
		Add("kind", []string{"b", "a"}).
		Done()
	p := &Plot{
		Data:   data,
		Layers: []*layer.Layer{{Kind: layer.Point, Binding: bind("x", "when", "y", "kind")}},
		X:      scale.New("", scale.NewContinuous(scale.DateTime)),
		Y:      scale.New("", &scale.Discrete{}),
	}
	l, err := p.Layout(500, 300)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, l.Y.Trans().(*scale.Discrete).Levels); diff != "" {
		t.Errorf("y levels (-want +got):\n%s", diff)
	}
	// Two levels at 0 and 1, padded by 0.6.
	if diff := cmp.Diff(span.New(-0.6, 1.6), l.Panels[0].Domains.Y, approx); diff != "" {
		t.Errorf("y domain (-want +got):\n%s", diff)
	}
	x := l.Panels[0].Domains.X
	if lo := float64(t0.Unix()); !(x.Lo < lo && x.Hi > lo+48*3600) {
		t.Errorf("x domain %v does not cover the data", x)
	}
}

func TestLayoutLegend(t *testing.T) {
	p := samplePlot()
	p.Title = "title"
	p.Layers[0].Binding.Columns[aes.Color] = "g"
	l, err := p.Layout(500, 300)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Legend.Boxes) != 1 {
		t.Fatalf("got %d legend boxes; want 1", len(l.Legend.Boxes))
	}
	box := l.Legend.Boxes[0]
	if diff := cmp.Diff([]string{"a", "b"}, box.Box.Labels); diff != "" {
		t.Errorf("legend labels (-want +got):\n%s", diff)
	}
	pn := l.Panels[0]
	if box.Bounds().Left() < pn.Bounds.Right() {
		t.Errorf("right legend %v overlaps panel %v", box.Bounds(), pn.Bounds)
	}
	// Side legends center on the panels, not on the title and axes.
	if got, want := box.Bounds().Center().Y, pn.Bounds.Center().Y; !cmp.Equal(got, want, cmpopts.EquateApprox(0, 1e-9)) {
		t.Errorf("legend center y = %v; want panel center %v", got, want)
	}

	th := theme.Default()
	th.Legend = theme.LegendPosition{Side: theme.None}
	p.Theme = th
	l, err = p.Layout(500, 300)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Legend.Boxes) != 0 {
		t.Errorf("hidden legend has %d boxes", len(l.Legend.Boxes))
	}
}

func TestLayoutErrors(t *testing.T) {
	p := samplePlot()
	if _, err := p.Layout(0, 100); err == nil {
		t.Errorf("Layout(0, 100) succeeded")
	}
	p.Layers[0].Binding.Columns[aes.X] = "nope"
	if _, err := p.Layout(500, 300); !errors.Is(err, aes.ErrUnknownColumn) {
		t.Errorf("unknown column: got %v; want ErrUnknownColumn", err)
	}
	p = samplePlot()
	p.Layers[0].Binding.Columns[aes.X] = "g"
	if _, err := p.Layout(500, 300); !errors.Is(err, aes.ErrNonNumeric) {
		t.Errorf("string column on continuous scale: got %v; want ErrNonNumeric", err)
	}
}

func TestDefaultSize(t *testing.T) {
	for _, test := range []struct {
		f    *facet.Facets
		w, h float64
	}{
		{nil, 500, 500 / 1.5},
		{&facet.Facets{XVar: "a", XLevels: []string{"1", "2"}}, 2 * 500 * 0.75, 500 / 1.5},
		{&facet.Facets{XVar: "a", YVar: "b", XLevels: []string{"1", "2"}, YLevels: []string{"1", "2", "3"}},
			2 * 500 * 0.75, 3 * (500 / 1.5) * (0.5 + 0.5/3)},
	} {
		w, h := DefaultSize(test.f)
		if diff := cmp.Diff([]float64{test.w, test.h}, []float64{w, h}, approx); diff != "" {
			t.Errorf("DefaultSize(%+v) (-want +got):\n%s", test.f, diff)
		}
	}
}

func TestBunch(t *testing.T) {
	var empty Bunch
	if _, err := LayoutBunch(context.Background(), &empty); !errors.Is(err, ErrEmptyBunch) {
		t.Errorf("empty bunch: got %v; want ErrEmptyBunch", err)
	}
	if _, _, err := empty.Size(); !errors.Is(err, ErrEmptyBunch) {
		t.Errorf("empty bunch size: got %v; want ErrEmptyBunch", err)
	}

	b := &Bunch{Items: []BunchItem{
		{Plot: samplePlot(), X: 0, Y: 0, W: 200, H: 100},
		{Plot: samplePlot(), X: 250, Y: 50},
	}}
	w, h, err := b.Size()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{750, 50 + 500/1.5}, []float64{w, h}, approx); diff != "" {
		t.Errorf("bunch size (-want +got):\n%s", diff)
	}
	ls, err := LayoutBunch(context.Background(), b)
	if err != nil {
		t.Fatal(err)
	}
	if len(ls) != 2 || ls[0].Bounds.W != 200 || ls[1].Bounds.W != 500 {
		t.Errorf("bunch layouts have wrong sizes")
	}
}
