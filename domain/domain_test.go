// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotlayout/aes"
	"github.com/aclements/go-plotlayout/facet"
	"github.com/aclements/go-plotlayout/layer"
	"github.com/aclements/go-plotlayout/pos"
	"github.com/aclements/go-plotlayout/scale"
	"github.com/aclements/go-plotlayout/span"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func xyLayer(kind layer.Kind, xs, ys []float64) *layer.Layer {
	data := table.NewBuilder(nil).Add("x", xs).Add("y", ys).Done()
	return &layer.Layer{
		Kind:    kind,
		Data:    data,
		Binding: aes.Binding{Columns: map[aes.Aes]string{aes.X: "x", aes.Y: "y"}},
	}
}

func TestCombineRangesEmpty(t *testing.T) {
	as := aes.New(0)
	if r := CombineRanges(as, nil); r != nil {
		t.Errorf("CombineRanges(no aesthetics) = %v; want nil", r)
	}
	as.Set(aes.X, []float64{})
	if r := CombineRanges(as, []aes.Aes{aes.X}); r != nil {
		t.Errorf("CombineRanges(empty X) = %v; want nil", r)
	}
}

func TestSizeExpansion(t *testing.T) {
	l := xyLayer(layer.Bar, []float64{10}, []float64{3})
	l.Binding.Consts = map[aes.Aes]interface{}{aes.Width: 2.0}
	as, err := DryRun(l)
	if err != nil {
		t.Fatal(err)
	}
	x, _, err := LayerRanges(l, as)
	if err != nil {
		t.Fatal(err)
	}
	if want := (span.Span{Lo: 9, Hi: 11}); x == nil || *x != want {
		t.Errorf("bar x range = %v; want %v", x, want)
	}
}

func TestDefaultSizeExpansion(t *testing.T) {
	bars := xyLayer(layer.Bar, []float64{1, 2, 3}, []float64{1, 2, 3})
	tiles := xyLayer(layer.Tile, []float64{1, 2, 3}, []float64{1, 2, 3})
	for _, test := range []struct {
		name  string
		l     *layer.Layer
		wantX span.Span
		wantY span.Span
	}{
		// Width 0.9 at resolution 1, then padded by 5%.
		{"bar", bars, span.Span{Lo: 0.405, Hi: 3.595}, span.Span{Lo: 0, Hi: 3.15}},
		// Width and height 1.
		{"tile", tiles, span.Span{Lo: 0.35, Hi: 3.65}, span.Span{Lo: 0.35, Hi: 3.65}},
	} {
		doms, err := Resolve([][]*layer.Layer{{test.l}}, nil, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !cmp.Equal(test.wantX, doms[0].X, approx) {
			t.Errorf("%s x = %v; want %v", test.name, doms[0].X, test.wantX)
		}
		if !cmp.Equal(test.wantY, doms[0].Y, approx) {
			t.Errorf("%s y = %v; want %v", test.name, doms[0].Y, test.wantY)
		}
	}
}

func TestAdjustedRangesNonFinite(t *testing.T) {
	l := xyLayer(layer.Point, []float64{1, 5, 2}, []float64{1, math.NaN(), 3})
	l.Pos = pos.Nudge{X: 0.5}
	as, err := DryRun(l)
	if err != nil {
		t.Fatal(err)
	}
	x, y, err := LayerRanges(l, as)
	if err != nil {
		t.Fatal(err)
	}
	// The row with a NaN y contributes no x.
	if want := (span.Span{Lo: 1.5, Hi: 2.5}); x == nil || !cmp.Equal(want, *x, approx) {
		t.Errorf("x = %v; want %v", x, want)
	}
	if want := (span.Span{Lo: 1, Hi: 3}); y == nil || !cmp.Equal(want, *y, approx) {
		t.Errorf("y = %v; want %v", y, want)
	}

	// No vertical positional aesthetic: no combinations at all.
	v := &layer.Layer{
		Kind:    layer.VLine,
		Data:    table.NewBuilder(nil).Add("x", []float64{1, 2}).Done(),
		Binding: aes.Binding{Columns: map[aes.Aes]string{aes.XIntercept: "x"}},
		Pos:     pos.Nudge{X: 1},
	}
	as, err = DryRun(v)
	if err != nil {
		t.Fatal(err)
	}
	if x, y, err := LayerRanges(v, as); err != nil || x != nil || y != nil {
		t.Errorf("vline ranges = %v, %v, %v; want nil, nil", x, y, err)
	}
}

func TestSizeLengthMismatch(t *testing.T) {
	l := &layer.Layer{Kind: layer.Bar}
	as := aes.New(3)
	as.Set(aes.X, []float64{1, 2, 3})
	as.Set(aes.Width, []float64{1})
	if _, _, err := LayerRanges(l, as); !errors.Is(err, ErrAesLength) {
		t.Errorf("short width: got error %v; want ErrAesLength", err)
	}

	as = aes.New(3)
	as.Set(aes.X, []float64{1, 2})
	as.Set(aes.Width, []float64{1, 1, 1})
	if _, _, err := LayerRanges(l, as); !errors.Is(err, ErrAesLength) {
		t.Errorf("short x: got error %v; want ErrAesLength", err)
	}
}

func TestZeroInclusion(t *testing.T) {
	r := ExpandRange(&span.Span{Lo: 5, Hi: 10}, true, scale.Expand{})
	if want := (span.Span{Lo: 0, Hi: 10}); *r != want {
		t.Errorf("zero-inclusive range = %v; want %v", r, want)
	}
	// Padding applies only to the end away from zero.
	r = ExpandRange(&span.Span{Lo: 5, Hi: 10}, true, scale.Expand{Mult: 0.1})
	if want := (span.Span{Lo: 0, Hi: 11}); *r != want {
		t.Errorf("padded zero-inclusive range = %v; want %v", r, want)
	}
	r = ExpandRange(&span.Span{Lo: -4, Hi: -2}, true, scale.Expand{Add: 1})
	if want := (span.Span{Lo: -5, Hi: 0}); *r != want {
		t.Errorf("negative zero-inclusive range = %v; want %v", r, want)
	}
	if r := ExpandRange(nil, false, scale.Expand{Add: 1}); r != nil {
		t.Errorf("ExpandRange(nil, false) = %v; want nil", r)
	}
	if r := ExpandRange(nil, true, scale.Expand{Add: 1}); r == nil || *r != span.Singleton(0) {
		t.Errorf("ExpandRange(nil, true) = %v; want [0, 0]", r)
	}

	doms, err := Resolve([][]*layer.Layer{{xyLayer(layer.Bar, []float64{1, 2}, []float64{5, 10})}}, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := (span.Span{Lo: 0, Hi: 10.5}); !cmp.Equal(want, doms[0].Y, approx) {
		t.Errorf("bar y domain = %v; want %v", doms[0].Y, want)
	}
}

func TestFreeAndSharedScales(t *testing.T) {
	tiles := [][]*layer.Layer{
		{xyLayer(layer.Point, []float64{0, 1}, []float64{0, 1})},
		{xyLayer(layer.Point, []float64{10, 20}, []float64{0, 1})},
	}
	f := &facet.Facets{WrapVar: "g", WrapLevels: []string{"a", "b"}, FreeH: true}

	doms, err := Resolve(tiles, nil, nil, f)
	if err != nil {
		t.Fatal(err)
	}
	wantX := []span.Span{{Lo: -0.05, Hi: 1.05}, {Lo: 9.5, Hi: 20.5}}
	for i, d := range doms {
		if !cmp.Equal(wantX[i], d.X, approx) {
			t.Errorf("free tile %d: x = %v; want %v", i, d.X, wantX[i])
		}
	}
	if doms[0].Y != doms[1].Y {
		t.Errorf("shared y differs between tiles: %v vs %v", doms[0].Y, doms[1].Y)
	}

	f.FreeH = false
	doms, err = Resolve(tiles, nil, nil, f)
	if err != nil {
		t.Fatal(err)
	}
	want := span.Span{Lo: -1, Hi: 21}
	for i, d := range doms {
		if !cmp.Equal(want, d.X, approx) {
			t.Errorf("shared tile %d: x = %v; want %v", i, d.X, want)
		}
	}
}

func TestStackedBars(t *testing.T) {
	l := xyLayer(layer.Bar, []float64{1, 1, 2}, []float64{2, 3, 4})
	l.Binding.Consts = map[aes.Aes]interface{}{aes.Width: 0.9}
	l.Pos = pos.Stack{}
	doms, err := Resolve([][]*layer.Layer{{l}}, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := (span.Span{Lo: 0, Hi: 5.25}); !cmp.Equal(want, doms[0].Y, approx) {
		t.Errorf("stacked y = %v; want %v", doms[0].Y, want)
	}
	// [0.55, 2.45] padded by 5%.
	if want := (span.Span{Lo: 0.455, Hi: 2.545}); !cmp.Equal(want, doms[0].X, approx) {
		t.Errorf("stacked x = %v; want %v", doms[0].X, want)
	}
}

func TestInitialRange(t *testing.T) {
	xs := scale.New("", &scale.Discrete{Levels: []string{"a", "b", "c", "d"}})
	ys := scale.New("", scale.NewContinuous(scale.Identity).WithLimits(0, 100))
	l := xyLayer(layer.Point, []float64{1}, []float64{40})
	doms, err := Resolve([][]*layer.Layer{{l}}, xs, ys, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := (span.Span{Lo: -0.6, Hi: 3.6}); !cmp.Equal(want, doms[0].X, approx) {
		t.Errorf("discrete x = %v; want %v", doms[0].X, want)
	}
	if want := (span.Span{Lo: -5, Hi: 105}); !cmp.Equal(want, doms[0].Y, approx) {
		t.Errorf("limited y = %v; want %v", doms[0].Y, want)
	}
}

func TestUndefinedDomains(t *testing.T) {
	empty := xyLayer(layer.Point, []float64{}, []float64{})
	doms, err := Resolve([][]*layer.Layer{{empty}}, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := (span.Span{Lo: -0.5, Hi: 0.5}); doms[0].X != want || doms[0].Y != want {
		t.Errorf("empty layer domains = %+v; want %v", doms[0], want)
	}

	dots := &layer.Layer{
		Kind:    layer.DotPlot,
		Data:    table.NewBuilder(nil).Add("x", []float64{}).Done(),
		Binding: aes.Binding{Columns: map[aes.Aes]string{aes.X: "x"}},
	}
	doms, err = Resolve([][]*layer.Layer{{dots}}, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Zero inclusion comes before the preferable domain.
	if want := (span.Span{Lo: -0.5, Hi: 0.5}); doms[0].Y != want {
		t.Errorf("dotplot y = %v; want %v", doms[0].Y, want)
	}

	doms, err = Resolve([][]*layer.Layer{{xyLayer(layer.Bar, []float64{}, []float64{})}}, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := (span.Span{Lo: -0.5, Hi: 0.5}); doms[0].X != want || doms[0].Y != want {
		t.Errorf("empty bar domains = %+v; want %v", doms[0], want)
	}

	// A single point gets a unit domain around it.
	doms, err = Resolve([][]*layer.Layer{{xyLayer(layer.Point, []float64{3}, []float64{7})}}, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := (span.Span{Lo: 2.5, Hi: 3.5}); doms[0].X != want {
		t.Errorf("singleton x = %v; want %v", doms[0].X, want)
	}
}

func TestFreeEmptyTile(t *testing.T) {
	dots := &layer.Layer{
		Kind:    layer.DotPlot,
		Data:    table.NewBuilder(nil).Add("x", []float64{}).Done(),
		Binding: aes.Binding{Columns: map[aes.Aes]string{aes.X: "x"}},
	}
	tiles := [][]*layer.Layer{
		{dots},
		{xyLayer(layer.Bar, []float64{1, 2}, []float64{5, 10})},
	}
	f := &facet.Facets{WrapVar: "g", WrapLevels: []string{"a", "b"}, FreeV: true}
	doms, err := Resolve(tiles, nil, nil, f)
	if err != nil {
		t.Fatal(err)
	}
	if want := (span.Span{Lo: -0.5, Hi: 0.5}); doms[0].Y != want {
		t.Errorf("empty free tile y = %v; want %v", doms[0].Y, want)
	}
	if want := (span.Span{Lo: 0, Hi: 10.5}); !cmp.Equal(want, doms[1].Y, approx) {
		t.Errorf("bar tile y = %v; want %v", doms[1].Y, want)
	}
}

func TestFinalizePreferable(t *testing.T) {
	s := scale.New("", nil)
	// A layer with a preferable domain but no zero inclusion along x.
	layers := [][]*layer.Layer{{{Kind: layer.DotPlot}}}
	pref := &span.Span{Lo: 2, Hi: 4}
	if got := finalizeOne(nil, layers[0], s, false, pref); got != *pref {
		t.Errorf("finalizeOne with preferable = %v; want %v", got, *pref)
	}
	if got := finalize([]*span.Span{nil}, layers, s, true, true); got[0] != (span.Span{Lo: -0.5, Hi: 0.5}) {
		t.Errorf("free finalize = %v; want [-0.5, 0.5]", got[0])
	}
}

func TestResolveErrors(t *testing.T) {
	if _, err := Resolve(nil, nil, nil, nil); !errors.Is(err, ErrNoTiles) {
		t.Errorf("no tiles: got %v; want ErrNoTiles", err)
	}
	bad := xyLayer(layer.Point, []float64{1}, []float64{1})
	bad.Binding.Columns[aes.Y] = "missing"
	if _, err := Resolve([][]*layer.Layer{{bad}}, nil, nil, nil); !errors.Is(err, aes.ErrUnknownColumn) {
		t.Errorf("unknown column: got %v; want ErrUnknownColumn", err)
	}
}
