// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pos

import (
	"math"
	"testing"

	"github.com/aclements/go-plotlayout/aes"
	"github.com/aclements/go-plotlayout/geom"
)

func points(xs, ys []float64, groups []string) *aes.Aesthetics {
	as := aes.New(len(xs))
	as.Set(aes.X, xs)
	as.Set(aes.Y, ys)
	if groups != nil {
		as.Set(aes.Group, groups)
	}
	return as
}

func translateAll(b Builder, as *aes.Aesthetics) []geom.Point {
	ctx := NewContext(as)
	adj := b.Build(as, ctx)
	var res []geom.Point
	for i := 0; i < as.Len(); i++ {
		p := as.At(i)
		res = append(res, adj.Translate(geom.Point{X: p.Num(aes.X), Y: p.Num(aes.Y)}, p, ctx))
	}
	return res
}

func TestResolution(t *testing.T) {
	for _, test := range []struct {
		in   []float64
		want float64
	}{
		{nil, 1},
		{[]float64{5, 5, 5}, 1},
		{[]float64{3, 1, 2, 2.5}, 0.5},
		{[]float64{0, math.NaN(), 10}, 10},
	} {
		if got := Resolution(test.in); got != test.want {
			t.Errorf("Resolution(%v) = %v; want %v", test.in, got, test.want)
		}
	}
}

func TestStack(t *testing.T) {
	as := points([]float64{1, 1, 2, 1}, []float64{2, 3, 5, -1}, nil)
	got := translateAll(Stack{}, as)
	want := []float64{2, 5, 5, -1}
	for i, p := range got {
		if p.Y != want[i] {
			t.Errorf("point %d: stacked y = %v; want %v", i, p.Y, want[i])
		}
	}

	got = translateAll(Fill{}, as)
	want = []float64{0.4, 1, 1, -1}
	for i, p := range got {
		if math.Abs(p.Y-want[i]) > 1e-12 {
			t.Errorf("point %d: filled y = %v; want %v", i, p.Y, want[i])
		}
	}
}

func TestDodge(t *testing.T) {
	as := points([]float64{1, 1, 2}, []float64{1, 1, 1}, []string{"a", "b", "a"})
	got := translateAll(Dodge{Width: 1}, as)
	want := []float64{0.75, 1.25, 2}
	for i, p := range got {
		if math.Abs(p.X-want[i]) > 1e-12 {
			t.Errorf("point %d: dodged x = %v; want %v", i, p.X, want[i])
		}
	}
}

func TestJitterDeterministic(t *testing.T) {
	as := points([]float64{1, 2, 3}, []float64{1, 2, 3}, nil)
	a := translateAll(Jitter{Seed: 7}, as)
	b := translateAll(Jitter{Seed: 7}, as)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("point %d: jitter not deterministic: %v vs %v", i, a[i], b[i])
		}
		if d := math.Abs(a[i].X - float64(i+1)); d > 0.4 {
			t.Errorf("point %d: jitter %v exceeds width", i, d)
		}
		if a[i].Y != float64(i+1) {
			t.Errorf("point %d: y jittered with zero height", i)
		}
	}
}

func TestIsIdentity(t *testing.T) {
	for _, test := range []struct {
		b    Builder
		want bool
	}{
		{nil, true},
		{Identity, true},
		{Nudge{}, true},
		{Nudge{X: 1}, false},
		{Stack{}, false},
		{Dodge{}, false},
	} {
		if got := IsIdentity(test.b); got != test.want {
			t.Errorf("IsIdentity(%#v) = %v; want %v", test.b, got, test.want)
		}
	}
}
