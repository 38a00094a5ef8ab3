// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package span

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnionSymmetric(t *testing.T) {
	spans := []Span{
		{0, 1}, {-5, -2}, {0.5, 0.5}, {-1, 10}, {3, 4},
	}
	for _, a := range spans {
		for _, b := range spans {
			ab, ba := a.Union(b), b.Union(a)
			if ab != ba {
				t.Errorf("%v.Union(%v) = %v, but reverse = %v", a, b, ab, ba)
			}
			if !ab.Encloses(a) || !ab.Encloses(b) {
				t.Errorf("%v.Union(%v) = %v does not enclose both", a, b, ab)
			}
			// No over-widening: each end is an end of an input.
			if ab.Lo != math.Min(a.Lo, b.Lo) || ab.Hi != math.Max(a.Hi, b.Hi) {
				t.Errorf("%v.Union(%v) = %v is wider than necessary", a, b, ab)
			}
		}
	}
}

func TestEncloseAll(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	for _, test := range []struct {
		in   []float64
		want *Span
	}{
		{nil, nil},
		{[]float64{}, nil},
		{[]float64{nan, inf}, nil},
		{[]float64{3}, &Span{3, 3}},
		{[]float64{3, -1, 2}, &Span{-1, 3}},
		{[]float64{nan, 4, -inf, 1}, &Span{1, 4}},
	} {
		got := EncloseAll(test.in)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("EncloseAll(%v) mismatch (-want +got):\n%s", test.in, diff)
		}
	}
}

func TestUpdateAbsorbsNil(t *testing.T) {
	a := &Span{1, 2}
	if got := Update(nil, a); got != a {
		t.Errorf("Update(nil, a) = %v; want a unchanged", got)
	}
	if got := Update(a, nil); got != a {
		t.Errorf("Update(a, nil) = %v; want a unchanged", got)
	}
	if got := Update(nil, nil); got != nil {
		t.Errorf("Update(nil, nil) = %v; want nil", got)
	}
	if got, want := Update(&Span{5, 6}, a), (&Span{1, 6}); *got != *want {
		t.Errorf("Update = %v; want %v", got, want)
	}
	if got := Enclose(nil, nil); got != nil {
		t.Errorf("Enclose(nil, nil) = %v; want nil", got)
	}
	if got := Enclose(nil, &Span{0, 1}, &Span{-3, -2}); *got != (Span{-3, 1}) {
		t.Errorf("Enclose = %v; want [-3, 1]", got)
	}
}

func TestNewOrders(t *testing.T) {
	if got := New(5, 1); got != (Span{1, 5}) {
		t.Errorf("New(5, 1) = %v", got)
	}
	if got := Singleton(2); got.Len() != 0 || got.Lo != 2 {
		t.Errorf("Singleton(2) = %v", got)
	}
}

func TestExpand(t *testing.T) {
	s := Span{0, 10}
	if got := s.Expand(1, 2); got != (Span{-1, 12}) {
		t.Errorf("Expand(1, 2) = %v", got)
	}
	if got := s.Expand(-6, -6); got != (Span{5, 5}) {
		t.Errorf("Expand(-6, -6) = %v; want collapse to center", got)
	}
}

func TestEnsureApplicable(t *testing.T) {
	for _, test := range []struct {
		r, pref *Span
		want    Span
	}{
		{nil, nil, Span{-0.5, 0.5}},
		{nil, &Span{0, 1}, Span{0, 1}},
		{nil, &Span{2, 2}, Span{1.5, 2.5}},
		{&Span{3, 3}, nil, Span{2.5, 3.5}},
		{&Span{3, 7}, &Span{0, 1}, Span{3, 7}},
	} {
		if got := EnsureApplicable(test.r, test.pref); got != test.want {
			t.Errorf("EnsureApplicable(%v, %v) = %v; want %v", test.r, test.pref, got, test.want)
		}
	}
}
