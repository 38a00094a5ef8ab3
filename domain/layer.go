// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"fmt"

	"github.com/aclements/go-plotlayout/aes"
	"github.com/aclements/go-plotlayout/geom"
	"github.com/aclements/go-plotlayout/layer"
	"github.com/aclements/go-plotlayout/pos"
	"github.com/aclements/go-plotlayout/span"
)

// DryRun evaluates only the aesthetics of l that determine its
// spatial extent, without scale mappers. Size aesthetics l leaves
// unbound take their kind's default.
func DryRun(l *layer.Layer) (*aes.Aesthetics, error) {
	as, err := aes.Evaluate(l.Data, l.EffectiveBinding(), l.PositionalAes(), nil)
	if err != nil {
		return nil, fmt.Errorf("%v layer: %w", l.Kind, err)
	}
	return as, nil
}

// LayerRanges returns the horizontal and vertical extents of l, whose
// dry-run aesthetics are as. Either range is nil if l has no finite
// positions along that axis.
//
// The extent is the union of the positions after position adjustment
// and the positions widened by size aesthetics such as bar widths.
func LayerRanges(l *layer.Layer, as *aes.Aesthetics) (x, y *span.Span, err error) {
	posX := aes.Filter(as.Aes(), aes.AffectsScaleX)
	posY := aes.Filter(as.Aes(), aes.AffectsScaleY)
	ctx := pos.NewContext(as)

	adj := l.Adjustment()
	if pos.IsIdentity(adj) {
		x, y = CombineRanges(as, posX), CombineRanges(as, posY)
	} else {
		x, y = adjustedRanges(as, posX, posY, adj.Build(as, ctx), ctx)
	}

	sx, err := sizeRange(l, as, ctx, false)
	if err != nil {
		return nil, nil, err
	}
	sy, err := sizeRange(l, as, ctx, true)
	if err != nil {
		return nil, nil, err
	}
	return span.Update(sx, x), span.Update(sy, y), nil
}

// CombineRanges returns the union of the finite values of every
// aesthetic in list, or nil if there are none.
func CombineRanges(as *aes.Aesthetics, list []aes.Aes) *span.Span {
	var r *span.Span
	for _, a := range list {
		r = span.Update(span.EncloseAll(as.Numeric(a)), r)
	}
	return r
}

// adjustedRanges translates every combination of a horizontal and a
// vertical positional aesthetic of every point and returns the bounds
// of the results. A combination counts only if both of its translated
// coordinates are finite. Both ranges are nil if either list is empty.
func adjustedRanges(as *aes.Aesthetics, posX, posY []aes.Aes, adj pos.Adjustment, ctx pos.Context) (x, y *span.Span) {
	var xmin, xmax, ymin, ymax float64
	found := false
	for i := 0; i < as.Len(); i++ {
		p := as.At(i)
		for _, ax := range posX {
			for _, ay := range posY {
				v := adj.Translate(geom.Point{X: p.Num(ax), Y: p.Num(ay)}, p, ctx)
				if !span.IsFinite(v.X) || !span.IsFinite(v.Y) {
					continue
				}
				if !found {
					xmin, xmax, ymin, ymax, found = v.X, v.X, v.Y, v.Y, true
					continue
				}
				xmin, xmax = min(xmin, v.X), max(xmax, v.X)
				ymin, ymax = min(ymin, v.Y), max(ymax, v.Y)
			}
		}
	}
	if !found {
		return nil, nil
	}
	return &span.Span{Lo: xmin, Hi: xmax}, &span.Span{Lo: ymin, Hi: ymax}
}

// sizeRange returns the extent of l's points widened by its size
// aesthetic along one axis: each location extends by resolution*size/2
// on both sides.
func sizeRange(l *layer.Layer, as *aes.Aesthetics, ctx pos.Context, vertical bool) (*span.Span, error) {
	sizeAes, locAes, ok := l.Kind.SizeAes(vertical)
	if !ok || !as.Has(sizeAes) || !as.Has(locAes) {
		return nil, nil
	}
	n := as.Len()
	sizes, locs := as.Numeric(sizeAes), as.Numeric(locAes)
	if len(sizes) < n {
		return nil, fmt.Errorf("%v layer: %w: %d %s values for %d points", l.Kind, ErrAesLength, len(sizes), sizeAes, n)
	}
	if len(locs) < n {
		return nil, fmt.Errorf("%v layer: %w: %d %s values for %d points", l.Kind, ErrAesLength, len(locs), locAes, n)
	}
	res := ctx.Resolution(locAes)
	var r *span.Span
	for i := 0; i < n; i++ {
		loc, size := locs[i], sizes[i]
		if !span.IsFinite(loc) || !span.IsFinite(size) {
			continue
		}
		half := res * size / 2
		s := span.New(loc-half, loc+half)
		r = span.Update(&s, r)
	}
	return r, nil
}
