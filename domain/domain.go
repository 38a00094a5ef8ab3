// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package domain resolves the positional domains of every tile of a
// plot from its layers, scales and facets.
//
// Resolution works in the transformed domain. For each tile, the
// extents of every layer are unioned with the scale's initial range.
// The facets then reconcile the per-tile domains, which are finally
// expanded (including zero where a layer requires it, then padding by
// the scale's expander) and made applicable, so that layout never
// sees an undefined or zero-length domain.
package domain

import (
	"errors"
	"fmt"
	"os"

	"github.com/aclements/go-plotlayout/aes"
	"github.com/aclements/go-plotlayout/facet"
	"github.com/aclements/go-plotlayout/layer"
	"github.com/aclements/go-plotlayout/scale"
	"github.com/aclements/go-plotlayout/span"
	"github.com/charmbracelet/log"
)

var (
	// ErrAesLength is returned when a size or location aesthetic
	// has fewer values than the layer has data points.
	ErrAesLength = aes.ErrLength

	// ErrNoTiles is returned when there are no tiles to resolve.
	ErrNoTiles = errors.New("no tiles")
)

// Warning logs non-fatal oddities found during resolution.
var Warning = log.NewWithOptions(os.Stderr, log.Options{Prefix: "domain"})

// TileDomains are the final domains of one tile.
type TileDomains struct {
	X, Y span.Span
}

// Resolve returns the final horizontal and vertical domains of each
// tile in layersByTile, in the same order. xScale and yScale may be
// nil for default continuous scales; facets may be nil for a plot
// with one tile.
func Resolve(layersByTile [][]*layer.Layer, xScale, yScale *scale.Scale, facets *facet.Facets) ([]TileDomains, error) {
	if len(layersByTile) == 0 {
		return nil, ErrNoTiles
	}

	xInit := initialRange(xScale.Trans())
	yInit := initialRange(yScale.Trans())
	xs := make([]*span.Span, len(layersByTile))
	ys := make([]*span.Span, len(layersByTile))
	for i, layers := range layersByTile {
		x, y := xInit, yInit
		for _, l := range layers {
			as, err := DryRun(l)
			if err != nil {
				return nil, fmt.Errorf("tile %d: %w", i, err)
			}
			lx, ly, err := LayerRanges(l, as)
			if err != nil {
				return nil, fmt.Errorf("tile %d: %w", i, err)
			}
			x, y = span.Update(lx, x), span.Update(ly, y)
		}
		xs[i], ys[i] = x, y
	}

	xs = facets.AdjustHDomains(xs)
	ys = facets.AdjustVDomains(ys)

	freeH := facets != nil && facets.FreeH
	freeV := facets != nil && facets.FreeV
	xFinal := finalize(xs, layersByTile, xScale, false, freeH)
	yFinal := finalize(ys, layersByTile, yScale, true, freeV)

	res := make([]TileDomains, len(layersByTile))
	for i := range res {
		res[i] = TileDomains{xFinal[i], yFinal[i]}
	}
	return res, nil
}

// initialRange returns the range every tile's domain starts from: the
// finite limits of a continuous transform, or the whole effective
// domain of a discrete one.
func initialRange(t scale.Transform) *span.Span {
	switch t := t.(type) {
	case *scale.Continuous:
		return span.EncloseAll(t.DefinedLimits())
	case *scale.Discrete:
		return span.EncloseAll(t.EffectiveDomainTransformed())
	}
	panic(fmt.Sprintf("unknown transform %T", t))
}

// finalize turns raw per-tile domains into final domains. A free axis
// finalizes each tile on its own; a shared axis finalizes the union
// of all tiles once, deciding zero inclusion and the fallback domain
// from the first tile's layers. Only a shared axis falls back to the
// layers' preferable domain when there is no finite data.
func finalize(ds []*span.Span, layersByTile [][]*layer.Layer, s *scale.Scale, vertical, free bool) []span.Span {
	res := make([]span.Span, len(ds))
	if free {
		for i, d := range ds {
			res[i] = finalizeOne(d, layersByTile[i], s, vertical, nil)
		}
		return res
	}
	var preferable *span.Span
	for _, l := range layersByTile[0] {
		preferable = span.Update(l.Kind.PreferableNullDomain(vertical), preferable)
	}
	d := finalizeOne(span.Enclose(ds...), layersByTile[0], s, vertical, preferable)
	for i := range res {
		res[i] = d
	}
	return res
}

func finalizeOne(d *span.Span, layers []*layer.Layer, s *scale.Scale, vertical bool, preferable *span.Span) span.Span {
	includeZero := false
	for _, l := range layers {
		includeZero = includeZero || l.Kind.IncludesZero(vertical)
	}
	if d == nil && len(layers) > 0 {
		Warning.Debug("no finite data", "vertical", vertical, "includeZero", includeZero, "fallback", preferable)
	}
	return span.EnsureApplicable(ExpandRange(d, includeZero, s.Expansion()), preferable)
}

// ExpandRange returns r extended to include zero, if includeZero is
// set, and then padded by e. An end that sits at zero because of zero
// inclusion is not padded. A nil r becomes [0, 0] if includeZero is
// set and otherwise stays nil.
func ExpandRange(r *span.Span, includeZero bool, e scale.Expander) *span.Span {
	if includeZero {
		r = span.Update(span.Singleton(0).Ptr(), r)
	}
	if r == nil {
		return nil
	}
	d := *r
	lower, upper := e.Padding(d)
	if includeZero {
		if d.Lo == 0 {
			lower = 0
		}
		if d.Hi == 0 {
			upper = 0
		}
	}
	res := d.Expand(lower, upper)
	return &res
}
