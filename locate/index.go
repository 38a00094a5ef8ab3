// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locate

import "github.com/aclements/go-plotlayout/geom"

// An Index routes queries over a faceted plot to the panel under the
// query point and searches that panel's layers.
type Index struct {
	panels []panel
}

type panel struct {
	bounds geom.Rect
	layers []*Locator
}

// Add registers a panel with the given bounds and one locator per
// layer, in drawing order.
func (ix *Index) Add(bounds geom.Rect, layers ...*Locator) {
	ix.panels = append(ix.panels, panel{bounds, layers})
}

// IndexResult is a match found through an Index.
type IndexResult struct {
	Result
	Panel, Layer int
}

// Find returns the best match for p among the layers of the first
// panel containing p. Ties go to the earlier layer.
func (ix *Index) Find(p geom.Point) (IndexResult, bool) {
	for pi, pn := range ix.panels {
		if !pn.bounds.Contains(p) {
			continue
		}
		var best IndexResult
		found := false
		for li, l := range pn.layers {
			r, ok := l.Find(p)
			if ok && (!found || r.Distance < best.Distance) {
				best = IndexResult{r, pi, li}
				found = true
			}
		}
		return best, found
	}
	return IndexResult{}, false
}
