// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"context"
	"errors"

	"github.com/aclements/go-plotlayout/facet"
	"github.com/aclements/go-plotlayout/geom"
	"golang.org/x/sync/errgroup"
)

const (
	defaultWidth = 500
	aspectRatio  = 3.0 / 2.0
)

// DefaultSize returns the size of a plot with facets f when none is
// given. Each extra column or row of panels adds half a default panel
// width or height, so panels shrink as they multiply.
func DefaultSize(f *facet.Facets) (w, h float64) {
	w, h = defaultWidth, defaultWidth/aspectRatio
	if !f.IsGrid() && !f.IsWrap() {
		return w, h
	}
	cols, rows := f.Dims()
	pw := w * (0.5 + 0.5/float64(cols))
	ph := h * (0.5 + 0.5/float64(rows))
	return pw * float64(cols), ph * float64(rows)
}

// DefaultSize returns the size of p when none is given.
func (p *Plot) DefaultSize() (w, h float64, err error) {
	f, err := p.facets()
	if err != nil {
		return 0, 0, err
	}
	w, h = DefaultSize(f)
	return w, h, nil
}

// ErrEmptyBunch is returned when laying out a bunch with no plots.
var ErrEmptyBunch = errors.New("no plots in the bunch")

// A BunchItem is one plot of a bunch at a fixed position.
type BunchItem struct {
	Plot *Plot
	X, Y float64
	// W and H are the size of the plot. If either is 0, the plot
	// gets its default size.
	W, H float64
}

// A Bunch is a set of independent plots arranged on one canvas.
type Bunch struct {
	Items []BunchItem
}

// Bounds returns the bounds of each item of b.
func (b *Bunch) Bounds() ([]geom.Rect, error) {
	if len(b.Items) == 0 {
		return nil, ErrEmptyBunch
	}
	res := make([]geom.Rect, len(b.Items))
	for i, it := range b.Items {
		w, h := it.W, it.H
		if w == 0 || h == 0 {
			var err error
			if w, h, err = it.Plot.DefaultSize(); err != nil {
				return nil, err
			}
		}
		res[i] = geom.Rect{X: it.X, Y: it.Y, W: w, H: h}
	}
	return res, nil
}

// Size returns the size of the canvas that holds every item of b,
// from the origin.
func (b *Bunch) Size() (w, h float64, err error) {
	bounds, err := b.Bounds()
	if err != nil {
		return 0, 0, err
	}
	var r geom.Rect
	for _, br := range bounds {
		r = r.Union(br)
	}
	return r.W, r.H, nil
}

// LayoutBunch lays out every plot of b concurrently. The layout of
// item i is in its own coordinates, with the origin at the item's
// position.
func LayoutBunch(ctx context.Context, b *Bunch) ([]*Layout, error) {
	bounds, err := b.Bounds()
	if err != nil {
		return nil, err
	}
	res := make([]*Layout, len(b.Items))
	g, ctx := errgroup.WithContext(ctx)
	for i, it := range b.Items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			l, err := it.Plot.Layout(bounds[i].W, bounds[i].H)
			if err != nil {
				return err
			}
			res[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
