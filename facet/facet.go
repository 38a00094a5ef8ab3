// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package facet splits a plot into a grid of tiles by the values of
// data columns and reconciles positional domains across those tiles.
package facet

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotlayout/span"
)

// Sharing controls how a free scale is shared among tiles.
type Sharing int

const (
	// PerTile gives every tile of a free scale its own domain.
	PerTile Sharing = iota

	// PerBand shares a free horizontal domain within each column
	// of the grid and a free vertical domain within each row.
	PerBand
)

// Facets describes how a plot is divided into tiles.
//
// A grid facet sets XVar and/or YVar: tiles are laid out with one
// column per X level and one row per Y level. A wrap facet sets
// WrapVar: tiles, one per level, fill a grid row by row. With no
// variables there is a single tile.
type Facets struct {
	XVar, YVar       string
	XLevels, YLevels []string

	WrapVar    string
	WrapLevels []string
	// Cols and Rows fix the wrap grid. If both are 0, the grid is
	// close to square.
	Cols, Rows int

	// FreeH and FreeV make the horizontal and vertical domains
	// independent between tiles.
	FreeH, FreeV bool
	Sharing      Sharing
}

// Tile is one panel of a faceted plot.
type Tile struct {
	Index    int
	Col, Row int

	// XLabel and YLabel are the grid levels of this tile. For a
	// wrap facet, XLabel is the wrap level.
	XLabel, YLabel string
}

// IsWrap reports whether f is a wrap facet.
func (f *Facets) IsWrap() bool {
	return f != nil && f.WrapVar != ""
}

// IsGrid reports whether f is a grid facet.
func (f *Facets) IsGrid() bool {
	return f != nil && !f.IsWrap() && (f.XVar != "" || f.YVar != "")
}

// Dims returns the number of columns and rows of tiles.
func (f *Facets) Dims() (cols, rows int) {
	switch {
	case f.IsWrap():
		return wrapDims(len(f.WrapLevels), f.Cols, f.Rows)
	case f.IsGrid():
		return max(1, len(f.XLevels)), max(1, len(f.YLevels))
	}
	return 1, 1
}

func wrapDims(n, cols, rows int) (int, int) {
	if n == 0 {
		return 1, 1
	}
	cells := float64(n)
	if cols == 0 {
		if rows == 0 {
			rows = int(math.Ceil(math.Sqrt(cells)))
		}
		cols = int(math.Ceil(cells / float64(rows)))
	}
	rows = int(math.Ceil(cells / float64(cols)))
	return cols, rows
}

// Tiles returns the tiles of f in row-major order.
func (f *Facets) Tiles() []Tile {
	if f.IsWrap() {
		cols, _ := f.Dims()
		tiles := make([]Tile, len(f.WrapLevels))
		for i, l := range f.WrapLevels {
			tiles[i] = Tile{Index: i, Col: i % cols, Row: i / cols, XLabel: l}
		}
		if len(tiles) == 0 {
			return []Tile{{}}
		}
		return tiles
	}
	cols, rows := f.Dims()
	tiles := make([]Tile, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			t := Tile{Index: len(tiles), Col: c, Row: r}
			if f.IsGrid() && c < len(f.XLevels) {
				t.XLabel = f.XLevels[c]
			}
			if f.IsGrid() && r < len(f.YLevels) {
				t.YLabel = f.YLevels[r]
			}
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// WithLevelsFrom returns a copy of f where every faceting variable
// without explicit levels takes its levels from data: the distinct
// values of the column, sorted if they are orderable.
func (f *Facets) WithLevelsFrom(data *table.Table) (*Facets, error) {
	nf := *f
	fill := func(levels *[]string, col string) error {
		if col == "" || len(*levels) > 0 {
			return nil
		}
		ls, err := Levels(data, col)
		*levels = ls
		return err
	}
	if f.IsWrap() {
		if err := fill(&nf.WrapLevels, f.WrapVar); err != nil {
			return nil, err
		}
		return &nf, nil
	}
	if err := fill(&nf.XLevels, f.XVar); err != nil {
		return nil, err
	}
	if err := fill(&nf.YLevels, f.YVar); err != nil {
		return nil, err
	}
	return &nf, nil
}

// Levels returns the distinct values of column col of data as
// strings, in sorted order if the column type is orderable and in
// order of appearance otherwise.
func Levels(data *table.Table, col string) ([]string, error) {
	if data == nil || data.Len() == 0 {
		return nil, nil
	}
	seq := data.Column(col)
	if seq == nil {
		return nil, fmt.Errorf("facet variable %q: unknown column", col)
	}
	vals := slice.Nub(seq)
	if slice.CanSort(vals) {
		// Nub may share the column's backing array.
		v := reflect.ValueOf(vals)
		c := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(c, v)
		vals = c.Interface()
		slice.Sort(vals)
	}
	v := reflect.ValueOf(vals)
	res := make([]string, v.Len())
	for i := range res {
		res[i] = fmt.Sprint(v.Index(i).Interface())
	}
	return res, nil
}

// Split partitions data into one table per tile of f, in tile order.
// Tiles without rows get an empty table with the same columns. Rows
// whose levels are not tiles of f are dropped.
func (f *Facets) Split(data *table.Table) []*table.Table {
	tiles := f.Tiles()
	res := make([]*table.Table, len(tiles))
	var vars []string
	switch {
	case f.IsWrap():
		vars = []string{f.WrapVar}
	case f.IsGrid():
		for _, v := range []string{f.XVar, f.YVar} {
			if v != "" {
				vars = append(vars, v)
			}
		}
	}
	if len(vars) == 0 || data == nil {
		for i := range res {
			res[i] = data
		}
		return res
	}

	index := make(map[string]int)
	for _, t := range tiles {
		index[tileKey(t)] = t.Index
	}
	var g table.Grouping = data
	for _, v := range vars {
		g = table.GroupBy(g, v)
	}
	for _, gid := range g.Tables() {
		// Recover the level of each variable, innermost last.
		labels := make([]string, len(vars))
		for i, id := len(vars)-1, gid; i >= 0; i, id = i-1, id.Parent() {
			labels[i] = fmt.Sprint(id.Label())
		}
		var t Tile
		switch {
		case f.IsWrap():
			t.XLabel = labels[0]
		default:
			i := 0
			if f.XVar != "" {
				t.XLabel, i = labels[0], 1
			}
			if f.YVar != "" {
				t.YLabel = labels[i]
			}
		}
		if ti, ok := index[tileKey(t)]; ok {
			res[ti] = g.Table(gid)
		}
	}
	for i, t := range res {
		if t == nil {
			res[i] = emptyLike(data)
		}
	}
	return res
}

func tileKey(t Tile) string {
	return t.XLabel + "\x00" + t.YLabel
}

// emptyLike returns a table with the columns of t and no rows.
func emptyLike(t *table.Table) *table.Table {
	b := table.NewBuilder(nil)
	for _, col := range t.Columns() {
		typ := reflect.TypeOf(t.Column(col))
		b.Add(col, reflect.MakeSlice(typ, 0, 0).Interface())
	}
	return b.Done()
}

// AdjustHDomains reconciles the per-tile horizontal domains of f.
// Shared scales and free per-tile scales pass through unchanged; a
// free per-band scale shares one domain within each column.
func (f *Facets) AdjustHDomains(ds []*span.Span) []*span.Span {
	if f == nil || !f.FreeH || f.Sharing != PerBand {
		return ds
	}
	return f.shareBands(ds, func(t Tile) int { return t.Col })
}

// AdjustVDomains is AdjustHDomains for vertical domains, shared
// within each row.
func (f *Facets) AdjustVDomains(ds []*span.Span) []*span.Span {
	if f == nil || !f.FreeV || f.Sharing != PerBand {
		return ds
	}
	return f.shareBands(ds, func(t Tile) int { return t.Row })
}

func (f *Facets) shareBands(ds []*span.Span, band func(Tile) int) []*span.Span {
	tiles := f.Tiles()
	if len(tiles) != len(ds) {
		panic(fmt.Sprintf("%d domains for %d tiles", len(ds), len(tiles)))
	}
	shared := make(map[int]*span.Span)
	for i, t := range tiles {
		shared[band(t)] = span.Update(ds[i], shared[band(t)])
	}
	res := make([]*span.Span, len(ds))
	for i, t := range tiles {
		res[i] = shared[band(t)]
	}
	return res
}

// ShowXAxis reports whether tile t draws its horizontal axis. With a
// shared horizontal scale only the lowest tile of each column does.
func (f *Facets) ShowXAxis(t Tile) bool {
	if f == nil || f.FreeH {
		return true
	}
	cols, rows := f.Dims()
	if f.IsWrap() {
		// The tile below may not exist in the last, partial row.
		return t.Index+cols >= len(f.WrapLevels)
	}
	return t.Row == rows-1
}

// ShowYAxis reports whether tile t draws its vertical axis. With a
// shared vertical scale only the first column does.
func (f *Facets) ShowYAxis(t Tile) bool {
	if f == nil || f.FreeV {
		return true
	}
	return t.Col == 0
}
