// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotlayout/aes"
	"github.com/aclements/go-plotlayout/bench"
	"github.com/aclements/go-plotlayout/facet"
	"github.com/aclements/go-plotlayout/layer"
	"github.com/aclements/go-plotlayout/plot"
	"github.com/aclements/go-plotlayout/scale"
	"github.com/kballard/go-shellquote"
)

// plotFlags are the flags that shape the plot.
type plotFlags struct {
	layers         []string
	x              string
	xScale, yScale string

	cols, rows, wrap string
	wrapCols         int
	freeX, freeY     bool
	perBand          bool
}

// filterFlags select the benchmarks to plot.
type filterFlags struct {
	name  string
	where []string
}

// filter returns the benchmarks of bs whose name matches f.name and
// whose raw configuration matches every key=value of f.where.
func (f *filterFlags) filter(bs []*bench.Benchmark) ([]*bench.Benchmark, error) {
	var re *regexp.Regexp
	if f.name != "" {
		var err error
		if re, err = regexp.Compile(f.name); err != nil {
			return nil, fmt.Errorf("bad name filter: %w", err)
		}
	}
	conds := make(map[string]string)
	for _, w := range f.where {
		k, v, ok := strings.Cut(w, "=")
		if !ok {
			return nil, fmt.Errorf("bad condition %q: want key=value", w)
		}
		conds[k] = v
	}

	var out []*bench.Benchmark
next:
	for _, b := range bs {
		if re != nil && !re.MatchString(b.Name) {
			continue
		}
		for k, v := range conds {
			if c := b.Config[k]; c == nil || c.RawValue != v {
				continue next
			}
		}
		out = append(out, b)
	}
	return out, nil
}

// buildPlot describes a plot of the benchmark table tab.
func buildPlot(tab *table.Table, f *plotFlags) (*plot.Plot, error) {
	descs := f.layers
	if len(descs) == 0 {
		descs = []string{shellquote.Join("point", "x="+f.x, "y="+bench.ValueCol)}
	}
	p := &plot.Plot{Data: tab}
	for _, d := range descs {
		l, err := parseLayer(d)
		if err != nil {
			return nil, err
		}
		p.Layers = append(p.Layers, l)
	}

	var err error
	if p.X, err = newScale(tab, p.Layers[0], aes.X, f.xScale); err != nil {
		return nil, err
	}
	if p.Y, err = newScale(tab, p.Layers[0], aes.Y, f.yScale); err != nil {
		return nil, err
	}
	if p.Facets, err = f.facets(); err != nil {
		return nil, err
	}
	return p, nil
}

// newScale returns the scale of aesthetic a, titled after the column
// l binds to it. kind names a continuous transform or "discrete"; if
// it is empty, the column type decides.
func newScale(tab *table.Table, l *layer.Layer, a aes.Aes, kind string) (*scale.Scale, error) {
	col := l.Binding.Columns[a]
	switch kind {
	case "":
		switch tab.Column(col).(type) {
		case []string:
			return scale.New(col, &scale.Discrete{}), nil
		case []time.Time:
			return scale.New(col, scale.NewContinuous(scale.DateTime)), nil
		}
		return scale.New(col, nil), nil
	case "discrete":
		return scale.New(col, &scale.Discrete{}), nil
	}
	t, err := scale.ParseContinuous(kind)
	if err != nil {
		return nil, fmt.Errorf("%v scale: %w", a, err)
	}
	return scale.New(col, t), nil
}

func (f *plotFlags) facets() (*facet.Facets, error) {
	if f.wrap != "" && (f.cols != "" || f.rows != "") {
		return nil, fmt.Errorf("--wrap cannot be combined with --cols or --rows")
	}
	rows := f.rows
	if f.wrap == "" && f.cols == "" && rows == "" {
		rows = bench.UnitCol
	}
	fs := &facet.Facets{
		XVar:    f.cols,
		YVar:    rows,
		WrapVar: f.wrap,
		Cols:    f.wrapCols,
		FreeH:   f.freeX,
		FreeV:   f.freeY,
	}
	if f.perBand {
		fs.Sharing = facet.PerBand
	}
	return fs, nil
}

// parseSize parses a WxH plot size.
func parseSize(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(s, "x")
	if ok {
		w, err = strconv.ParseFloat(ws, 64)
		if err == nil {
			h, err = strconv.ParseFloat(hs, 64)
		}
	}
	if !ok || err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("bad size %q: want WxH", s)
	}
	return w, h, nil
}

// parsePoint parses an X,Y query point.
func parsePoint(s string) (x, y float64, err error) {
	xs, ys, ok := strings.Cut(s, ",")
	if ok {
		x, err = strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err == nil {
			y, err = strconv.ParseFloat(strings.TrimSpace(ys), 64)
		}
	}
	if !ok || err != nil {
		return 0, 0, fmt.Errorf("bad point %q: want X,Y", s)
	}
	return x, y, nil
}
