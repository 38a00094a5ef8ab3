// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"reflect"
	"time"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotlayout/aes"
	"github.com/aclements/go-plotlayout/facet"
	"github.com/aclements/go-plotlayout/layer"
	"github.com/aclements/go-plotlayout/scale"
)

// axisScale pairs a positional scale with the aesthetics it covers.
type axisScale struct {
	name    string
	scale   *scale.Scale
	affects func(aes.Aes) bool
}

// dataOf returns the data table of layer l.
func (p *Plot) dataOf(l *layer.Layer) *table.Table {
	if l.Data != nil {
		return l.Data
	}
	return p.Data
}

// withLevels returns s with the levels of a discrete transform filled
// in from the columns of layers bound to aesthetics for which affects
// is true. Levels appear in the order they are first found.
func (p *Plot) withLevels(s *scale.Scale, affects func(aes.Aes) bool) (*scale.Scale, error) {
	d, ok := s.Trans().(*scale.Discrete)
	if !ok || len(d.Levels) > 0 {
		return s, nil
	}
	var levels []string
	seen := make(map[string]bool)
	for i, l := range p.Layers {
		data := p.dataOf(l)
		for _, a := range aes.All() {
			col, ok := l.Binding.Columns[a]
			if !ok || !affects(a) {
				continue
			}
			ls, err := facet.Levels(data, col)
			if err != nil {
				return nil, fmt.Errorf("layer %d: %w", i, err)
			}
			for _, lv := range ls {
				if !seen[lv] {
					seen[lv] = true
					levels = append(levels, lv)
				}
			}
		}
	}
	nd := *d
	nd.Levels = levels
	ns := *s
	ns.Transform = &nd
	return &ns, nil
}

// transformLayer returns a copy of l whose positional aesthetics are
// bound to transformed copies of their columns and constants.
func (p *Plot) transformLayer(l *layer.Layer, axes []axisScale) (*layer.Layer, error) {
	data := p.dataOf(l)
	if data == nil {
		return nil, fmt.Errorf("%v layer has no data", l.Kind)
	}
	nl := *l
	nl.Data = data
	nl.Binding = aes.Binding{
		Columns: make(map[aes.Aes]string),
		Consts:  make(map[aes.Aes]interface{}),
	}
	b := table.NewBuilder(data)
	for _, a := range aes.All() {
		var ax *axisScale
		for i := range axes {
			if axes[i].affects(a) {
				ax = &axes[i]
				break
			}
		}
		if col, ok := l.Binding.Columns[a]; ok {
			nl.Binding.Columns[a] = col
			if ax == nil {
				continue
			}
			name := ax.name + ":" + col
			nl.Binding.Columns[a] = name
			if data.Column(name) != nil {
				continue
			}
			seq := data.Column(col)
			if seq == nil {
				if data.Len() == 0 {
					continue
				}
				return nil, fmt.Errorf("aesthetic %s: %w %q", a, aes.ErrUnknownColumn, col)
			}
			vals, err := transformColumn(seq, ax.scale.Trans())
			if err != nil {
				return nil, fmt.Errorf("aesthetic %s: column %q: %w", a, col, err)
			}
			b.Add(name, vals)
			data = b.Done()
			b = table.NewBuilder(data)
		} else if v, ok := l.Binding.Consts[a]; ok {
			if ax != nil {
				vals, err := transformColumn(broadcastOne(v), ax.scale.Trans())
				if err != nil {
					return nil, fmt.Errorf("aesthetic %s: %w", a, err)
				}
				v = vals[0]
			}
			nl.Binding.Consts[a] = v
		}
	}
	nl.Data = data
	return &nl, nil
}

func broadcastOne(v interface{}) table.Slice {
	s := reflect.MakeSlice(reflect.SliceOf(reflect.TypeOf(v)), 1, 1)
	s.Index(0).Set(reflect.ValueOf(v))
	return s.Interface()
}

// transformColumn maps seq into the transformed domain of t. Discrete
// transforms take the string form of each value; continuous ones take
// numbers, or times as seconds since the Unix epoch.
func transformColumn(seq table.Slice, t scale.Transform) ([]float64, error) {
	switch t := t.(type) {
	case *scale.Discrete:
		v := reflect.ValueOf(seq)
		out := make([]float64, v.Len())
		for i := range out {
			out[i] = t.Apply(fmt.Sprint(v.Index(i).Interface()))
		}
		return out, nil
	case *scale.Continuous:
		out, err := numeric(seq)
		if err != nil {
			return nil, err
		}
		for i, x := range out {
			out[i] = t.Apply(x)
		}
		return out, nil
	}
	panic(fmt.Sprintf("unknown transform %T", t))
}

// numeric returns a fresh []float64 copy of seq.
func numeric(seq table.Slice) ([]float64, error) {
	if ts, ok := seq.([]time.Time); ok {
		out := make([]float64, len(ts))
		for i, t := range ts {
			out[i] = float64(t.UnixNano()) / 1e9
		}
		return out, nil
	}
	switch reflect.TypeOf(seq).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
	default:
		return nil, fmt.Errorf("%w: %T on a continuous scale", aes.ErrNonNumeric, seq)
	}
	if f, ok := seq.([]float64); ok {
		return append([]float64(nil), f...), nil
	}
	var out []float64
	slice.Convert(&out, seq)
	return out, nil
}

// tileLayers splits every layer's data by the facets and returns the
// layers of each tile, in tile order.
func tileLayers(layers []*layer.Layer, f *facet.Facets) [][]*layer.Layer {
	res := make([][]*layer.Layer, len(f.Tiles()))
	for _, l := range layers {
		for i, data := range f.Split(l.Data) {
			res[i] = append(res[i], l.WithData(data))
		}
	}
	return res
}
