// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/aclements/go-gg/table"
)

// Columns of the tables built by ToTable.
const (
	NameCol  = "name"
	UnitCol  = "unit"
	ValueCol = "value"
)

// ToTable returns bs as a long table with one row per (benchmark,
// unit) pair. Besides the name, unit and value columns, it has one
// column per configuration key in sorted order. A configuration
// column holds the parsed values if ParseValues gave every value of
// that key the same type, and the raw strings otherwise. Benchmarks
// that lack a key get the zero value.
func ToTable(bs []*Benchmark) (*table.Table, error) {
	keys := make(map[string]bool)
	for _, b := range bs {
		for k := range b.Config {
			keys[k] = true
		}
	}
	for _, k := range []string{NameCol, UnitCol, ValueCol} {
		if keys[k] {
			return nil, fmt.Errorf("configuration key %q collides with a result column", k)
		}
	}

	// rows[i] is the benchmark of row i.
	var (
		rows   []*Benchmark
		names  []string
		units  []string
		values []float64
	)
	for _, b := range bs {
		for _, u := range slices.SortedFunc(maps.Keys(b.Result), compareUnits) {
			rows = append(rows, b)
			names = append(names, b.Name)
			units = append(units, u)
			values = append(values, b.Result[u])
		}
	}

	tb := new(table.Builder).Add(NameCol, names)
	for _, k := range slices.Sorted(maps.Keys(keys)) {
		tb.Add(k, configColumn(rows, k))
	}
	return tb.Add(UnitCol, units).Add(ValueCol, values).Done(), nil
}

// configColumn returns the values of key k for each row.
func configColumn(rows []*Benchmark, k string) table.Slice {
	var typ reflect.Type
	for _, b := range rows {
		c := b.Config[k]
		if c == nil {
			continue
		}
		if c.Value == nil {
			typ = nil
			break
		}
		t := reflect.TypeOf(c.Value)
		if typ != nil && t != typ {
			typ = nil
			break
		}
		typ = t
	}

	if typ == nil {
		raw := make([]string, len(rows))
		for i, b := range rows {
			if c := b.Config[k]; c != nil {
				raw[i] = c.RawValue
			}
		}
		return raw
	}
	col := reflect.MakeSlice(reflect.SliceOf(typ), len(rows), len(rows))
	for i, b := range rows {
		if c := b.Config[k]; c != nil {
			col.Index(i).Set(reflect.ValueOf(c.Value))
		}
	}
	return col.Interface()
}
