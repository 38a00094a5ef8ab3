// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

var (
	// ErrUnknownColumn is returned when a binding names a column
	// the data table does not have.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrNonNumeric is returned when a positional or size
	// aesthetic evaluates to non-numeric values.
	ErrNonNumeric = errors.New("non-numeric values")

	// ErrLength is returned when an aesthetic has fewer values than
	// there are data points.
	ErrLength = errors.New("aesthetic length mismatch")
)

// A Binding ties aesthetics to data. Columns maps an aesthetic to the
// name of a table column; Consts maps an aesthetic to a value that is
// the same for every row. A column binding takes priority over a
// constant for the same aesthetic.
type Binding struct {
	Columns map[Aes]string
	Consts  map[Aes]interface{}
}

// Bound returns the aesthetics b binds, in declaration order.
func (b Binding) Bound() []Aes {
	return Filter(All(), func(a Aes) bool {
		_, c := b.Columns[a]
		_, k := b.Consts[a]
		return c || k
	})
}

// A Mapper transforms a column of raw values into aesthetic values.
// It must return a slice of the same length.
type Mapper func(col table.Slice) table.Slice

// Identity is the Mapper that returns its input.
func Identity(col table.Slice) table.Slice {
	return col
}

// Aesthetics is the result of evaluating a Binding against a table.
// Values are stored per aesthetic in row order.
type Aesthetics struct {
	n       int
	values  map[Aes]table.Slice
	numeric map[Aes][]float64
}

// New returns an empty Aesthetics for n data points. Columns are
// added with Set.
func New(n int) *Aesthetics {
	return &Aesthetics{n, make(map[Aes]table.Slice), make(map[Aes][]float64)}
}

// Set records the values of aesthetic a. vals is not required to have
// Len() elements; consumers that need one value per data point check
// the length.
func (as *Aesthetics) Set(a Aes, vals table.Slice) {
	as.values[a] = vals
	delete(as.numeric, a)
	if isNumericSlice(vals) {
		var fs []float64
		slice.Convert(&fs, vals)
		as.numeric[a] = fs
	}
}

// Len returns the number of data points.
func (as *Aesthetics) Len() int {
	return as.n
}

// Has reports whether a was evaluated.
func (as *Aesthetics) Has(a Aes) bool {
	_, ok := as.values[a]
	return ok
}

// Aes returns the evaluated aesthetics in declaration order.
func (as *Aesthetics) Aes() []Aes {
	return Filter(All(), as.Has)
}

// Values returns the values of a, or nil if a was not evaluated.
func (as *Aesthetics) Values(a Aes) table.Slice {
	return as.values[a]
}

// Numeric returns the values of a as float64s, or nil if a was not
// evaluated or is not numeric. The caller must not modify the result.
func (as *Aesthetics) Numeric(a Aes) []float64 {
	return as.numeric[a]
}

// At returns the i'th data point.
func (as *Aesthetics) At(i int) DataPoint {
	return DataPoint{as, i}
}

// DataPoint is one row of an Aesthetics.
type DataPoint struct {
	as *Aesthetics
	i  int
}

// Index returns the row index of p.
func (p DataPoint) Index() int {
	return p.i
}

// Num returns the numeric value of a at p, or NaN if there is none.
func (p DataPoint) Num(a Aes) float64 {
	fs := p.as.numeric[a]
	if p.i >= len(fs) {
		return math.NaN()
	}
	return fs[p.i]
}

// Value returns the value of a at p, or nil if there is none.
func (p DataPoint) Value(a Aes) interface{} {
	v := p.as.values[a]
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if p.i >= rv.Len() {
		return nil
	}
	return rv.Index(p.i).Interface()
}

// Evaluate evaluates the aesthetics of subset that b binds against
// data, passing each column through its mapper from mappers (Identity
// if absent). Aesthetics in subset that b does not bind are left out
// of the result. Constants are broadcast to every row.
//
// Dry runs pass only the positional subset with no mappers; full
// evaluation passes every rendered aesthetic with the scale mappers.
func Evaluate(data *table.Table, b Binding, subset []Aes, mappers map[Aes]Mapper) (*Aesthetics, error) {
	n := 0
	if data != nil {
		n = data.Len()
	}
	as := New(n)
	for _, a := range subset {
		var col table.Slice
		if name, ok := b.Columns[a]; ok {
			if data != nil {
				col = data.Column(name)
			}
			if col == nil && n > 0 {
				return nil, fmt.Errorf("aesthetic %s: %w %q", a, ErrUnknownColumn, name)
			}
			if col == nil {
				// An empty table carries no columns.
				col = []float64{}
			}
		} else if v, ok := b.Consts[a]; ok {
			col = broadcast(v, n)
		} else {
			continue
		}

		m := mappers[a]
		if m == nil {
			m = Identity
		}
		col = m(col)
		if l := reflect.ValueOf(col).Len(); l != n {
			return nil, fmt.Errorf("aesthetic %s: %w: %d values for %d rows", a, ErrLength, l, n)
		}
		if mustBeNumeric(a) && !isNumericSlice(col) {
			return nil, fmt.Errorf("aesthetic %s: %w of type %T", a, ErrNonNumeric, col)
		}
		as.Set(a, col)
	}
	return as, nil
}

// broadcast returns a slice of n copies of v.
func broadcast(v interface{}, n int) table.Slice {
	rv := reflect.ValueOf(v)
	s := reflect.MakeSlice(reflect.SliceOf(rv.Type()), n, n)
	for i := 0; i < n; i++ {
		s.Index(i).Set(rv)
	}
	return s.Interface()
}

func isNumericSlice(v table.Slice) bool {
	t := reflect.TypeOf(v)
	if t == nil || t.Kind() != reflect.Slice {
		return false
	}
	switch t.Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
