// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func cfg(raw string, inBlock bool) *Config {
	return &Config{RawValue: raw, InBlock: inBlock}
}

func TestParse(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
		want  []*Benchmark
	}{
		{"basic", `
BenchmarkX	1	2 ns/op 3 MB/s`,
			[]*Benchmark{
				{"X", 1, map[string]*Config{}, map[string]float64{"ns/op": 2, "MB/s": 3}},
			},
		},
		{"empty name", `
Benchmark	1	2 ns/op`,
			[]*Benchmark{
				{"", 1, map[string]*Config{}, map[string]float64{"ns/op": 2}},
			},
		},
		{"bad names", `
Benchmarkx	1	2 ns/op
benchmarkx	1	2 ns/op
benchmarkX	1	2 ns/op`,
			[]*Benchmark{},
		},
		{"short lines", `
BenchmarkX
BenchmarkX	1
BenchmarkX	1	2
BenchmarkX	0	2 ns/op`,
			[]*Benchmark{},
		},
		{"gomaxprocs", `
BenchmarkX-4	1	2 ns/op
BenchmarkY-z	1	2 ns/op`,
			[]*Benchmark{
				{"X", 1, map[string]*Config{"gomaxprocs": cfg("4", false)}, map[string]float64{"ns/op": 2}},
				{"Y-z", 1, map[string]*Config{}, map[string]float64{"ns/op": 2}},
			},
		},
		{"name config", `
BenchmarkX/a:20/b:abc	1	2 ns/op
BenchmarkY/c:123	2	4 ns/op`,
			[]*Benchmark{
				{"X", 1, map[string]*Config{"a": cfg("20", false), "b": cfg("abc", false)}, map[string]float64{"ns/op": 2}},
				{"Y", 2, map[string]*Config{"c": cfg("123", false)}, map[string]float64{"ns/op": 4}},
			},
		},
		{"block config", `
commit: 123456
date: Jan 1
colon:colon: 42
blank:
#not-config: x
spa ce: x
Not-config: x
BenchmarkX	1	2 ns/op`,
			[]*Benchmark{
				{"X", 1, map[string]*Config{
					"commit":      cfg("123456", true),
					"date":        cfg("Jan 1", true),
					"colon:colon": cfg("42", true),
					"blank":       cfg("", true),
				}, map[string]float64{"ns/op": 2}},
			},
		},
		{"name overrides block", `
commit: 123456
date: Jan 1
BenchmarkX/commit:abcdef	1	2 ns/op`,
			[]*Benchmark{
				{"X", 1, map[string]*Config{"commit": cfg("abcdef", false), "date": cfg("Jan 1", true)}, map[string]float64{"ns/op": 2}},
			},
		},
		{"block overrides block", `
commit: 123456
commit: abcdef
BenchmarkX	1	2 ns/op`,
			[]*Benchmark{
				{"X", 1, map[string]*Config{"commit": cfg("abcdef", true)}, map[string]float64{"ns/op": 2}},
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(test.input))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Parse (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseValues(t *testing.T) {
	bs, err := Parse(strings.NewReader(`
commit: abc
BenchmarkX/n:1/d:1s/f:1	1	2 ns/op
BenchmarkX/n:2/d:2ms/f:1.5	1	2 ns/op
BenchmarkX/n:3/d:x/f:2	1	2 ns/op
`))
	if err != nil {
		t.Fatal(err)
	}
	ParseValues(bs, nil)
	var got [][]interface{}
	for _, b := range bs {
		got = append(got, []interface{}{b.Config["commit"].Value, b.Config["n"].Value, b.Config["d"].Value, b.Config["f"].Value})
	}
	want := [][]interface{}{
		{"abc", 1, "1s", 1.0},
		{"abc", 2, "2ms", 1.5},
		{"abc", 3, "x", 2.0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}

	ParseValues(bs[:2], nil)
	if got, want := bs[1].Config["d"].Value, 2*time.Millisecond; got != want {
		t.Errorf("duration value = %v; want %v", got, want)
	}
}
