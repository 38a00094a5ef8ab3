// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench reads and writes Go benchmark results files and
// turns them into tables for plotting.
//
// The file format is described at
// https://github.com/golang/proposal/blob/master/design/14313-benchmark-format.md
package bench

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Benchmark is one result line of a benchmark file.
type Benchmark struct {
	// Name is the benchmark name without the "Benchmark" prefix,
	// any "/key:value" sub-benchmark configuration, or a trailing
	// "-N" GOMAXPROCS suffix.
	Name string

	Iterations int

	// Config holds the configuration in effect for this line: the
	// enclosing block configuration overlaid with the line's own.
	// The GOMAXPROCS suffix is recorded under "gomaxprocs".
	Config map[string]*Config

	// Result maps units to measured values.
	Result map[string]float64
}

// Config is one configuration value.
type Config struct {
	// Value is the structured value set by ParseValues. It is nil
	// after Parse.
	Value interface{}

	// RawValue is the value as written.
	RawValue string

	// InBlock reports whether the value came from a configuration
	// line rather than the benchmark name.
	InBlock bool
}

var configLine = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

// Parse reads a benchmark file from r and returns its result lines
// in order. Lines that are neither configuration nor results are
// ignored.
func Parse(r io.Reader) ([]*Benchmark, error) {
	bs := []*Benchmark{}
	block := make(map[string]*Config)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if m := configLine.FindStringSubmatch(line); m != nil {
			block[m[1]] = &Config{RawValue: m[2], InBlock: true}
			continue
		}
		if b := parseResult(line, block); b != nil {
			bs = append(bs, b)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading benchmarks: %w", err)
	}
	return bs, nil
}

// parseResult parses a result line, or returns nil if line is not
// one.
func parseResult(line string, block map[string]*Config) *Benchmark {
	f := strings.Fields(line)
	if len(f) < 4 || !strings.HasPrefix(f[0], "Benchmark") {
		return nil
	}
	name := f[0][len("Benchmark"):]
	if r, _ := utf8.DecodeRuneInString(name); name != "" && !unicode.IsUpper(r) {
		return nil
	}
	iters, err := strconv.Atoi(f[1])
	if err != nil || iters <= 0 {
		return nil
	}

	b := &Benchmark{
		Iterations: iters,
		Config:     maps.Clone(block),
		Result:     make(map[string]float64),
	}
	if b.Config == nil {
		b.Config = make(map[string]*Config)
	}
	if base, subs, ok := strings.Cut(name, "/"); ok {
		b.Name = base
		for _, sub := range strings.Split(subs, "/") {
			if k, v, ok := strings.Cut(sub, ":"); ok {
				b.Config[k] = &Config{RawValue: v}
			}
		}
	} else if i := strings.LastIndex(name, "-"); i >= 0 && isInt(name[i+1:]) {
		b.Name = name[:i]
		b.Config["gomaxprocs"] = &Config{RawValue: name[i+1:]}
	} else {
		b.Name = name
	}

	for i := 2; i+1 < len(f); i += 2 {
		if v, err := strconv.ParseFloat(f[i], 64); err == nil {
			b.Result[f[i+1]] = v
		}
	}
	return b
}

func isInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// A ValueParser parses a raw configuration value.
type ValueParser func(string) (interface{}, error)

// DefaultValueParsers are tried in order by ParseValues.
var DefaultValueParsers = []ValueParser{
	func(s string) (interface{}, error) { return strconv.Atoi(s) },
	func(s string) (interface{}, error) { return strconv.ParseFloat(s, 64) },
	func(s string) (interface{}, error) { return time.ParseDuration(s) },
	func(s string) (interface{}, error) { return time.Parse(time.RFC3339, s) },
}

// ParseValues sets Config.Value for every configuration value of bs.
// For each key, it uses the first of parsers that accepts every raw
// value of that key, and keeps the raw strings if none does. nil
// parsers means DefaultValueParsers.
func ParseValues(bs []*Benchmark, parsers []ValueParser) {
	if parsers == nil {
		parsers = DefaultValueParsers
	}

	// Configs may be shared between benchmarks by block
	// configuration, so collect the distinct ones per key.
	byKey := make(map[string][]*Config)
	seen := make(map[*Config]bool)
	for _, b := range bs {
		for k, c := range b.Config {
			if !seen[c] {
				seen[c] = true
				byKey[k] = append(byKey[k], c)
			}
		}
	}

	for _, cs := range byKey {
		vals := parseAll(cs, parsers)
		for i, c := range cs {
			if vals == nil {
				c.Value = c.RawValue
			} else {
				c.Value = vals[i]
			}
		}
	}
}

// parseAll returns the values of cs under the first parser that
// accepts all of them, or nil.
func parseAll(cs []*Config, parsers []ValueParser) []interface{} {
next:
	for _, p := range parsers {
		vals := make([]interface{}, len(cs))
		for i, c := range cs {
			v, err := p(c.RawValue)
			if err != nil {
				continue next
			}
			vals[i] = v
		}
		return vals
	}
	return nil
}
