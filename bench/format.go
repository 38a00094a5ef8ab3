// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Fprint writes bs to w in benchmark file format. Block configuration
// is written whenever it changes from the previous benchmark, and
// result lines within a block are aligned in columns.
func Fprint(w io.Writer, bs []*Benchmark) error {
	var (
		last  = make(map[string]string)
		lines [][]string
		first = true
	)
	flush := func() error {
		err := writeAligned(w, lines)
		lines = nil
		return err
	}
	for _, b := range bs {
		var changed []string
		for _, k := range configKeys(b, true) {
			raw := b.Config[k].RawValue
			if v, ok := last[k]; !ok || v != raw {
				changed = append(changed, k+": "+raw)
				last[k] = raw
			}
		}
		if changed != nil {
			if err := flush(); err != nil {
				return err
			}
			if !first {
				changed = append([]string{""}, changed...)
			}
			if _, err := fmt.Fprintf(w, "%s\n\n", strings.Join(changed, "\n")); err != nil {
				return err
			}
		}
		first = false
		lines = append(lines, resultLine(b))
	}
	return flush()
}

func configKeys(b *Benchmark, inBlock bool) []string {
	var keys []string
	for k, c := range b.Config {
		if c.InBlock == inBlock {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// resultLine returns the fields of b's result line.
func resultLine(b *Benchmark) []string {
	name := "Benchmark" + b.Name
	var subs []string
	procs := ""
	for _, k := range configKeys(b, false) {
		if k == "gomaxprocs" {
			procs = b.Config[k].RawValue
			continue
		}
		subs = append(subs, k+":"+b.Config[k].RawValue)
	}
	switch {
	case procs == "" || procs == "1":
	case subs == nil:
		name += "-" + procs
	default:
		subs = append(subs, "gomaxprocs:"+procs)
	}
	if subs != nil {
		name += "/" + strings.Join(subs, "/")
	}

	line := []string{name, strconv.Itoa(b.Iterations)}
	units := slices.SortedFunc(maps.Keys(b.Result), compareUnits)
	for _, u := range units {
		line = append(line, strconv.FormatFloat(b.Result[u], 'g', -1, 64), u)
	}
	return line
}

// unitOrder puts the conventional units first.
var unitOrder = map[string]int{"ns/op": -2, "MB/s": -1}

func compareUnits(a, b string) int {
	if c := cmp.Compare(unitOrder[a], unitOrder[b]); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// writeAligned writes lines in columns. The iteration count and
// values are right-aligned; names and units are left-aligned.
func writeAligned(w io.Writer, lines [][]string) error {
	var widths []int
	for _, line := range lines {
		for i, f := range line {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], len(f))
		}
	}
	var sb strings.Builder
	for _, line := range lines {
		for i, f := range line {
			switch {
			case i == len(line)-1:
				sb.WriteString(f)
			case i == 1, i >= 2 && i%2 == 0:
				fmt.Fprintf(&sb, "%*s  ", widths[i], f)
			default:
				fmt.Fprintf(&sb, "%-*s  ", widths[i], f)
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
