// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aclements/go-plotlayout/aes"
	"github.com/aclements/go-plotlayout/layer"
	"github.com/aclements/go-plotlayout/pos"
	"github.com/kballard/go-shellquote"
)

// parseLayer parses a layer description such as
//
//	line x=gomaxprocs y=value color=name pos=dodge size:=2
//
// The first word is the geometry kind. Each following word binds an
// aesthetic to a column (aes=column) or to a constant (aes:=value),
// or sets the position adjustment (pos=name). Words follow shell
// quoting rules, so quoted column names may contain spaces.
func parseLayer(desc string) (*layer.Layer, error) {
	words, err := shellquote.Split(desc)
	if err != nil {
		return nil, fmt.Errorf("layer %q: %w", desc, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("empty layer")
	}
	kind, err := layer.ParseKind(words[0])
	if err != nil {
		return nil, err
	}
	l := &layer.Layer{
		Kind: kind,
		Binding: aes.Binding{
			Columns: make(map[aes.Aes]string),
			Consts:  make(map[aes.Aes]interface{}),
		},
	}
	for _, w := range words[1:] {
		if name, val, ok := strings.Cut(w, ":="); ok {
			a, err := parseAes(name)
			if err != nil {
				return nil, err
			}
			l.Binding.Consts[a] = constValue(val)
			continue
		}
		name, val, ok := strings.Cut(w, "=")
		if !ok {
			return nil, fmt.Errorf("layer %q: want aes=column, aes:=value or pos=name, got %q", desc, w)
		}
		if name == "pos" {
			if l.Pos, err = pos.ByName(val); err != nil {
				return nil, err
			}
			continue
		}
		a, err := parseAes(name)
		if err != nil {
			return nil, err
		}
		l.Binding.Columns[a] = val
	}
	return l, nil
}

func parseAes(name string) (aes.Aes, error) {
	a, ok := aes.Parse(name)
	if !ok {
		return 0, fmt.Errorf("unknown aesthetic %q", name)
	}
	return a, nil
}

// constValue returns s as a number if it is one.
func constValue(s string) interface{} {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
