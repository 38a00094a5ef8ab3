// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Side is where legends go relative to the plot panels.
type Side int

const (
	Right Side = iota
	Left
	Top
	Bottom
	// Overlay places legends inside the panel area.
	Overlay
	// None hides legends.
	None
)

var sideNames = [...]string{
	Right:   "right",
	Left:    "left",
	Top:     "top",
	Bottom:  "bottom",
	Overlay: "overlay",
	None:    "none",
}

func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideNames[s]
}

// LegendPosition is the declared position of the legend block. For
// Overlay, X and Y give the anchor as a fraction of the panel area,
// from the left and from the bottom.
type LegendPosition struct {
	Side Side
	X, Y float64
}

// String returns the text form of p: a side name, or "x,y" for an
// overlay.
func (p LegendPosition) String() string {
	if p.Side == Overlay {
		return strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64)
	}
	return p.Side.String()
}

// ParseLegendPosition parses the text form of a legend position.
func ParseLegendPosition(s string) (LegendPosition, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for i, n := range sideNames {
		if n == s && Side(i) != Overlay {
			return LegendPosition{Side: Side(i)}, nil
		}
	}
	xs, ys, ok := strings.Cut(s, ",")
	if ok {
		x, errx := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		y, erry := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if errx == nil && erry == nil && 0 <= x && x <= 1 && 0 <= y && y <= 1 {
			return LegendPosition{Overlay, x, y}, nil
		}
	}
	return LegendPosition{}, fmt.Errorf("bad legend position %q: want a side or \"x,y\" in [0, 1]", s)
}

func (p LegendPosition) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *LegendPosition) UnmarshalText(text []byte) error {
	np, err := ParseLegendPosition(string(text))
	if err != nil {
		return err
	}
	*p = np
	return nil
}

func (p *LegendPosition) UnmarshalYAML(node *yaml.Node) error {
	return p.UnmarshalText([]byte(node.Value))
}
