// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default theme invalid: %v", err)
	}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	want := Default()
	want.AxisTextSize = 12
	want.HBreakSpace = 120
	want.Legend = LegendPosition{Overlay, 0.9, 0.1}
	want.LegendJustify = [2]float64{1, 0}

	tomlPath := writeTemp(t, "t.toml", `
axis_text_size = 12
h_break_spacing = 120
legend_position = "0.9, 0.1"
legend_justification = [1.0, 0.0]
`)
	yamlPath := writeTemp(t, "t.yaml", `
axis_text_size: 12
h_break_spacing: 120
legend_position: "0.9,0.1"
legend_justification: [1, 0]
`)
	for _, path := range []string{tomlPath, yamlPath} {
		got, err := Load(path)
		if err != nil {
			t.Errorf("Load(%s): %v", filepath.Ext(path), err)
			continue
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Load(%s) (-want +got):\n%s", filepath.Ext(path), diff)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	for _, test := range []struct {
		name, content, want string
	}{
		{"bad.json", `{}`, "unknown format"},
		{"neg.toml", "tick_length = -1", "tick_length must not be negative"},
		{"pos.yaml", "legend_position: middle", "bad legend position"},
		{"small.toml", "small_text_size = 20", "exceeds axis_text_size"},
	} {
		_, err := Load(writeTemp(t, test.name, test.content))
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("Load(%s) = %v; want error containing %q", test.name, err, test.want)
		}
	}
}

func TestParseLegendPosition(t *testing.T) {
	for _, s := range []string{"right", "left", "top", "bottom", "none", "0.5,1"} {
		p, err := ParseLegendPosition(s)
		if err != nil {
			t.Errorf("ParseLegendPosition(%q): %v", s, err)
			continue
		}
		if p.String() != s {
			t.Errorf("round trip %q -> %q", s, p.String())
		}
	}
	for _, s := range []string{"overlay", "2,0", "x,y", ""} {
		if _, err := ParseLegendPosition(s); err == nil {
			t.Errorf("ParseLegendPosition(%q) succeeded", s)
		}
	}
}
