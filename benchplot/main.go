// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command benchplot lays out a plot of Go benchmark results and draws
// its wireframe as SVG.
//
// benchplot reads files in Go benchmark format [1] and turns them into
// a long table with one row per benchmark result: a name column, one
// column per configuration key, and unit and value columns. Layers are
// described with --layer:
//
//	benchplot --layer 'line x=gomaxprocs y=value color=name' --rows unit --free-y old.txt new.txt
//
// With --at, benchplot also reports the data row under a point of the
// laid out plot.
//
// [1] https://github.com/golang/proposal/blob/master/design/14313-benchmark-format.md
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotlayout/bench"
	"github.com/aclements/go-plotlayout/geom"
	"github.com/aclements/go-plotlayout/locate"
	"github.com/aclements/go-plotlayout/plot"
	"github.com/aclements/go-plotlayout/theme"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

type options struct {
	plotFlags
	filterFlags

	out     string
	title   string
	size    string
	theme   string
	legend  string
	at      string
	table   bool
	emit    bool
	force   bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:          "benchplot [flags] [inputs...]",
		Short:        "Lay out a plot of Go benchmark results",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if o.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), o, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.out, "out", "o", "", "write output to `file` (default stdout)")
	f.StringVar(&o.title, "title", "", "plot title (default the input names)")
	f.StringVar(&o.size, "size", "", "plot size as `WxH` pixels (default from the facets)")
	f.StringVar(&o.theme, "theme", "", "load layout metrics from a TOML or YAML `file`")
	f.StringVar(&o.legend, "legend", "", "legend `position`: a side, none, or x,y inside the panels")
	f.StringVar(&o.at, "at", "", "report the data row at plot point `x,y`")
	f.BoolVar(&o.table, "table", false, "write the benchmark table instead of a plot")
	f.BoolVar(&o.emit, "emit", false, "write the selected benchmarks in benchmark format")
	f.BoolVarP(&o.force, "force", "f", false, "write SVG even to a terminal")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")

	f.StringArrayVarP(&o.layers, "layer", "l", nil, "add a layer `description`, e.g. 'point x=gomaxprocs y=value'")
	f.StringVar(&o.x, "x", "gomaxprocs", "x `column` of the default layer")
	f.StringVar(&o.xScale, "xscale", "", "x scale: identity, log10, sqrt, reverse, datetime or discrete")
	f.StringVar(&o.yScale, "yscale", "", "y scale, as for --xscale")
	f.StringVar(&o.cols, "cols", "", "facet columns by `column`")
	f.StringVar(&o.rows, "rows", "", "facet rows by `column` (default unit if no facet is given)")
	f.StringVar(&o.wrap, "wrap", "", "wrap facets by `column`")
	f.IntVar(&o.wrapCols, "wrap-cols", 0, "number of wrapped facet columns (default near square)")
	f.BoolVar(&o.freeX, "free-x", false, "give each facet its own x domain")
	f.BoolVar(&o.freeY, "free-y", true, "give each facet its own y domain")
	f.BoolVar(&o.perBand, "per-band", false, "share free domains within facet rows and columns")

	f.StringVar(&o.name, "filter", "", "plot only benchmarks whose name matches `regexp`")
	f.StringArrayVar(&o.where, "where", nil, "plot only benchmarks with configuration `key=value`")
	return cmd
}

func run(ctx context.Context, o *options, paths []string) error {
	logger := loggerFrom(ctx)

	bs, err := readInputs(paths)
	if err != nil {
		return err
	}
	if bs, err = o.filter(bs); err != nil {
		return err
	}
	logger.Debug("read benchmarks", "inputs", len(paths), "results", len(bs))

	out, closeOut, err := openOutput(o.out)
	if err != nil {
		return err
	}
	defer closeOut()

	if o.emit {
		return bench.Fprint(out, bs)
	}
	bench.ParseValues(bs, nil)
	tab, err := bench.ToTable(bs)
	if err != nil {
		return err
	}
	if o.table {
		table.Fprint(out, tab)
		return nil
	}

	p, err := buildPlot(tab, &o.plotFlags)
	if err != nil {
		return err
	}
	p.Title = o.title
	if p.Title == "" && len(paths) > 0 {
		p.Title = strings.Join(paths, " ")
	}
	if p.Theme, err = loadTheme(o.theme, o.legend); err != nil {
		return err
	}

	w, h, err := plotSize(p, o.size)
	if err != nil {
		return err
	}
	l, err := p.Layout(w, h)
	if err != nil {
		return err
	}
	logger.Debug("laid out plot", "width", w, "height", h, "panels", len(l.Panels))

	if o.at != "" {
		return report(out, l, p.Theme, o.at)
	}
	if f, ok := out.(*os.File); ok && !o.force && term.IsTerminal(int(f.Fd())) {
		return fmt.Errorf("refusing to write SVG to a terminal; use -o or --force")
	}
	return writeWireframe(out, l)
}

// readInputs parses the benchmark files at paths. No paths or "-"
// means standard input.
func readInputs(paths []string) ([]*bench.Benchmark, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var all []*bench.Benchmark
	for _, path := range paths {
		r := io.Reader(os.Stdin)
		if path != "-" {
			f, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			r = f
		}
		bs, err := bench.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		all = append(all, bs...)
	}
	return all, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func loadTheme(path, legend string) (*theme.Theme, error) {
	th := theme.Default()
	if path != "" {
		var err error
		if th, err = theme.Load(path); err != nil {
			return nil, err
		}
	}
	if legend != "" {
		lp, err := theme.ParseLegendPosition(legend)
		if err != nil {
			return nil, err
		}
		th.Legend = lp
	}
	return th, nil
}

func plotSize(p *plot.Plot, size string) (w, h float64, err error) {
	if size == "" {
		return p.DefaultSize()
	}
	return parseSize(size)
}

// report writes the data row nearest to the plot point at.
func report(w io.Writer, l *plot.Layout, th *theme.Theme, at string) error {
	x, y, err := parsePoint(at)
	if err != nil {
		return err
	}
	ix, err := l.Index(locate.Nearest, locate.XY, th)
	if err != nil {
		return err
	}
	r, ok := ix.Find(geom.Point{X: x, Y: y})
	if !ok {
		_, err := fmt.Fprintf(w, "no data at %v,%v\n", x, y)
		return err
	}
	data := l.Panels[r.Panel].Layers[r.Layer].Data
	_, err = fmt.Fprintf(w, "panel %d layer %d row %d (%.1fpx away)\n", r.Panel, r.Layer, r.Index, r.Distance)
	if err != nil {
		return err
	}
	for _, col := range data.Columns() {
		if strings.HasPrefix(col, "x:") || strings.HasPrefix(col, "y:") {
			// Transformed positions.
			continue
		}
		v := reflect.ValueOf(data.Column(col)).Index(r.Index).Interface()
		if _, err := fmt.Fprintf(w, "\t%s: %v\n", col, v); err != nil {
			return err
		}
	}
	return nil
}
