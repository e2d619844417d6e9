// internal/viz/viz.go
// Package: viz
//
// Package viz wires the passes together: load records, infer the chart
// structure, collect series into the figures and write them out.
package viz

import (
	"fmt"
	"log/slog"

	"github.com/mwiater/jmhviz/internal/collect"
	"github.com/mwiater/jmhviz/internal/gobench"
	"github.com/mwiater/jmhviz/internal/jmh"
	"github.com/mwiater/jmhviz/internal/layout"
	"github.com/mwiater/jmhviz/internal/render"
)

// Input formats accepted by Load.
const (
	FormatJMH     = "jmh"
	FormatGoBench = "gobench"
)

// Options configure one visualization run.
type Options struct {
	Input       string
	InputFormat string
	Param       string
	Render      render.Options
	Index       bool
}

// Result is everything one run produced.
type Result struct {
	Records   []jmh.Record
	Structure layout.Structure
	Series    collect.Buffer
	Canvas    *render.Canvas
	Files     []string
	IndexPath string
}

// Load reads records from input in the given format.
func Load(input, format, param string, logger *slog.Logger) ([]jmh.Record, error) {
	switch format {
	case "", FormatJMH:
		return jmh.Load(input, param)
	case FormatGoBench:
		return gobench.Load(input, param, logger)
	default:
		return nil, fmt.Errorf("unknown input format %q (want %s or %s)", format, FormatJMH, FormatGoBench)
	}
}

// Analyze runs the inference and collection passes without drawing.
func Analyze(records []jmh.Record, param string) (layout.Structure, collect.Buffer, error) {
	st := layout.Infer(records)
	var buf collect.Buffer
	if err := collect.Collect(records, st, param, &buf); err != nil {
		return st, buf, err
	}
	return st, buf, nil
}

// Run loads the input, draws every series and writes the figures.
func Run(opts Options, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	records, err := Load(opts.Input, opts.InputFormat, opts.Param, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("records loaded", "input", opts.Input, "records", len(records))

	res := &Result{Records: records, Structure: layout.Infer(records)}
	res.Canvas = render.NewCanvas(res.Structure, render.DarkGrid, logger)
	if err := collect.Collect(records, res.Structure, opts.Param, collect.Tee(&res.Series, res.Canvas)); err != nil {
		return res, err
	}

	res.Files, err = res.Canvas.Write(opts.Render)
	if err != nil {
		return res, err
	}
	if opts.Index {
		res.IndexPath, err = render.WriteIndex(opts.Render.Dir, "jmhviz: "+opts.Input, res.Canvas.Entries(res.Files))
		if err != nil {
			return res, err
		}
	}
	return res, nil
}
