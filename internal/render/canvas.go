// internal/render/canvas.go
// Package: render
//
// Package render turns collected benchmark series into gonum/plot figures,
// one grid of panels per benchmark class.
package render

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/mwiater/jmhviz/internal/collect"
	"github.com/mwiater/jmhviz/internal/layout"
)

// Options control how figures are written.
type Options struct {
	Dir    string
	Format string
	Width  vg.Length
	Height vg.Length
}

// Canvas holds the figures of one run. It is the collect.Sink that draws
// each series into the panel its chart and slot point at.
type Canvas struct {
	Figures []*Figure
	theme   Theme
	log     *slog.Logger
}

var _ collect.Sink = (*Canvas)(nil)

// NewCanvas allocates one figure per chart of st.
func NewCanvas(st layout.Structure, theme Theme, logger *slog.Logger) *Canvas {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Canvas{theme: theme, log: logger}
	for _, g := range st.Charts {
		c.Figures = append(c.Figures, NewFigure(g, theme))
	}
	return c
}

// Series implements collect.Sink.
func (c *Canvas) Series(chart, slot int, s collect.Series) error {
	if chart < 0 || chart >= len(c.Figures) {
		return fmt.Errorf("chart %d out of range (%d figures)", chart, len(c.Figures))
	}
	p, err := Panel(s, c.theme)
	if err != nil {
		return err
	}
	c.log.Debug("panel drawn", "chart", c.Figures[chart].Title, "slot", slot, "benchmark", s.Method, "points", len(s.Points))
	return c.Figures[chart].Place(slot, p)
}

// Write saves every figure into opts.Dir and returns the file paths in
// figure order.
func (c *Canvas) Write(opts Options) ([]string, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create output directory: %w", err)
	}
	paths := make([]string, 0, len(c.Figures))
	for i, f := range c.Figures {
		path := filepath.Join(opts.Dir, FileName(i, f.Title, opts.Format))
		if err := f.Save(path, opts.Format, opts.Width, opts.Height); err != nil {
			return paths, fmt.Errorf("could not save figure %s: %w", f.Title, err)
		}
		c.log.Info("figure written", "title", f.Title, "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}

var nameReplacer = strings.NewReplacer("/", "_", " ", "_", "\\", "_", ":", "_", "$", "_")

// FileName numbers figures so a class that appears twice in the input does
// not overwrite its first figure.
func FileName(index int, title, format string) string {
	return fmt.Sprintf("%02d_%s.%s", index+1, nameReplacer.Replace(title), format)
}
