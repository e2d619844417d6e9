// internal/render/panel.go
// Package: render
package render

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mwiater/jmhviz/internal/collect"
)

// drawable returns the points of s with a numeric N, ordered by N.
func drawable(s collect.Series) []collect.Point {
	pts := make([]collect.Point, 0, len(s.Points))
	for _, p := range s.Points {
		if p.Valid() {
			pts = append(pts, p)
		}
	}
	slices.SortStableFunc(pts, func(a, b collect.Point) int {
		switch {
		case a.N < b.N:
			return -1
		case a.N > b.N:
			return 1
		default:
			return 0
		}
	})
	return pts
}

// Band returns the low and high edges of the confidence region. Lows below
// zero are clamped to zero; highs are left alone.
func Band(pts []collect.Point) (low, high plotter.XYs) {
	low = make(plotter.XYs, len(pts))
	high = make(plotter.XYs, len(pts))
	for i, p := range pts {
		low[i] = plotter.XY{X: p.N, Y: math.Max(p.Low, 0)}
		high[i] = plotter.XY{X: p.N, Y: p.High}
	}
	return low, high
}

// Ticks places one tick at every N, labelled as written in the input.
func Ticks(pts []collect.Point) []plot.Tick {
	ticks := make([]plot.Tick, len(pts))
	for i, p := range pts {
		ticks[i] = plot.Tick{Value: p.N, Label: p.Label}
	}
	return ticks
}

// Panel draws one benchmark series: a line with point markers of the score
// against N over the shaded confidence band.
func Panel(s collect.Series, theme Theme) (*plot.Plot, error) {
	p := plot.New()
	theme.apply(p)
	p.Title.Text = s.Title()

	pts := drawable(s)
	if len(pts) == 0 {
		return p, nil
	}

	low, high := Band(pts)
	if len(pts) > 1 {
		ring := make(plotter.XYs, 0, 2*len(pts))
		ring = append(ring, high...)
		for i := len(low) - 1; i >= 0; i-- {
			ring = append(ring, low[i])
		}
		band, err := plotter.NewPolygon(ring)
		if err != nil {
			return nil, fmt.Errorf("confidence band: %w", err)
		}
		band.Color = theme.Band
		band.LineStyle.Width = 0
		p.Add(band)
	}

	scores := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		scores[i] = plotter.XY{X: pt.N, Y: pt.Score}
	}
	line, marks, err := plotter.NewLinePoints(scores)
	if err != nil {
		return nil, fmt.Errorf("score line: %w", err)
	}
	line.Color = theme.Line
	line.Width = vg.Points(1.5)
	marks.Shape = draw.CircleGlyph{}
	marks.Color = theme.Line
	marks.Radius = vg.Points(3)
	p.Add(line, marks)

	p.X.Tick.Marker = plot.ConstantTicks(Ticks(pts))
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return p, nil
}
