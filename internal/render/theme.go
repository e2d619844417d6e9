// internal/render/theme.go
// Package: render
package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Theme holds the colors shared by every panel of every figure.
type Theme struct {
	Background color.Color
	GridLines  color.Color
	Text       color.Color
	Line       color.Color
	Band       color.Color
	TitleSize  vg.Length
	TickSize   vg.Length
}

// DarkGrid is a gray plotting area with white grid lines and no spines.
var DarkGrid = Theme{
	Background: color.RGBA{R: 0xea, G: 0xea, B: 0xf2, A: 0xff},
	GridLines:  color.White,
	Text:       color.Gray{Y: 0x33},
	Line:       color.RGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0xff},
	Band:       color.NRGBA{R: 135, G: 206, B: 235, A: 77}, // skyblue, alpha 0.3
	TitleSize:  vg.Points(12),
	TickSize:   vg.Points(9),
}

// apply styles p and adds the background grid.
func (t Theme) apply(p *plot.Plot) {
	p.BackgroundColor = t.Background
	p.Title.TextStyle.Color = t.Text
	p.Title.TextStyle.Font.Size = t.TitleSize

	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.LineStyle.Width = 0
		ax.Tick.LineStyle.Width = 0
		ax.Tick.Length = 0
		ax.Tick.Label.Color = t.Text
		ax.Tick.Label.Font.Size = t.TickSize
		ax.Label.TextStyle.Color = t.Text
	}

	grid := plotter.NewGrid()
	grid.Vertical = draw.LineStyle{Color: t.GridLines, Width: vg.Points(1)}
	grid.Horizontal = draw.LineStyle{Color: t.GridLines, Width: vg.Points(1)}
	p.Add(grid)
}
