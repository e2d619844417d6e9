// internal/render/figure.go
// Package: render
package render

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mwiater/jmhviz/internal/layout"
)

// Figure is the grid of panels drawn for one benchmark class.
type Figure struct {
	Title  string
	Grid   layout.Grid
	Panels [][]*plot.Plot // nil for cells with no benchmark
	Theme  Theme
}

// NewFigure allocates an empty grid sized for the group.
func NewFigure(g layout.ChartGroup, theme Theme) *Figure {
	grid := g.Grid()
	panels := make([][]*plot.Plot, grid.Rows)
	for i := range panels {
		panels[i] = make([]*plot.Plot, grid.Cols)
	}
	return &Figure{Title: g.Title, Grid: grid, Panels: panels, Theme: theme}
}

// Place puts p into the cell of the slot-th benchmark. Every cell is filled
// at most once.
func (f *Figure) Place(slot int, p *plot.Plot) error {
	row, col := f.Grid.Slot(slot)
	if row >= f.Grid.Rows || col >= f.Grid.Cols {
		return fmt.Errorf("slot %d is outside the %dx%d grid of %s", slot, f.Grid.Rows, f.Grid.Cols, f.Title)
	}
	if f.Panels[row][col] != nil {
		return fmt.Errorf("slot %d of %s is already drawn", slot, f.Title)
	}
	f.Panels[row][col] = p
	return nil
}

// At returns the panel at row, col.
func (f *Figure) At(row, col int) *plot.Plot {
	return f.Panels[row][col]
}

func (f *Figure) titleStyle() text.Style {
	return text.Style{
		Color:   f.Theme.Text,
		Font:    font.From(plot.DefaultFont, 2*f.Theme.TitleSize),
		XAlign:  draw.XCenter,
		YAlign:  draw.YTop,
		Handler: plot.DefaultTextHandler,
	}
}

// Draw renders the title and every panel onto dc.
func (f *Figure) Draw(dc draw.Canvas) {
	sty := f.titleStyle()
	pad := vg.Points(8)
	dc.FillText(sty, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - pad}, f.Title)

	body := draw.Crop(dc, 0, 0, 0, -(sty.Height(f.Title) + 2*pad))
	tiles := draw.Tiles{
		Rows:      f.Grid.Rows,
		Cols:      f.Grid.Cols,
		PadX:      vg.Millimeter * 6,
		PadY:      vg.Millimeter * 6,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 4,
	}
	canvases := plot.Align(f.Panels, tiles, body)
	for row := range f.Panels {
		for col, p := range f.Panels[row] {
			if p != nil {
				p.Draw(canvases[row][col])
			}
		}
	}
}

// Save writes the figure to path in the given format (png, svg, pdf, eps,
// jpg, tif).
func (f *Figure) Save(path, format string, width, height vg.Length) (err error) {
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return err
	}
	f.Draw(draw.New(c))

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = c.WriteTo(out)
	return err
}
