// internal/layout/grid.go
// Package: layout
package layout

// Grid is the rows x columns arrangement of the subplots of one chart.
type Grid struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// GridFor sizes a grid for count benchmarks: a single row when there are
// fewer than MaxColumns, otherwise MaxColumns wide with just enough rows.
func GridFor(count int) Grid {
	if count < MaxColumns {
		return Grid{Rows: 1, Cols: max(count, 1)}
	}
	rows := count / MaxColumns
	if count%MaxColumns != 0 {
		rows++
	}
	return Grid{Rows: rows, Cols: MaxColumns}
}

// Cells returns Rows*Cols.
func (g Grid) Cells() int { return g.Rows * g.Cols }

// Slot maps the j-th benchmark of a chart to its cell, filling rows left to
// right, top to bottom.
func (g Grid) Slot(j int) (row, col int) {
	return j / MaxColumns, j % MaxColumns
}
