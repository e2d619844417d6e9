// internal/summary/summary.go
// Package: summary
//
// Package summary reduces each benchmark series to a handful of numbers for
// the terminal: score range, median, spread, and how the score grows from the
// smallest to the largest N.
package summary

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/montanaflynn/stats"
	"golang.org/x/perf/benchunit"

	"github.com/mwiater/jmhviz/internal/collect"
)

// Row summarizes one series.
type Row struct {
	Chart  string  `json:"chart"`
	Bench  string  `json:"benchmark"`
	Unit   string  `json:"unit"`
	Points int     `json:"points"`
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	// Growth is score(largest N) / score(smallest N); 0 when undefined.
	Growth float64 `json:"growth"`
	// MaxRelCI is the widest confidence interval relative to its score.
	MaxRelCI float64 `json:"max_rel_ci"`
}

// Summarize builds one row per series in collection order.
func Summarize(placed []collect.Placed) []Row {
	out := make([]Row, 0, len(placed))
	for _, p := range placed {
		out = append(out, summarizeSeries(p.Series))
	}
	return out
}

func summarizeSeries(s collect.Series) Row {
	scores := s.Scores()
	row := Row{
		Chart:  s.Class,
		Bench:  s.Method,
		Unit:   s.Unit,
		Points: len(scores),
	}
	if len(scores) == 0 {
		return row
	}
	// stats only errors on empty input, ruled out above.
	row.Min, _ = stats.Min(scores)
	row.Max, _ = stats.Max(scores)
	row.Median, _ = stats.Median(scores)
	row.Mean, _ = stats.Mean(scores)
	row.Std, _ = stats.StandardDeviationPopulation(scores)

	var first, last *collect.Point
	for i := range s.Points {
		p := &s.Points[i]
		if p.Score != 0 {
			row.MaxRelCI = math.Max(row.MaxRelCI, (p.High-p.Low)/math.Abs(p.Score))
		}
		if !p.Valid() {
			continue
		}
		if first == nil || p.N < first.N {
			first = p
		}
		if last == nil || p.N > last.N {
			last = p
		}
	}
	if first != nil && last != first && first.Score != 0 {
		row.Growth = last.Score / first.Score
	}
	return row
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	chartStyle  = cellStyle.Foreground(lipgloss.Color("5")).Bold(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Table renders rows as a bordered terminal table.
func Table(rows []Row) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("CHART", "BENCHMARK", "UNIT", "N", "MIN", "MEDIAN", "MAX", "MEAN ± STD", "GROWTH", "MAX CI").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return chartStyle
			default:
				return cellStyle
			}
		})
	for _, r := range rows {
		class := benchunit.ClassOf(r.Unit)
		t.Row(
			r.Chart,
			r.Bench,
			r.Unit,
			fmt.Sprint(r.Points),
			benchunit.Scale(r.Min, class),
			benchunit.Scale(r.Median, class),
			benchunit.Scale(r.Max, class),
			fmt.Sprintf("%s ± %s", benchunit.Scale(r.Mean, class), benchunit.Scale(r.Std, class)),
			formatGrowth(r.Growth),
			fmt.Sprintf("%.0f%%", 100*r.MaxRelCI),
		)
	}
	return t.Render()
}

func formatGrowth(g float64) string {
	if g == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fx", g)
}
