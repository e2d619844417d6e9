// internal/layout/layout.go
// Package: layout
//
// Package layout infers how many charts and how many benchmarks per chart a
// flat list of JMH records describes, and sizes the subplot grid of each.
package layout

import (
	"github.com/mwiater/jmhviz/internal/jmh"
	"github.com/mwiater/jmhviz/internal/runs"
)

// MaxColumns is the widest a chart grid gets.
const MaxColumns = 3

// ChartGroup is one benchmark class run and the number of distinct adjacent
// methods it holds.
type ChartGroup struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// Grid returns the subplot grid for the group.
func (g ChartGroup) Grid() Grid { return GridFor(g.Count) }

// Structure is the result of the inference pass.
type Structure struct {
	Charts []ChartGroup `json:"charts"`
}

// Counts returns the benchmark-count-per-chart sequence.
func (s Structure) Counts() []int {
	out := make([]int, len(s.Charts))
	for i, c := range s.Charts {
		out[i] = c.Count
	}
	return out
}

// Titles returns the chart title sequence.
func (s Structure) Titles() []string {
	out := make([]string, len(s.Charts))
	for i, c := range s.Charts {
		out[i] = c.Title
	}
	return out
}

// Series returns the total number of benchmark series across all charts.
func (s Structure) Series() int {
	n := 0
	for _, c := range s.Charts {
		n += c.Count
	}
	return n
}

// Infer scans records once. A change of class opens a new chart; a change of
// method within the same class adds a benchmark to the current chart. A class
// that reappears after another class opens a second chart.
func Infer(records []jmh.Record) Structure {
	var s Structure
	for _, class := range runs.Split(records, jmh.Record.Class) {
		methods := runs.Split(class.Items, jmh.Record.Method)
		s.Charts = append(s.Charts, ChartGroup{Title: class.Key, Count: len(methods)})
	}
	return s
}
