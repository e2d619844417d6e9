// internal/collect/collect.go
// Package: collect
//
// Package collect is the second pass over the records: it buckets them into
// per-benchmark series and hands each completed series to a Sink together
// with the chart and slot it belongs to.
package collect

import (
	"errors"
	"fmt"

	"github.com/mwiater/jmhviz/internal/jmh"
	"github.com/mwiater/jmhviz/internal/layout"
	"github.com/mwiater/jmhviz/internal/runs"
)

// ErrLayoutMismatch means the records do not describe the structure the
// inference pass produced.
var ErrLayoutMismatch = errors.New("collect: records do not match inferred layout")

// Sink receives each completed series. chart indexes Structure.Charts and
// slot is the position of the series within that chart.
type Sink interface {
	Series(chart, slot int, s Series) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(chart, slot int, s Series) error

// Series calls f.
func (f SinkFunc) Series(chart, slot int, s Series) error { return f(chart, slot, s) }

// Collect walks records in order, flushing a series every time the
// (class, method) pair changes and once more at the end. The chart index
// advances once the slot index reaches the chart's benchmark count.
func Collect(records []jmh.Record, st layout.Structure, param string, sink Sink) error {
	if param == "" {
		param = jmh.DefaultParam
	}
	chart, slot := 0, 0
	for _, run := range runs.Split(records, jmh.Record.SeriesKey) {
		if chart >= len(st.Charts) || st.Charts[chart].Title != run.Key.Class {
			return fmt.Errorf("%w: series %s.%s has no chart", ErrLayoutMismatch, run.Key.Class, run.Key.Method)
		}
		if err := sink.Series(chart, slot, build(run, param)); err != nil {
			return fmt.Errorf("series %s.%s: %w", run.Key.Class, run.Key.Method, err)
		}
		slot++
		if slot >= st.Charts[chart].Count {
			chart++
			slot = 0
		}
	}
	if chart != len(st.Charts) {
		return fmt.Errorf("%w: filled %d of %d charts", ErrLayoutMismatch, chart, len(st.Charts))
	}
	return nil
}

func build(run runs.Run[jmh.Record, jmh.Key], param string) Series {
	s := Series{
		Class:  run.Key.Class,
		Method: run.Key.Method,
		Points: make([]Point, 0, len(run.Items)),
	}
	for _, rec := range run.Items {
		low, high := rec.Confidence()
		label := rec.Param(param)
		s.Points = append(s.Points, Point{
			Label: label,
			N:     ParseN(label),
			Score: rec.Score(),
			Low:   low,
			High:  high,
		})
		s.Unit = rec.Unit()
	}
	return s
}

// Placed is a series together with its chart and slot.
type Placed struct {
	Chart  int    `json:"chart"`
	Slot   int    `json:"slot"`
	Series Series `json:"series"`
}

// Buffer is a Sink that keeps every series in memory.
type Buffer struct {
	Placed []Placed
}

// Series appends s.
func (b *Buffer) Series(chart, slot int, s Series) error {
	b.Placed = append(b.Placed, Placed{Chart: chart, Slot: slot, Series: s})
	return nil
}

// Chart returns the series of one chart in slot order.
func (b *Buffer) Chart(chart int) []Series {
	var out []Series
	for _, p := range b.Placed {
		if p.Chart == chart {
			out = append(out, p.Series)
		}
	}
	return out
}

// Tee fans each series out to every sink in order, stopping at the first
// error.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(chart, slot int, s Series) error {
		for _, sink := range sinks {
			if err := sink.Series(chart, slot, s); err != nil {
				return err
			}
		}
		return nil
	})
}
