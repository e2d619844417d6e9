// internal/jmh/types.go
// Package: jmh
package jmh

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultParam is the JMH @Param swept along the X axis.
const DefaultParam = "N"

// Metric is the primaryMetric block of a JMH result.
type Metric struct {
	Score           float64   `json:"score"`
	ScoreError      float64   `json:"scoreError"`
	ScoreConfidence []float64 `json:"scoreConfidence" validate:"len=2"`
	ScoreUnit       string    `json:"scoreUnit"`
}

// number is a JSON number that also accepts the quoted "NaN" and
// "Infinity" JMH writes for runs too short to have an error estimate.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		*n = number(math.NaN())
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %s", b)
	}
	*n = number(f)
	return nil
}

// UnmarshalJSON decodes the metric, tolerating non-finite values.
func (m *Metric) UnmarshalJSON(b []byte) error {
	var raw struct {
		Score           number   `json:"score"`
		ScoreError      number   `json:"scoreError"`
		ScoreConfidence []number `json:"scoreConfidence"`
		ScoreUnit       string   `json:"scoreUnit"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*m = Metric{
		Score:      float64(raw.Score),
		ScoreError: float64(raw.ScoreError),
		ScoreUnit:  raw.ScoreUnit,
	}
	if raw.ScoreConfidence != nil {
		m.ScoreConfidence = make([]float64, len(raw.ScoreConfidence))
		for i, v := range raw.ScoreConfidence {
			m.ScoreConfidence[i] = float64(v)
		}
	}
	return nil
}

// Record is one row of a JMH JSON results file. Records are never mutated
// after decoding.
type Record struct {
	Benchmark     string            `json:"benchmark" validate:"required,contains=."`
	Mode          string            `json:"mode"`
	Threads       int               `json:"threads"`
	Forks         int               `json:"forks"`
	Params        map[string]string `json:"params"`
	PrimaryMetric Metric            `json:"primaryMetric"`
}

// Class returns the second-to-last dot-separated segment of the identifier.
func (r Record) Class() string {
	class, _ := split(r.Benchmark)
	return class
}

// Method returns the last dot-separated segment of the identifier.
func (r Record) Method() string {
	_, method := split(r.Benchmark)
	return method
}

// Param returns the value of the named parameter, or "" if it is absent.
func (r Record) Param(name string) string {
	return r.Params[name]
}

// Score returns the primary metric score.
func (r Record) Score() float64 { return r.PrimaryMetric.Score }

// Unit returns the primary metric score unit.
func (r Record) Unit() string { return r.PrimaryMetric.ScoreUnit }

// Confidence returns the low and high confidence bounds. A missing or
// non-finite interval collapses onto the score.
func (r Record) Confidence() (low, high float64) {
	ci := r.PrimaryMetric.ScoreConfidence
	if len(ci) < 2 || !finite(ci[0]) || !finite(ci[1]) {
		return r.Score(), r.Score()
	}
	return ci[0], ci[1]
}

// Key identifies the series a record belongs to.
type Key struct {
	Class  string
	Method string
}

// SeriesKey returns the (class, method) pair used for adjacency grouping.
func (r Record) SeriesKey() Key {
	class, method := split(r.Benchmark)
	return Key{Class: class, Method: method}
}

func split(benchmark string) (class, method string) {
	parts := strings.Split(benchmark, ".")
	if len(parts) < 2 {
		return "", benchmark
	}
	return parts[len(parts)-2], parts[len(parts)-1]
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
