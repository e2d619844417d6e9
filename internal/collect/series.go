// internal/collect/series.go
// Package: collect
package collect

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is one (N, score, confidence) row of a benchmark series.
type Point struct {
	Label string  `json:"n"` // N as written in the results file
	N     float64 `json:"-"` // N coerced to a number, NaN when not numeric
	Score float64 `json:"avg_time"`
	Low   float64 `json:"ci_low"`
	High  float64 `json:"ci_high"`
}

// Valid reports whether N could be coerced to a number.
func (p Point) Valid() bool { return !math.IsNaN(p.N) }

// Series is the per-method table collected in input order.
type Series struct {
	Class  string  `json:"class"`
	Method string  `json:"method"`
	Unit   string  `json:"unit"`
	Points []Point `json:"points"`
}

// Title is the subplot title: "<benchmark> [<unit>]".
func (s Series) Title() string {
	return fmt.Sprintf("%s [%s]", s.Method, s.Unit)
}

// Labels returns the N column as written.
func (s Series) Labels() []string {
	out := make([]string, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Label
	}
	return out
}

// Ns returns the numeric N column.
func (s Series) Ns() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.N
	}
	return out
}

// Scores returns the avg_time column.
func (s Series) Scores() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Score
	}
	return out
}

// Confidence unzips the confidence pairs into low and high columns.
func (s Series) Confidence() (low, high []float64) {
	low = make([]float64, len(s.Points))
	high = make([]float64, len(s.Points))
	for i, p := range s.Points {
		low[i], high[i] = p.Low, p.High
	}
	return low, high
}

// ParseN coerces a parameter value to a number. Values that do not parse
// become NaN, which the renderer drops.
func ParseN(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
