// internal/gobench/gobench.go
// Package: gobench
//
// Package gobench turns `go test -bench` output into JMH-shaped records so Go
// benchmarks go through the same inference, collection and rendering passes.
// Repeated runs of one benchmark (-count) collapse into a single record whose
// score and confidence interval come from benchmath.
package gobench

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path"
	"slices"
	"strings"

	"golang.org/x/perf/benchfmt"
	"golang.org/x/perf/benchmath"

	"github.com/mwiater/jmhviz/internal/jmh"
	"github.com/mwiater/jmhviz/internal/runs"
)

// DefaultConfidence is the confidence level of the interval around the
// center of each sample.
const DefaultConfidence = 0.95

// Mode is the value stored in Record.Mode for converted benchmarks.
const Mode = "gobench"

type key struct {
	class, method, n string
}

type sample struct {
	key    key
	unit   string
	values []float64
}

// Load reads a Go benchmark output file.
func Load(name, param string, logger *slog.Logger) ([]jmh.Record, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open results file: %w", err)
	}
	defer f.Close()
	return Decode(f, name, param, logger)
}

// Decode converts Go benchmark results read from r. Syntax errors in the
// input are logged and skipped, the same way benchstat treats them.
func Decode(r io.Reader, name, param string, logger *slog.Logger) ([]jmh.Record, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if param == "" {
		param = jmh.DefaultParam
	}

	var samples []sample
	reader := benchfmt.NewReader(r, name)
	for reader.Scan() {
		switch rec := reader.Result().(type) {
		case *benchfmt.Result:
			if s, ok := convert(rec, param); ok {
				samples = append(samples, s)
			}
		case *benchfmt.SyntaxError:
			logger.Warn("skipping malformed benchmark line", "error", rec.Error())
		}
	}
	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("could not read benchmark output: %w", err)
	}

	records := summarize(samples, param)
	if err := jmh.Validate(records, param); err != nil {
		return nil, err
	}
	return records, nil
}

// convert extracts the primary value of one result line. The benchfmt
// Result is reused by the reader, so nothing of it is retained.
func convert(res *benchfmt.Result, param string) (sample, bool) {
	if len(res.Values) == 0 {
		return sample{}, false
	}
	class := path.Base(res.GetConfig("pkg"))
	if class == "." || class == "/" {
		class = "benchmarks"
	}

	base, parts := res.Name.Parts()
	method := []string{string(base)}
	n := ""
	for _, part := range parts {
		p := string(part)
		if !strings.HasPrefix(p, "/") {
			continue // -GOMAXPROCS suffix
		}
		if k, v, ok := strings.Cut(p[1:], "="); ok && k == param {
			n = v
			continue
		}
		method = append(method, p[1:])
	}

	v := res.Values[0]
	unit, value := v.OrigUnit, v.OrigValue
	if unit == "" {
		unit, value = v.Unit, v.Value
	}
	return sample{
		key: key{
			class:  sanitize(class),
			method: sanitize(strings.Join(method, "/")),
			n:      n,
		},
		unit:   unit,
		values: []float64{value},
	}, true
}

// summarize merges adjacent samples of the same benchmark and computes the
// center and confidence interval of each.
func summarize(samples []sample, param string) []jmh.Record {
	thresholds := benchmath.DefaultThresholds
	var records []jmh.Record
	for _, run := range runs.Split(samples, func(s sample) key { return s.key }) {
		var values []float64
		for _, s := range run.Items {
			values = append(values, s.values...)
		}
		bs := benchmath.NewSample(values, &thresholds)
		sum := benchmath.AssumeNothing.Summary(bs, DefaultConfidence)
		if !finite(sum.Lo) || !finite(sum.Hi) {
			// Too few runs for an interval at this confidence: span the sample.
			sum.Lo, sum.Hi = slices.Min(bs.Values), slices.Max(bs.Values)
		}

		rec := jmh.Record{
			Benchmark: run.Key.class + "." + run.Key.method,
			Mode:      Mode,
			Params:    map[string]string{},
			PrimaryMetric: jmh.Metric{
				Score:           sum.Center,
				ScoreError:      (sum.Hi - sum.Lo) / 2,
				ScoreConfidence: []float64{sum.Lo, sum.Hi},
				ScoreUnit:       run.Items[len(run.Items)-1].unit,
			},
		}
		if run.Key.n != "" {
			rec.Params[param] = run.Key.n
		}
		records = append(records, rec)
	}
	return records
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// sanitize keeps dots out of the identifier segments so Record.Class and
// Record.Method split them back apart.
func sanitize(s string) string {
	return strings.ReplaceAll(s, ".", "_")
}
