// internal/jmh/load.go
// Package: jmh
package jmh

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNoRecords is returned when the input holds an empty array.
	ErrNoRecords = errors.New("jmh: no benchmark records")
	// ErrMalformed wraps every validation failure of a decoded record.
	ErrMalformed = errors.New("jmh: malformed input")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and validates the JMH JSON results file at path.
func Load(path, param string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open results file: %w", err)
	}
	defer f.Close()

	records, err := Decode(f, param)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Decode parses a JMH JSON array from r and validates every record against
// the swept parameter name.
func Decode(r io.Reader, param string) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: could not parse results JSON: %v", ErrMalformed, err)
	}
	if err := Validate(records, param); err != nil {
		return nil, err
	}
	return records, nil
}

// Validate checks the fields the visualizer depends on.
func Validate(records []Record, param string) error {
	if len(records) == 0 {
		return ErrNoRecords
	}
	if param == "" {
		param = DefaultParam
	}
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return fmt.Errorf("%w: record %d (%q): %v", ErrMalformed, i, rec.Benchmark, err)
		}
		if rec.Class() == "" || rec.Method() == "" {
			return fmt.Errorf("%w: record %d: identifier %q has no class and method", ErrMalformed, i, rec.Benchmark)
		}
		if _, ok := rec.Params[param]; !ok {
			return fmt.Errorf("%w: record %d (%q): missing params.%s", ErrMalformed, i, rec.Benchmark, param)
		}
	}
	return nil
}
